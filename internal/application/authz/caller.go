package authz

import (
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// Caller identidad autenticada que se pasa explícitamente a cada caso de uso.
// Se construye una sola vez en el middleware de auth a partir de los claims del
// JWT; los casos de uso nunca leen identidad del request.
type Caller struct {
	UserID   string
	Role     string
	TenantID string // vacío para super_admin
}

// IsSuperAdmin indica si el caller opera sin tenant.
func (c Caller) IsSuperAdmin() bool {
	return c.Role == entity.RoleSuperAdmin
}

// ScopeTenant devuelve el tenant efectivo para una operación de lectura.
// Para cualquier rol distinto de super_admin siempre es el tenant del caller
// (cualquier valor del cliente se ignora). super_admin puede pedir un tenant
// concreto; vacío significa "todos".
func ScopeTenant(c Caller, requested string) string {
	if c.IsSuperAdmin() {
		return requested
	}
	return c.TenantID
}

// EnsureTenant es la segunda verificación, independiente del filtrado de
// listados: los accesos directos por id no pasan por el filtro de queries, así
// que todo recurso leído o mutado por id se contrasta aquí contra el tenant
// del caller. super_admin no tiene tenant y pasa siempre.
func EnsureTenant(c Caller, resourceTenantID string) error {
	if c.IsSuperAdmin() {
		return nil
	}
	if c.TenantID == "" || c.TenantID != resourceTenantID {
		return domain.ErrCrossTenant
	}
	return nil
}
