package entity

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Estados válidos para Tenant.
const (
	TenantPending  = "pending"
	TenantActive   = "active"
	TenantRejected = "rejected"
	TenantFrozen   = "frozen"
)

// tenantTransitions define los cambios de estado permitidos para un tenant.
// Solo super_admin ejecuta estas transiciones; el resto del sistema consulta
// únicamente si el tenant está activo.
var tenantTransitions = map[string][]string{
	TenantPending: {TenantActive, TenantRejected},
	TenantActive:  {TenantFrozen},
	TenantFrozen:  {TenantActive},
	// rejected es terminal dentro de este motor.
}

// CanTransitionTenant indica si el cambio de estado from -> to es válido.
func CanTransitionTenant(from, to string) bool {
	for _, dst := range tenantTransitions[from] {
		if dst == to {
			return true
		}
	}
	return false
}

// Tenant representa una fábrica registrada (unidad de aislamiento de datos).
type Tenant struct {
	ID              string
	FactoryName     string // único globalmente (comparación sobre forma normalizada)
	Status          string // pending, active, rejected, frozen
	WorkersCount    int
	ContactName     string
	ContactPhone    string
	ContactEmail    string
	RejectionReason string
	ApprovedAt      *time.Time
	RejectedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive indica si los miembros del tenant pueden iniciar sesión.
func (t *Tenant) IsActive() bool {
	return t.Status == TenantActive
}

// NormalizeFactoryName forma canónica del nombre de fábrica para la
// comparación de unicidad global: NFC + minúsculas + espacios colapsados.
func NormalizeFactoryName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(norm.NFC.String(name)), " "))
}
