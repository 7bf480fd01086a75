package authz

import (
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// Operaciones con control de acceso declarativo. Cada caso de uso consulta la
// tabla con su propia clave; así el mapa rol→permiso se audita en un solo lugar
// en vez de re-derivarse en cada handler.
const (
	OpTaskCreate   = "task:create"
	OpTaskProgress = "task:progress"
	OpTaskConfirm  = "task:confirm"
	OpTaskReject   = "task:reject"
	OpTaskDelete   = "task:delete"
	OpTaskList     = "task:list"
	OpTaskRead     = "task:read"

	OpUserCreate     = "user:create"
	OpUserList       = "user:list"
	OpUserRead       = "user:read"
	OpUserDeactivate = "user:deactivate"

	OpProductWrite = "product:write"
	OpProductRead  = "product:read"
	OpStageWrite   = "stage:write"
	OpStageRead    = "stage:read"

	OpTenantList     = "tenant:list"
	OpTenantRead     = "tenant:read"
	OpTenantApprove  = "tenant:approve"
	OpTenantReject   = "tenant:reject"
	OpTenantFreeze   = "tenant:freeze"
	OpTenantUnfreeze = "tenant:unfreeze"
)

// allowed tabla operación → roles permitidos. super_admin nunca está implícito:
// aparece solo en las operaciones que lo nombran.
var allowed = map[string][]string{
	OpTaskCreate:   {entity.RoleSupervisor, entity.RoleFactoryAdmin},
	OpTaskProgress: {entity.RoleEmployee, entity.RoleSuperAdmin},
	OpTaskConfirm:  {entity.RoleSupervisor, entity.RoleFactoryAdmin},
	OpTaskReject:   {entity.RoleSupervisor, entity.RoleFactoryAdmin},
	OpTaskDelete:   {entity.RoleSupervisor, entity.RoleFactoryAdmin},
	OpTaskList:     {entity.RoleSuperAdmin, entity.RoleFactoryAdmin, entity.RoleSupervisor, entity.RoleEmployee},
	OpTaskRead:     {entity.RoleSuperAdmin, entity.RoleFactoryAdmin, entity.RoleSupervisor, entity.RoleEmployee},

	OpUserCreate:     {entity.RoleFactoryAdmin},
	OpUserList:       {entity.RoleSuperAdmin, entity.RoleFactoryAdmin, entity.RoleSupervisor},
	OpUserRead:       {entity.RoleSuperAdmin, entity.RoleFactoryAdmin, entity.RoleSupervisor},
	OpUserDeactivate: {entity.RoleFactoryAdmin},

	OpProductWrite: {entity.RoleFactoryAdmin},
	OpProductRead:  {entity.RoleFactoryAdmin, entity.RoleSupervisor},
	OpStageWrite:   {entity.RoleFactoryAdmin},
	OpStageRead:    {entity.RoleFactoryAdmin, entity.RoleSupervisor},

	OpTenantList:     {entity.RoleSuperAdmin},
	OpTenantRead:     {entity.RoleSuperAdmin, entity.RoleFactoryAdmin},
	OpTenantApprove:  {entity.RoleSuperAdmin},
	OpTenantReject:   {entity.RoleSuperAdmin},
	OpTenantFreeze:   {entity.RoleSuperAdmin},
	OpTenantUnfreeze: {entity.RoleSuperAdmin},
}

// Can predicado puro: ¿el rol está en el allow-set de la operación?
func Can(role, op string) bool {
	for _, r := range allowed[op] {
		if r == role {
			return true
		}
	}
	return false
}

// Require verifica el rol del caller contra la tabla ANTES de tocar el tenant:
// un caller no autorizado nunca dispara una lectura con scope de tenant.
func Require(c Caller, op string) error {
	if !Can(c.Role, op) {
		return domain.ErrForbidden
	}
	return nil
}

// AllowedRoles devuelve el allow-set declarado para una operación (copia).
// Lo usa el middleware HTTP para registrar rutas con la misma tabla.
func AllowedRoles(op string) []string {
	roles := allowed[op]
	out := make([]string, len(roles))
	copy(out, roles)
	return out
}
