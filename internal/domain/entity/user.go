package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin   = "super_admin"
	RoleFactoryAdmin = "factory_admin"
	RoleSupervisor   = "supervisor"
	RoleEmployee     = "employee"
)

// User representa un usuario del sistema. Todo usuario salvo super_admin
// pertenece a un Tenant; la membresía es inmutable después de la creación.
type User struct {
	ID           string
	AutoID       string // identificador legible, único (EMP001..., SUP001..., ADM001...)
	TenantID     string // vacío solo para super_admin
	Name         string
	Email        string // requerido para factory_admin y super_admin; único cuando existe
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // super_admin, factory_admin, supervisor, employee
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
