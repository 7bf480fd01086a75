package dto

import "time"

// SignupRequest registro público de una fábrica. Crea el tenant en estado
// pending y su usuario factory_admin; el login queda bloqueado hasta la aprobación.
type SignupRequest struct {
	FactoryName   string `json:"factory_name"`
	WorkersCount  int    `json:"workers_count"`
	ContactName   string `json:"contact_name"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email"`
	AdminName     string `json:"admin_name"`
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
}

// SignupResponse tenant creado y el autoId del administrador.
type SignupResponse struct {
	Tenant      TenantResponse `json:"tenant"`
	AdminAutoID string         `json:"admin_auto_id"`
}

// RejectTenantRequest motivo obligatorio del rechazo.
type RejectTenantRequest struct {
	Reason string `json:"reason"`
}

// TenantResponse representación pública de un tenant.
type TenantResponse struct {
	ID              string     `json:"id"`
	FactoryName     string     `json:"factory_name"`
	Status          string     `json:"status"`
	WorkersCount    int        `json:"workers_count"`
	ContactName     string     `json:"contact_name"`
	ContactPhone    string     `json:"contact_phone"`
	ContactEmail    string     `json:"contact_email"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TenantListResponse página de tenants.
type TenantListResponse struct {
	Items []TenantResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
