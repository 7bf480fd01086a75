package dto

import "time"

// LoginRequest credenciales de acceso. Identifier es email (factory_admin y
// super_admin) o autoId (supervisores y empleados).
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResponse access + refresh token más el snapshot de usuario y tenant.
type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	User         UserResponse    `json:"user"`
	Tenant       *TenantResponse `json:"tenant,omitempty"` // nil para super_admin
}

// RefreshRequest canje de refresh token por un nuevo access token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse nuevo access token; el refresh token se reutiliza (sin rotación).
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LogoutRequest revocación del refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UserResponse representación pública de un usuario (sin hash).
type UserResponse struct {
	ID        string    `json:"id"`
	AutoID    string    `json:"auto_id"`
	TenantID  string    `json:"tenant_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
