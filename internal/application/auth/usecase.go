package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
	"github.com/jhoicas/Produccion-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret      string
	ExpMinutes  int
	RefreshDays int
	Issuer      string
}

// AuthUseCase emisor de tokens: login, refresh y logout.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
	tokenRepo  repository.RefreshTokenRepository
	jwtCfg     JWTConfig
	now        func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tenantRepo repository.TenantRepository, tokenRepo repository.RefreshTokenRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		tenantRepo: tenantRepo,
		tokenRepo:  tokenRepo,
		jwtCfg:     jwtCfg,
		now:        time.Now,
	}
}

// Login verifica identifier/password y emite access + refresh token.
// El identifier es email si contiene '@' (factory_admin, super_admin) o autoId
// en caso contrario (supervisores y empleados). Usuario ausente, inactivo o
// password incorrecta colapsan en el mismo error para no filtrar cuál falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Identifier == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	var user *entity.User
	var err error
	if strings.Contains(in.Identifier, "@") {
		user, err = uc.userRepo.GetByEmail(in.Identifier)
	} else {
		user, err = uc.userRepo.GetByAutoID(strings.ToUpper(in.Identifier))
	}
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// El tenant debe estar activo para todos salvo super_admin (que no tiene).
	var tenant *entity.Tenant
	if user.Role != entity.RoleSuperAdmin {
		tenant, err = uc.tenantRepo.GetByID(user.TenantID)
		if err != nil {
			return nil, err
		}
		if tenant == nil || !tenant.IsActive() {
			return nil, domain.ErrTenantInactive
		}
	}

	accessToken, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.TenantID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar access token: %w", err)
	}

	refresh, err := newRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generar refresh token: %w", err)
	}
	now := uc.now()
	if err := uc.tokenRepo.Save(&entity.RefreshToken{
		Token:     refresh,
		UserID:    user.ID,
		ExpiresAt: now.Add(time.Duration(uc.jwtCfg.RefreshDays) * 24 * time.Hour),
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh,
		User:         *ToUserResponse(user),
		Tenant:       toTenantResponse(tenant),
	}, nil
}

// Refresh canjea un refresh token almacenado y vigente por un nuevo access
// token. El mismo refresh token se reutiliza (sin rotación). Un token expirado
// se elimina al detectarse (GC pasivo).
func (uc *AuthUseCase) Refresh(in dto.RefreshRequest) (*dto.RefreshResponse, error) {
	if in.RefreshToken == "" {
		return nil, domain.ErrInvalidToken
	}
	stored, err := uc.tokenRepo.Get(in.RefreshToken)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, domain.ErrInvalidToken
	}
	if stored.Expired(uc.now()) {
		_ = uc.tokenRepo.Delete(stored.Token)
		return nil, domain.ErrInvalidToken
	}

	user, err := uc.userRepo.GetByID(stored.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	accessToken, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.TenantID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar access token: %w", err)
	}
	return &dto.RefreshResponse{
		AccessToken:  accessToken,
		RefreshToken: stored.Token,
	}, nil
}

// Logout elimina el refresh token almacenado. Idempotente: la ausencia no es error.
func (uc *AuthUseCase) Logout(in dto.LogoutRequest) error {
	if in.RefreshToken == "" {
		return nil
	}
	return uc.tokenRepo.Delete(in.RefreshToken)
}

// newRefreshToken genera un token opaco (32 bytes aleatorios, base64url).
func newRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// ToUserResponse mapea la entidad al DTO público (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		AutoID:    u.AutoID,
		TenantID:  u.TenantID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	if t == nil {
		return nil
	}
	return &dto.TenantResponse{
		ID:              t.ID,
		FactoryName:     t.FactoryName,
		Status:          t.Status,
		WorkersCount:    t.WorkersCount,
		ContactName:     t.ContactName,
		ContactPhone:    t.ContactPhone,
		ContactEmail:    t.ContactEmail,
		RejectionReason: t.RejectionReason,
		ApprovedAt:      t.ApprovedAt,
		RejectedAt:      t.RejectedAt,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
