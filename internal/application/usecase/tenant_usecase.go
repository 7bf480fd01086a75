package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Produccion-api/internal/application/authz"
	"github.com/jhoicas/Produccion-api/internal/application/autoid"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// TenantUseCase registro y ciclo de aprobación de fábricas.
type TenantUseCase struct {
	tenantRepo repository.TenantRepository
	userRepo   repository.UserRepository
	autoID     *autoid.Generator
	now        func() time.Time
}

// NewTenantUseCase construye el caso de uso.
func NewTenantUseCase(tenantRepo repository.TenantRepository, userRepo repository.UserRepository, autoID *autoid.Generator) *TenantUseCase {
	return &TenantUseCase{tenantRepo: tenantRepo, userRepo: userRepo, autoID: autoID, now: time.Now}
}

// Signup registro público: crea el tenant en pending y su factory_admin.
// Nombre de fábrica duplicado (sobre la forma normalizada) -> ErrDuplicate.
func (uc *TenantUseCase) Signup(in dto.SignupRequest) (*dto.SignupResponse, error) {
	if in.FactoryName == "" || in.AdminEmail == "" || in.AdminPassword == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.tenantRepo.GetByNormalizedName(entity.NormalizeFactoryName(in.FactoryName))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if u, err := uc.userRepo.GetByEmail(in.AdminEmail); err != nil {
		return nil, err
	} else if u != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	tenant := &entity.Tenant{
		ID:           uuid.New().String(),
		FactoryName:  in.FactoryName,
		Status:       entity.TenantPending,
		WorkersCount: in.WorkersCount,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.tenantRepo.Create(tenant); err != nil {
		return nil, err
	}

	adminName := in.AdminName
	if adminName == "" {
		adminName = in.AdminEmail
	}
	admin, err := createWithAutoID(uc.userRepo, uc.autoID, &entity.User{
		ID:           uuid.New().String(),
		TenantID:     tenant.ID,
		Name:         adminName,
		Email:        in.AdminEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleFactoryAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	return &dto.SignupResponse{
		Tenant:      *toTenantResponse(tenant),
		AdminAutoID: admin.AutoID,
	}, nil
}

// Approve pending -> active. Solo super_admin.
func (uc *TenantUseCase) Approve(caller authz.Caller, tenantID string) (*dto.TenantResponse, error) {
	return uc.transition(caller, authz.OpTenantApprove, tenantID, entity.TenantActive, "")
}

// Reject pending -> rejected con motivo obligatorio. Terminal en este motor.
func (uc *TenantUseCase) Reject(caller authz.Caller, tenantID, reason string) (*dto.TenantResponse, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.transition(caller, authz.OpTenantReject, tenantID, entity.TenantRejected, reason)
}

// Freeze active -> frozen: bloquea el login de los miembros sin borrar nada.
func (uc *TenantUseCase) Freeze(caller authz.Caller, tenantID string) (*dto.TenantResponse, error) {
	return uc.transition(caller, authz.OpTenantFreeze, tenantID, entity.TenantFrozen, "")
}

// Unfreeze frozen -> active.
func (uc *TenantUseCase) Unfreeze(caller authz.Caller, tenantID string) (*dto.TenantResponse, error) {
	return uc.transition(caller, authz.OpTenantUnfreeze, tenantID, entity.TenantActive, "")
}

func (uc *TenantUseCase) transition(caller authz.Caller, op, tenantID, to, reason string) (*dto.TenantResponse, error) {
	if err := authz.Require(caller, op); err != nil {
		return nil, err
	}
	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransitionTenant(tenant.Status, to) {
		return nil, domain.ErrInvalidState
	}

	now := uc.now()
	tenant.Status = to
	tenant.UpdatedAt = now
	switch to {
	case entity.TenantActive:
		if tenant.ApprovedAt == nil {
			tenant.ApprovedAt = &now
		}
	case entity.TenantRejected:
		tenant.RejectionReason = reason
		tenant.RejectedAt = &now
	}
	if err := uc.tenantRepo.Update(tenant); err != nil {
		return nil, err
	}
	return toTenantResponse(tenant), nil
}

// List lista tenants (solo super_admin), opcionalmente por estado.
func (uc *TenantUseCase) List(caller authz.Caller, status string, page dto.PageRequest) (*dto.TenantListResponse, error) {
	if err := authz.Require(caller, authz.OpTenantList); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, total, err := uc.tenantRepo.List(status, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.TenantResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTenantResponse(t))
	}
	return &dto.TenantListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Limit: page.Limit, Total: total},
	}, nil
}

// GetByID super_admin lee cualquier tenant; factory_admin solo el propio.
func (uc *TenantUseCase) GetByID(caller authz.Caller, tenantID string) (*dto.TenantResponse, error) {
	if err := authz.Require(caller, authz.OpTenantRead); err != nil {
		return nil, err
	}
	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.EnsureTenant(caller, tenant.ID); err != nil {
		return nil, err
	}
	return toTenantResponse(tenant), nil
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
