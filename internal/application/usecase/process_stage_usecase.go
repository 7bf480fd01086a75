package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Produccion-api/internal/application/authz"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// ProcessStageUseCase CRUD de etapas del proceso productivo.
type ProcessStageUseCase struct {
	repo repository.ProcessStageRepository
	now  func() time.Time
}

// NewProcessStageUseCase construye el caso de uso.
func NewProcessStageUseCase(repo repository.ProcessStageRepository) *ProcessStageUseCase {
	return &ProcessStageUseCase{repo: repo, now: time.Now}
}

// Create crea una etapa. RatePerUnit negativa -> ErrInvalidInput.
func (uc *ProcessStageUseCase) Create(caller authz.Caller, in dto.CreateProcessStageRequest) (*dto.ProcessStageResponse, error) {
	if err := authz.Require(caller, authz.OpStageWrite); err != nil {
		return nil, err
	}
	if in.Name == "" || in.RatePerUnit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	stage := &entity.ProcessStage{
		ID:          uuid.New().String(),
		TenantID:    caller.TenantID,
		Name:        in.Name,
		Sequence:    in.Sequence,
		RatePerUnit: in.RatePerUnit,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(stage); err != nil {
		return nil, err
	}
	return toStageResponse(stage), nil
}

// GetByID obtiene una etapa con la doble verificación de tenant.
func (uc *ProcessStageUseCase) GetByID(caller authz.Caller, id string) (*dto.ProcessStageResponse, error) {
	if err := authz.Require(caller, authz.OpStageRead); err != nil {
		return nil, err
	}
	stage, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.EnsureTenant(caller, stage.TenantID); err != nil {
		return nil, err
	}
	return toStageResponse(stage), nil
}

// List lista etapas del tenant ordenadas por secuencia.
func (uc *ProcessStageUseCase) List(caller authz.Caller, tenantID string, page dto.PageRequest) (*dto.ProcessStageListResponse, error) {
	if err := authz.Require(caller, authz.OpStageRead); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, total, err := uc.repo.ListByTenant(authz.ScopeTenant(caller, tenantID), page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProcessStageResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStageResponse(s))
	}
	return &dto.ProcessStageListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Limit: page.Limit, Total: total},
	}, nil
}

func toStageResponse(s *entity.ProcessStage) *dto.ProcessStageResponse {
	if s == nil {
		return nil
	}
	return &dto.ProcessStageResponse{
		ID:          s.ID,
		TenantID:    s.TenantID,
		Name:        s.Name,
		Sequence:    s.Sequence,
		RatePerUnit: s.RatePerUnit,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
