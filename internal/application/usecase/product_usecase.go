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

// ProductUseCase CRUD de productos del tenant (referentes de tareas).
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// Create crea un producto. Código duplicado dentro del tenant -> ErrDuplicate.
func (uc *ProductUseCase) Create(caller authz.Caller, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := authz.Require(caller, authz.OpProductWrite); err != nil {
		return nil, err
	}
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByTenantAndCode(caller.TenantID, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := uc.now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		TenantID:  caller.TenantID,
		Code:      in.Code,
		Name:      in.Name,
		UnitPrice: in.UnitPrice,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto con la doble verificación de tenant.
func (uc *ProductUseCase) GetByID(caller authz.Caller, id string) (*dto.ProductResponse, error) {
	if err := authz.Require(caller, authz.OpProductRead); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.EnsureTenant(caller, product.TenantID); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza nombre, precio o estado. El código no se modifica.
func (uc *ProductUseCase) Update(caller authz.Caller, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := authz.Require(caller, authz.OpProductWrite); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.EnsureTenant(caller, product.TenantID); err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = uc.now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos del tenant con paginación.
func (uc *ProductUseCase) List(caller authz.Caller, tenantID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	if err := authz.Require(caller, authz.OpProductRead); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, total, err := uc.repo.ListByTenant(authz.ScopeTenant(caller, tenantID), page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Limit: page.Limit, Total: total},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		TenantID:  p.TenantID,
		Code:      p.Code,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
