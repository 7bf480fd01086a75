package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto del tenant.
type CreateProductRequest struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// UpdateProductRequest campos opcionales a actualizar.
type UpdateProductRequest struct {
	Name      *string          `json:"name,omitempty"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	IsActive  *bool            `json:"is_active,omitempty"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenant_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateProcessStageRequest alta de etapa de proceso.
type CreateProcessStageRequest struct {
	Name        string          `json:"name"`
	Sequence    int             `json:"sequence"`
	RatePerUnit decimal.Decimal `json:"rate_per_unit"`
}

// ProcessStageResponse representación pública de una etapa.
type ProcessStageResponse struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	Name        string          `json:"name"`
	Sequence    int             `json:"sequence"`
	RatePerUnit decimal.Decimal `json:"rate_per_unit"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProcessStageListResponse página de etapas.
type ProcessStageListResponse struct {
	Items []ProcessStageResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
