package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByTenantAndCode(tenantID, code string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Product, int, error)
}
