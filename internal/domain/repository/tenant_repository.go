package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// TenantRepository define el puerto de persistencia para Tenant (DIP).
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	// GetByNormalizedName busca por el nombre de fábrica ya normalizado
	// (NFC + minúsculas); nil si no existe.
	GetByNormalizedName(name string) (*entity.Tenant, error)
	Update(tenant *entity.Tenant) error
	List(status string, limit, offset int) ([]*entity.Tenant, int, error)
}
