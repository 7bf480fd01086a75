package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByAutoID(autoID string) (*entity.User, error)
	Update(user *entity.User) error
	// ListByTenant devuelve la página solicitada y el total de filas que
	// cumplen el filtro, para poblar la paginación de la respuesta.
	ListByTenant(tenantID, role string, limit, offset int) ([]*entity.User, int, error)
	// MaxAutoID devuelve el autoId lexicográficamente mayor que empieza con
	// prefix, restringido al tenant si tenantID no es vacío. "" si no hay.
	MaxAutoID(prefix, tenantID string) (string, error)
}
