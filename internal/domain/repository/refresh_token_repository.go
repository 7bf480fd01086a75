package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// RefreshTokenRepository define el puerto de persistencia para RefreshToken (DIP).
type RefreshTokenRepository interface {
	Save(token *entity.RefreshToken) error
	// Get devuelve nil, nil si el token no está almacenado.
	Get(token string) (*entity.RefreshToken, error)
	// Delete es idempotente: borrar un token ausente no es error.
	Delete(token string) error
}
