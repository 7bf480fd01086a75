package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.RefreshTokenRepository = (*RefreshTokenRepo)(nil)

// RefreshTokenRepo implementación del puerto RefreshTokenRepository sobre PostgreSQL.
type RefreshTokenRepo struct {
	db Querier
}

// NewRefreshTokenRepository construye el adaptador de persistencia para refresh tokens.
func NewRefreshTokenRepository(db Querier) *RefreshTokenRepo {
	return &RefreshTokenRepo{db: db}
}

// Save persiste un refresh token emitido.
func (r *RefreshTokenRepo) Save(t *entity.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(context.Background(), query, t.Token, t.UserID, t.ExpiresAt, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert refresh token: %w", err)
	}
	return nil
}

// Get obtiene un refresh token almacenado; nil si no existe.
func (r *RefreshTokenRepo) Get(token string) (*entity.RefreshToken, error) {
	query := `SELECT token, user_id, expires_at, created_at FROM refresh_tokens WHERE token = $1`
	var t entity.RefreshToken
	err := r.db.QueryRow(context.Background(), query, token).Scan(
		&t.Token, &t.UserID, &t.ExpiresAt, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get refresh token: %w", err)
	}
	return &t, nil
}

// Delete elimina un refresh token; la ausencia no es error (logout idempotente).
func (r *RefreshTokenRepo) Delete(token string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM refresh_tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}
