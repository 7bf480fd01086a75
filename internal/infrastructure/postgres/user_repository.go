package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// tenant_id se persiste como NULL para super_admin (vacío en la entidad).
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, auto_id, tenant_id, name, email, password_hash, role, is_active, created_at, updated_at`

// Create persiste un nuevo usuario. Violación de unicidad (auto_id o email) -> ErrDuplicate.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		u.ID, u.AutoID, u.TenantID, u.Name, u.Email, u.PasswordHash, u.Role, u.IsActive,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email; nil si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getOne(`WHERE email = $1`, email)
}

// GetByAutoID obtiene un usuario por su identificador legible; nil si no existe.
func (r *UserRepo) GetByAutoID(autoID string) (*entity.User, error) {
	return r.getOne(`WHERE auto_id = $1`, autoID)
}

func (r *UserRepo) getOne(where string, arg any) (*entity.User, error) {
	query := `
		SELECT id, auto_id, COALESCE(tenant_id, ''), name, COALESCE(email, ''),
			password_hash, role, is_active, created_at, updated_at
		FROM users ` + where + ` LIMIT 1`
	var u entity.User
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.AutoID, &u.TenantID, &u.Name, &u.Email,
		&u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update actualiza un usuario (la membresía de tenant nunca se modifica).
func (r *UserRepo) Update(u *entity.User) error {
	query := `
		UPDATE users SET name = $2, email = NULLIF($3, ''), password_hash = $4,
			role = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.IsActive, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ListByTenant lista usuarios del tenant (opcionalmente por rol) con paginación.
// tenantID vacío lista todos los tenants (solo llega así desde super_admin).
func (r *UserRepo) ListByTenant(tenantID, role string, limit, offset int) ([]*entity.User, int, error) {
	const where = `WHERE ($1 = '' OR tenant_id = $1) AND ($2 = '' OR role = $2)`

	var total int
	err := r.db.QueryRow(context.Background(),
		`SELECT count(*) FROM users `+where, tenantID, role).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := `
		SELECT id, auto_id, COALESCE(tenant_id, ''), name, COALESCE(email, ''),
			password_hash, role, is_active, created_at, updated_at
		FROM users
		` + where + `
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(context.Background(), query, tenantID, role, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.AutoID, &u.TenantID, &u.Name, &u.Email,
			&u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, total, rows.Err()
}

// MaxAutoID devuelve el auto_id lexicográficamente mayor con el prefijo dado,
// restringido al tenant si tenantID no es vacío. "" si no hay ninguno.
func (r *UserRepo) MaxAutoID(prefix, tenantID string) (string, error) {
	query := `
		SELECT auto_id FROM users
		WHERE auto_id LIKE $1 || '%' AND ($2 = '' OR tenant_id = $2)
		ORDER BY auto_id DESC LIMIT 1`
	var autoID string
	err := r.db.QueryRow(context.Background(), query, prefix, tenantID).Scan(&autoID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("max auto_id: %w", err)
	}
	return autoID, nil
}
