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

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación del puerto TenantRepository sobre PostgreSQL.
// factory_name_norm guarda la forma normalizada del nombre y lleva el índice
// único de unicidad global.
type TenantRepo struct {
	db Querier
}

// NewTenantRepository construye el adaptador de persistencia para tenants.
func NewTenantRepository(db Querier) *TenantRepo {
	return &TenantRepo{db: db}
}

const tenantColumns = `id, factory_name, status, workers_count, contact_name, contact_phone,
		contact_email, rejection_reason, approved_at, rejected_at, created_at, updated_at`

// Create persiste un nuevo tenant. Nombre normalizado duplicado -> ErrDuplicate.
func (r *TenantRepo) Create(t *entity.Tenant) error {
	query := `
		INSERT INTO tenants (` + tenantColumns + `, factory_name_norm)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(context.Background(), query,
		t.ID, t.FactoryName, t.Status, t.WorkersCount, t.ContactName, t.ContactPhone,
		t.ContactEmail, t.RejectionReason, t.ApprovedAt, t.RejectedAt, t.CreatedAt, t.UpdatedAt,
		entity.NormalizeFactoryName(t.FactoryName),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene un tenant por ID; nil si no existe.
func (r *TenantRepo) GetByID(id string) (*entity.Tenant, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByNormalizedName busca por el nombre normalizado; nil si no existe.
func (r *TenantRepo) GetByNormalizedName(name string) (*entity.Tenant, error) {
	return r.getOne(`WHERE factory_name_norm = $1`, name)
}

func (r *TenantRepo) getOne(where string, arg any) (*entity.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants ` + where + ` LIMIT 1`
	var t entity.Tenant
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&t.ID, &t.FactoryName, &t.Status, &t.WorkersCount, &t.ContactName, &t.ContactPhone,
		&t.ContactEmail, &t.RejectionReason, &t.ApprovedAt, &t.RejectedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

// Update actualiza un tenant.
func (r *TenantRepo) Update(t *entity.Tenant) error {
	query := `
		UPDATE tenants SET factory_name = $2, status = $3, workers_count = $4,
			contact_name = $5, contact_phone = $6, contact_email = $7,
			rejection_reason = $8, approved_at = $9, rejected_at = $10, updated_at = $11,
			factory_name_norm = $12
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		t.ID, t.FactoryName, t.Status, t.WorkersCount,
		t.ContactName, t.ContactPhone, t.ContactEmail,
		t.RejectionReason, t.ApprovedAt, t.RejectedAt, t.UpdatedAt,
		entity.NormalizeFactoryName(t.FactoryName),
	)
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	return nil
}

// List lista tenants (opcionalmente por estado) con paginación.
func (r *TenantRepo) List(status string, limit, offset int) ([]*entity.Tenant, int, error) {
	const where = `WHERE ($1 = '' OR status = $1)`

	var total int
	err := r.db.QueryRow(context.Background(),
		`SELECT count(*) FROM tenants `+where, status).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count tenants: %w", err)
	}

	query := `
		SELECT ` + tenantColumns + ` FROM tenants
		` + where + `
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tenant
	for rows.Next() {
		var t entity.Tenant
		if err := rows.Scan(&t.ID, &t.FactoryName, &t.Status, &t.WorkersCount, &t.ContactName,
			&t.ContactPhone, &t.ContactEmail, &t.RejectionReason, &t.ApprovedAt, &t.RejectedAt,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, &t)
	}
	return list, total, rows.Err()
}
