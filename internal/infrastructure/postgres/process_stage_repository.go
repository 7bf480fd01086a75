package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.ProcessStageRepository = (*ProcessStageRepo)(nil)

// ProcessStageRepo implementación del puerto ProcessStageRepository sobre PostgreSQL.
type ProcessStageRepo struct {
	db Querier
}

// NewProcessStageRepository construye el adaptador de persistencia para etapas.
func NewProcessStageRepository(db Querier) *ProcessStageRepo {
	return &ProcessStageRepo{db: db}
}

const stageColumns = `id, tenant_id, name, sequence, rate_per_unit, is_active, created_at, updated_at`

// Create persiste una nueva etapa de proceso.
func (r *ProcessStageRepo) Create(s *entity.ProcessStage) error {
	query := `
		INSERT INTO process_stages (` + stageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		s.ID, s.TenantID, s.Name, s.Sequence, s.RatePerUnit, s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert process stage: %w", err)
	}
	return nil
}

// GetByID obtiene una etapa por ID; nil si no existe.
func (r *ProcessStageRepo) GetByID(id string) (*entity.ProcessStage, error) {
	query := `SELECT ` + stageColumns + ` FROM process_stages WHERE id = $1`
	var s entity.ProcessStage
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.TenantID, &s.Name, &s.Sequence, &s.RatePerUnit, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get process stage: %w", err)
	}
	return &s, nil
}

// ListByTenant lista etapas del tenant ordenadas por secuencia y devuelve el total.
func (r *ProcessStageRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.ProcessStage, int, error) {
	const where = `WHERE ($1 = '' OR tenant_id = $1)`

	var total int
	err := r.db.QueryRow(context.Background(),
		`SELECT count(*) FROM process_stages `+where, tenantID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count process stages: %w", err)
	}

	query := `
		SELECT ` + stageColumns + ` FROM process_stages
		` + where + `
		ORDER BY sequence ASC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list process stages: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProcessStage
	for rows.Next() {
		var s entity.ProcessStage
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Name, &s.Sequence, &s.RatePerUnit, &s.IsActive,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan process stage: %w", err)
		}
		list = append(list, &s)
	}
	return list, total, rows.Err()
}
