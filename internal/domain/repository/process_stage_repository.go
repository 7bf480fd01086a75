package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// ProcessStageRepository define el puerto de persistencia para ProcessStage (DIP).
type ProcessStageRepository interface {
	Create(stage *entity.ProcessStage) error
	GetByID(id string) (*entity.ProcessStage, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.ProcessStage, int, error)
}
