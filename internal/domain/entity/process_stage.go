package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcessStage representa una etapa del proceso productivo (corte, costura,
// ensamble...). RatePerUnit es la tarifa a destajo pagada por unidad confirmada.
type ProcessStage struct {
	ID          string
	TenantID    string
	Name        string
	Sequence    int
	RatePerUnit decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
