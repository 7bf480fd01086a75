package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto fabricado por el tenant (referente de tareas).
type Product struct {
	ID        string
	TenantID  string
	Code      string // único por tenant
	Name      string
	UnitPrice decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
