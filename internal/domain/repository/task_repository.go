package repository

import (
	"time"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// TaskFilter filtro tipado para listados de tareas. Los campos vacíos no
// filtran. OverdueBefore convierte el estado derivado "overdue" en un filtro
// almacenable: status=active y deadline anterior al instante dado.
type TaskFilter struct {
	TenantID      string // vacío = todos los tenants (solo super_admin llega aquí así)
	EmployeeID    string
	Status        string
	Week          string
	OverdueBefore *time.Time
	Limit         int
	Offset        int
}

// TaskRow tarea con nombres denormalizados para listados.
type TaskRow struct {
	Task         entity.Task
	EmployeeName string
	ProductName  string
	StageName    string
}

// TaskRepository define el puerto de persistencia para Task (DIP).
//
// UpdateIfStatus y DeleteIfStatus son el contrato de serialización por tarea:
// escriben SOLO si el estado almacenado sigue siendo el esperado y reportan si
// alguna fila coincidió. Dos confirmaciones concurrentes sobre la misma tarea
// no pueden ganar ambas, y un borrado nunca pisa una tarea ya juzgada.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	List(f TaskFilter) ([]*TaskRow, int, error)
	UpdateIfStatus(task *entity.Task, expected string) (bool, error)
	DeleteIfStatus(id string, expected ...string) (bool, error)
}
