package entity

import "time"

// Estados persistidos para Task. "overdue" no se persiste: es un estado de
// presentación derivado (active con deadline vencido) calculado al leer.
const (
	TaskActive    = "active"
	TaskCompleted = "completed"
	TaskConfirmed = "confirmed"
	TaskRejected  = "rejected"
	TaskOverdue   = "overdue" // solo derivado, nunca almacenado
)

// Task representa una asignación de trabajo a un empleado dentro de un tenant.
// El motor de ciclo de vida es el único mutador de Status, CompletedQty y los
// timestamps de transición.
type Task struct {
	ID              string
	TenantID        string
	EmployeeID      string
	ProductID       string
	ProcessStageID  string
	TargetQty       int // >= 1
	CompletedQty    int // 0 <= CompletedQty <= TargetQty
	Status          string
	Deadline        time.Time
	DeadlineWeek    string // etiqueta de semana (ej. "2026-W35")
	Notes           string
	RejectionReason string
	AssignedBy      string
	AssignedAt      time.Time
	CompletedAt     *time.Time
	ConfirmedAt     *time.Time
}

// DisplayStatus devuelve el estado visible: una tarea activa con deadline
// vencido se muestra como overdue sin cambiar el estado almacenado.
func (t *Task) DisplayStatus(now time.Time) string {
	if t.Status == TaskActive && now.After(t.Deadline) {
		return TaskOverdue
	}
	return t.Status
}
