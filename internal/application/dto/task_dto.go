package dto

import "time"

// CreateTaskRequest asignación de una nueva tarea a un empleado del tenant.
type CreateTaskRequest struct {
	EmployeeID     string    `json:"employee_id"`
	ProductID      string    `json:"product_id"`
	ProcessStageID string    `json:"process_stage_id"`
	TargetQty      int       `json:"target_qty"`
	Deadline       time.Time `json:"deadline"`
	DeadlineWeek   string    `json:"deadline_week,omitempty"` // si falta se deriva de la fecha (semana ISO)
	Notes          string    `json:"notes,omitempty"`
}

// UpdateProgressRequest avance reportado por el empleado asignado.
type UpdateProgressRequest struct {
	CompletedQty int `json:"completed_qty"`
}

// ConfirmTaskRequest confirmación del supervisor. ConfirmedQty nil = aceptar
// la cantidad reportada tal cual.
type ConfirmTaskRequest struct {
	ConfirmedQty *int `json:"confirmed_qty,omitempty"`
}

// ConfirmTaskResponse tarea confirmada más la tarea residual si la
// confirmación fue parcial.
type ConfirmTaskResponse struct {
	Task         TaskResponse  `json:"task"`
	ResidualTask *TaskResponse `json:"residual_task"`
}

// RejectTaskRequest motivo obligatorio del rechazo.
type RejectTaskRequest struct {
	Reason string `json:"reason"`
}

// TaskListQuery filtros tipados del listado de tareas. TenantID solo surte
// efecto para super_admin; para el resto el scope lo impone el token.
type TaskListQuery struct {
	EmployeeID string `query:"employee_id"`
	Status     string `query:"status"` // acepta el derivado "overdue"
	Week       string `query:"week"`
	TenantID   string `query:"tenant_id"`
	PageRequest
}

// TaskResponse representación pública de una tarea. Status es el estado
// visible: una tarea activa con deadline vencido se reporta como "overdue".
type TaskResponse struct {
	ID              string     `json:"id"`
	TenantID        string     `json:"tenant_id"`
	EmployeeID      string     `json:"employee_id"`
	EmployeeName    string     `json:"employee_name,omitempty"`
	ProductID       string     `json:"product_id"`
	ProductName     string     `json:"product_name,omitempty"`
	ProcessStageID  string     `json:"process_stage_id"`
	StageName       string     `json:"stage_name,omitempty"`
	TargetQty       int        `json:"target_qty"`
	CompletedQty    int        `json:"completed_qty"`
	Status          string     `json:"status"`
	Deadline        time.Time  `json:"deadline"`
	DeadlineWeek    string     `json:"deadline_week"`
	Notes           string     `json:"notes,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	AssignedBy      string     `json:"assigned_by"`
	AssignedAt      time.Time  `json:"assigned_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`
}

// TaskListResponse página de tareas con total.
type TaskListResponse struct {
	Items []TaskResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
