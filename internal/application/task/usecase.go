package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Produccion-api/internal/application/authz"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// TxRunner ejecuta fn con un TaskRepository atado a una transacción. La
// confirmación con saldo (update condicional + insert de la tarea residual)
// tiene que ser una unidad atómica: o la tarea queda confirmada CON su
// residual, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(tasks repository.TaskRepository) error) error
}

// UseCase motor del ciclo de vida de tareas. Único mutador de Status,
// CompletedQty y los timestamps de transición.
type UseCase struct {
	tx        TxRunner
	taskRepo  repository.TaskRepository
	userRepo  repository.UserRepository
	prodRepo  repository.ProductRepository
	stageRepo repository.ProcessStageRepository
	now       func() time.Time
}

// NewUseCase construye el motor.
func NewUseCase(tx TxRunner, taskRepo repository.TaskRepository, userRepo repository.UserRepository, prodRepo repository.ProductRepository, stageRepo repository.ProcessStageRepository) *UseCase {
	return &UseCase{
		tx:        tx,
		taskRepo:  taskRepo,
		userRepo:  userRepo,
		prodRepo:  prodRepo,
		stageRepo: stageRepo,
		now:       time.Now,
	}
}

// Create asigna una tarea nueva. Empleado, producto y etapa deben resolver
// dentro del tenant del caller (consistencia referencial de tenant).
func (uc *UseCase) Create(caller authz.Caller, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if err := authz.Require(caller, authz.OpTaskCreate); err != nil {
		return nil, err
	}
	if in.EmployeeID == "" || in.ProductID == "" || in.ProcessStageID == "" || in.Deadline.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.TargetQty < 1 {
		return nil, domain.ErrInvalidInput
	}

	emp, err := uc.userRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.Role != entity.RoleEmployee || !emp.IsActive || emp.TenantID != caller.TenantID {
		return nil, domain.ErrInvalidReference
	}
	product, err := uc.prodRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.TenantID != caller.TenantID {
		return nil, domain.ErrInvalidReference
	}
	stage, err := uc.stageRepo.GetByID(in.ProcessStageID)
	if err != nil {
		return nil, err
	}
	if stage == nil || stage.TenantID != caller.TenantID {
		return nil, domain.ErrInvalidReference
	}

	week := in.DeadlineWeek
	if week == "" {
		week = isoWeekLabel(in.Deadline)
	}
	t := &entity.Task{
		ID:             uuid.New().String(),
		TenantID:       caller.TenantID,
		EmployeeID:     in.EmployeeID,
		ProductID:      in.ProductID,
		ProcessStageID: in.ProcessStageID,
		TargetQty:      in.TargetQty,
		CompletedQty:   0,
		Status:         entity.TaskActive,
		Deadline:       in.Deadline,
		DeadlineWeek:   week,
		Notes:          in.Notes,
		AssignedBy:     caller.UserID,
		AssignedAt:     uc.now(),
	}
	if err := uc.taskRepo.Create(t); err != nil {
		return nil, err
	}
	return uc.toResponse(t), nil
}

// UpdateProgress registra el avance del empleado asignado (o super_admin).
// Alcanzar la meta pasa la tarea a completed; una tarea rechazada se reenvía
// por esta misma vía y vuelve a active o completed según la cantidad.
func (uc *UseCase) UpdateProgress(caller authz.Caller, taskID string, completedQty int) (*dto.TaskResponse, error) {
	if err := authz.Require(caller, authz.OpTaskProgress); err != nil {
		return nil, err
	}
	t, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.EnsureTenant(caller, t.TenantID); err != nil {
		return nil, err
	}
	if !caller.IsSuperAdmin() && t.EmployeeID != caller.UserID {
		return nil, domain.ErrForbidden
	}
	if completedQty < 0 {
		return nil, domain.ErrInvalidInput
	}
	if completedQty > t.TargetQty {
		return nil, domain.ErrQuantityExceeded
	}
	if t.Status != entity.TaskActive && t.Status != entity.TaskRejected {
		return nil, domain.ErrInvalidState
	}

	expected := t.Status
	updated := *t
	updated.CompletedQty = completedQty
	updated.RejectionReason = ""
	if completedQty == t.TargetQty {
		now := uc.now()
		updated.Status = entity.TaskCompleted
		updated.CompletedAt = &now
	} else {
		updated.Status = entity.TaskActive
		updated.CompletedAt = nil
	}

	// Escritura condicionada al estado leído: si entre lectura y escritura la
	// tarea cambió de estado (p.ej. fue confirmada), no se pisa nada.
	ok, err := uc.taskRepo.UpdateIfStatus(&updated, expected)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidState
	}
	return uc.toResponse(&updated), nil
}

// Confirm cierra una tarea completed. Con cantidad confirmada menor a la meta
// crea, en la misma transacción, la tarea residual por el saldo: cantidad
// confirmada + meta residual == meta original, nunca se pierden ni duplican
// unidades. El update condicional sobre status serializa confirmaciones
// concurrentes: exactamente una gana, la otra recibe ErrInvalidState.
func (uc *UseCase) Confirm(ctx context.Context, caller authz.Caller, taskID string, in dto.ConfirmTaskRequest) (*dto.ConfirmTaskResponse, error) {
	if err := authz.Require(caller, authz.OpTaskConfirm); err != nil {
		return nil, err
	}
	t, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.EnsureTenant(caller, t.TenantID); err != nil {
		return nil, err
	}
	if t.Status != entity.TaskCompleted {
		return nil, domain.ErrInvalidState
	}

	finalQty := t.CompletedQty
	if in.ConfirmedQty != nil {
		finalQty = *in.ConfirmedQty
	}
	if finalQty < 1 {
		return nil, domain.ErrInvalidInput
	}
	if finalQty > t.TargetQty {
		return nil, domain.ErrQuantityExceeded
	}

	now := uc.now()
	confirmed := *t
	confirmed.CompletedQty = finalQty
	confirmed.Status = entity.TaskConfirmed
	confirmed.ConfirmedAt = &now

	var residual *entity.Task
	if finalQty < t.TargetQty {
		residual = &entity.Task{
			ID:             uuid.New().String(),
			TenantID:       t.TenantID,
			EmployeeID:     t.EmployeeID,
			ProductID:      t.ProductID,
			ProcessStageID: t.ProcessStageID,
			TargetQty:      t.TargetQty - finalQty,
			CompletedQty:   0,
			Status:         entity.TaskActive,
			Deadline:       t.Deadline,
			DeadlineWeek:   t.DeadlineWeek,
			Notes:          fmt.Sprintf("Saldo pendiente de la tarea %s", t.ID),
			AssignedBy:     caller.UserID,
			AssignedAt:     now,
		}
	}

	err = uc.tx.Run(ctx, func(tasks repository.TaskRepository) error {
		ok, err := tasks.UpdateIfStatus(&confirmed, entity.TaskCompleted)
		if err != nil {
			return err
		}
		if !ok {
			// Otra confirmación (o un rechazo) ganó la carrera.
			return domain.ErrInvalidState
		}
		if residual != nil {
			return tasks.Create(residual)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := &dto.ConfirmTaskResponse{Task: *uc.toResponse(&confirmed)}
	if residual != nil {
		out.ResidualTask = uc.toResponse(residual)
	}
	return out, nil
}

// Reject devuelve una tarea completed al empleado con motivo obligatorio.
// No toca cantidades.
func (uc *UseCase) Reject(caller authz.Caller, taskID, reason string) (*dto.TaskResponse, error) {
	if err := authz.Require(caller, authz.OpTaskReject); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.EnsureTenant(caller, t.TenantID); err != nil {
		return nil, err
	}
	if t.Status != entity.TaskCompleted {
		return nil, domain.ErrInvalidState
	}

	updated := *t
	updated.Status = entity.TaskRejected
	updated.RejectionReason = reason
	ok, err := uc.taskRepo.UpdateIfStatus(&updated, entity.TaskCompleted)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidState
	}
	return uc.toResponse(&updated), nil
}

// Delete elimina una tarea mientras no haya sido juzgada: solo active o
// completed. Lo confirmado y lo rechazado es historial y no se borra.
func (uc *UseCase) Delete(caller authz.Caller, taskID string) error {
	if err := authz.Require(caller, authz.OpTaskDelete); err != nil {
		return err
	}
	t, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	if err := authz.EnsureTenant(caller, t.TenantID); err != nil {
		return err
	}
	if t.Status != entity.TaskActive && t.Status != entity.TaskCompleted {
		return domain.ErrInvalidState
	}
	// Borrado condicionado al estado, como toda escritura del motor: si una
	// confirmación ganó la carrera después de la lectura, no se borra historial.
	ok, err := uc.taskRepo.DeleteIfStatus(taskID, entity.TaskActive, entity.TaskCompleted)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidState
	}
	return nil
}

// List lista tareas con filtro tipado y scope de tenant. status=overdue se
// traduce a active con deadline vencido; los empleados solo ven sus propias
// tareas sin importar el filtro que envíen.
func (uc *UseCase) List(caller authz.Caller, q dto.TaskListQuery) (*dto.TaskListResponse, error) {
	if err := authz.Require(caller, authz.OpTaskList); err != nil {
		return nil, err
	}
	q.DefaultPage()

	now := uc.now()
	f := repository.TaskFilter{
		TenantID:   authz.ScopeTenant(caller, q.TenantID),
		EmployeeID: q.EmployeeID,
		Week:       q.Week,
		Limit:      q.Limit,
		Offset:     q.Offset(),
	}
	if caller.Role == entity.RoleEmployee {
		f.EmployeeID = caller.UserID
	}
	switch q.Status {
	case entity.TaskOverdue:
		f.Status = entity.TaskActive
		f.OverdueBefore = &now
	default:
		f.Status = q.Status
	}

	rows, total, err := uc.taskRepo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TaskResponse, 0, len(rows))
	for _, row := range rows {
		r := uc.toResponse(&row.Task)
		r.EmployeeName = row.EmployeeName
		r.ProductName = row.ProductName
		r.StageName = row.StageName
		items = append(items, *r)
	}
	return &dto.TaskListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: q.Page, Limit: q.Limit, Total: total},
	}, nil
}

// GetByID obtiene una tarea por id con la doble verificación de tenant.
func (uc *UseCase) GetByID(caller authz.Caller, taskID string) (*dto.TaskResponse, error) {
	if err := authz.Require(caller, authz.OpTaskRead); err != nil {
		return nil, err
	}
	t, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.EnsureTenant(caller, t.TenantID); err != nil {
		return nil, err
	}
	if caller.Role == entity.RoleEmployee && t.EmployeeID != caller.UserID {
		return nil, domain.ErrForbidden
	}
	return uc.toResponse(t), nil
}

func (uc *UseCase) toResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:              t.ID,
		TenantID:        t.TenantID,
		EmployeeID:      t.EmployeeID,
		ProductID:       t.ProductID,
		ProcessStageID:  t.ProcessStageID,
		TargetQty:       t.TargetQty,
		CompletedQty:    t.CompletedQty,
		Status:          t.DisplayStatus(uc.now()),
		Deadline:        t.Deadline,
		DeadlineWeek:    t.DeadlineWeek,
		Notes:           t.Notes,
		RejectionReason: t.RejectionReason,
		AssignedBy:      t.AssignedBy,
		AssignedAt:      t.AssignedAt,
		CompletedAt:     t.CompletedAt,
		ConfirmedAt:     t.ConfirmedAt,
	}
}

// isoWeekLabel etiqueta de semana ISO, ej. "2026-W35".
func isoWeekLabel(d time.Time) string {
	year, week := d.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
