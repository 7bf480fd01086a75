package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL.
// Se construye con el pool o con una pgx.Tx (vía TxRunner).
type TaskRepo struct {
	db Querier
}

// NewTaskRepository construye el adaptador de persistencia para tareas.
func NewTaskRepository(db Querier) *TaskRepo {
	return &TaskRepo{db: db}
}

const taskColumns = `id, tenant_id, employee_id, product_id, process_stage_id,
		target_qty, completed_qty, status, deadline, deadline_week, notes,
		rejection_reason, assigned_by, assigned_at, completed_at, confirmed_at`

// Create persiste una nueva tarea.
func (r *TaskRepo) Create(t *entity.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.Exec(context.Background(), query,
		t.ID, t.TenantID, t.EmployeeID, t.ProductID, t.ProcessStageID,
		t.TargetQty, t.CompletedQty, t.Status, t.Deadline, t.DeadlineWeek, t.Notes,
		t.RejectionReason, t.AssignedBy, t.AssignedAt, t.CompletedAt, t.ConfirmedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID; nil si no existe.
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	var t entity.Task
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.TenantID, &t.EmployeeID, &t.ProductID, &t.ProcessStageID,
		&t.TargetQty, &t.CompletedQty, &t.Status, &t.Deadline, &t.DeadlineWeek, &t.Notes,
		&t.RejectionReason, &t.AssignedBy, &t.AssignedAt, &t.CompletedAt, &t.ConfirmedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}
	return &t, nil
}

// List lista tareas con nombres denormalizados y total, según el filtro tipado.
func (r *TaskRepo) List(f repository.TaskFilter) ([]*repository.TaskRow, int, error) {
	where, args := buildTaskWhere(f)

	countQuery := `SELECT count(*) FROM tasks t` + where
	var total int
	if err := r.db.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	query := `
		SELECT t.id, t.tenant_id, t.employee_id, t.product_id, t.process_stage_id,
			t.target_qty, t.completed_qty, t.status, t.deadline, t.deadline_week, t.notes,
			t.rejection_reason, t.assigned_by, t.assigned_at, t.completed_at, t.confirmed_at,
			u.name, p.name, s.name
		FROM tasks t
		JOIN users u ON u.id = t.employee_id
		JOIN products p ON p.id = t.product_id
		JOIN process_stages s ON s.id = t.process_stage_id` + where + `
		ORDER BY t.assigned_at DESC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var list []*repository.TaskRow
	for rows.Next() {
		var row repository.TaskRow
		t := &row.Task
		if err := rows.Scan(
			&t.ID, &t.TenantID, &t.EmployeeID, &t.ProductID, &t.ProcessStageID,
			&t.TargetQty, &t.CompletedQty, &t.Status, &t.Deadline, &t.DeadlineWeek, &t.Notes,
			&t.RejectionReason, &t.AssignedBy, &t.AssignedAt, &t.CompletedAt, &t.ConfirmedAt,
			&row.EmployeeName, &row.ProductName, &row.StageName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, &row)
	}
	return list, total, rows.Err()
}

func buildTaskWhere(f repository.TaskFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.TenantID != "" {
		add("t.tenant_id = $%d", f.TenantID)
	}
	if f.EmployeeID != "" {
		add("t.employee_id = $%d", f.EmployeeID)
	}
	if f.Status != "" {
		add("t.status = $%d", f.Status)
	}
	if f.Week != "" {
		add("t.deadline_week = $%d", f.Week)
	}
	if f.OverdueBefore != nil {
		add("t.deadline < $%d", *f.OverdueBefore)
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// UpdateIfStatus actualiza los campos mutables solo si el estado almacenado
// sigue siendo expected. Es el compare-and-set que serializa las transiciones
// por tarea: devuelve false si ninguna fila coincidió.
func (r *TaskRepo) UpdateIfStatus(t *entity.Task, expected string) (bool, error) {
	query := `
		UPDATE tasks
		SET completed_qty = $3, status = $4, notes = $5, rejection_reason = $6,
			completed_at = $7, confirmed_at = $8
		WHERE id = $1 AND status = $2`
	tag, err := r.db.Exec(context.Background(), query,
		t.ID, expected, t.CompletedQty, t.Status, t.Notes, t.RejectionReason,
		t.CompletedAt, t.ConfirmedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update task: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteIfStatus elimina la tarea solo si su estado almacenado está en
// expected. Mismo contrato condicional que UpdateIfStatus: si entre lectura y
// borrado la tarea fue juzgada (confirmada o rechazada), ninguna fila coincide
// y se devuelve false.
func (r *TaskRepo) DeleteIfStatus(id string, expected ...string) (bool, error) {
	tag, err := r.db.Exec(context.Background(),
		`DELETE FROM tasks WHERE id = $1 AND status = ANY($2)`, id, expected)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
