package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/task"
)

// TaskHandler maneja las peticiones HTTP del ciclo de vida de tareas (protegido).
type TaskHandler struct {
	uc      *task.UseCase
	devMode bool
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *task.UseCase, devMode bool) *TaskHandler {
	return &TaskHandler{uc: uc, devMode: devMode}
}

// Create godoc
// @Summary      Asignar tarea a un empleado
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTaskRequest  true  "Datos de la tarea"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetCaller(c), in)
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tareas (filtradas al tenant del token)
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        employee_id  query  string  false  "Empleado"
// @Param        status       query  string  false  "Estado (acepta overdue)"
// @Param        week         query  string  false  "Semana (ej. 2026-W35)"
// @Param        tenant_id    query  string  false  "Tenant (solo super_admin)"
// @Param        page         query  int     false  "Página"  default(1)
// @Param        limit        query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.TaskListResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	var q dto.TaskListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválido"})
	}
	out, err := h.uc.List(GetCaller(c), q)
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener tarea por ID
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tarea"
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Reportar avance (solo el empleado asignado)
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.UpdateProgressRequest  true  "Cantidad completada"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/complete [patch]
func (h *TaskHandler) Complete(c *fiber.Ctx) error {
	var in dto.UpdateProgressRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateProgress(GetCaller(c), c.Params("id"), in.CompletedQty)
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}

// Confirm godoc
// @Summary      Confirmar tarea completada (crea residual si es parcial)
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.ConfirmTaskRequest  false  "Cantidad confirmada (opcional)"
// @Success      200   {object}  dto.ConfirmTaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/confirm [post]
func (h *TaskHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ConfirmTaskRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.uc.Confirm(c.Context(), GetCaller(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar tarea completada (motivo obligatorio)
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.RejectTaskRequest  true  "Motivo"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/reject [post]
func (h *TaskHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Reject(GetCaller(c), c.Params("id"), in.Reason)
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tarea (solo active o completed)
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tarea"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCaller(c), c.Params("id")); err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(fiber.Map{"success": true})
}
