package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
)

// UserHandler alta y gestión de usuarios dentro del tenant del caller.
type UserHandler struct {
	uc      *usecase.UserUseCase
	devMode bool
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, devMode bool) *UserHandler {
	return &UserHandler{uc: uc, devMode: devMode}
}

// Create godoc
// @Summary      Crear usuario (supervisor o employee) en el tenant del caller
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
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
// @Summary      Listar usuarios del tenant
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        tenant_id  query  string  false  "Tenant (solo super_admin puede elegir otro)"
// @Param        role       query  string  false  "Filtrar por rol"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var q dto.UserListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválido"})
	}
	out, err := h.uc.List(GetCaller(c), c.Query("tenant_id"), q)
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar usuario (las credenciales dejan de servir)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/deactivate [patch]
func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	out, err := h.uc.Deactivate(GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}
