package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
)

// TenantHandler registro público de fábricas y ciclo de aprobación (super_admin).
type TenantHandler struct {
	uc      *usecase.TenantUseCase
	devMode bool
}

// NewTenantHandler construye el handler.
func NewTenantHandler(uc *usecase.TenantUseCase, devMode bool) *TenantHandler {
	return &TenantHandler{uc: uc, devMode: devMode}
}

// Signup godoc
// @Summary      Registrar fábrica (queda pending hasta aprobación)
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "Datos de la fábrica y su admin"
// @Success      201   {object}  dto.SignupResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tenants/signup [post]
func (h *TenantHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Signup(in)
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tenants (solo super_admin)
// @Tags         tenants
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Estado"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.TenantListResponse
// @Router       /api/tenants [get]
func (h *TenantHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválido"})
	}
	out, err := h.uc.List(GetCaller(c), c.Query("status"), page)
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener tenant por ID
// @Tags         tenants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tenant"
// @Success      200  {object}  dto.TenantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tenants/{id} [get]
func (h *TenantHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar tenant (pending -> active)
// @Tags         tenants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tenant"
// @Success      200  {object}  dto.TenantResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/tenants/{id}/approve [patch]
func (h *TenantHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar tenant (pending -> rejected, motivo obligatorio)
// @Tags         tenants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tenant"
// @Param        body  body  dto.RejectTenantRequest  true  "Motivo"
// @Success      200   {object}  dto.TenantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tenants/{id}/reject [patch]
func (h *TenantHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectTenantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Reject(GetCaller(c), c.Params("id"), in.Reason)
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}

// Freeze godoc
// @Summary      Congelar tenant (active -> frozen)
// @Tags         tenants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tenant"
// @Success      200  {object}  dto.TenantResponse
// @Router       /api/tenants/{id}/freeze [patch]
func (h *TenantHandler) Freeze(c *fiber.Ctx) error {
	out, err := h.uc.Freeze(GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}

// Unfreeze godoc
// @Summary      Descongelar tenant (frozen -> active)
// @Tags         tenants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tenant"
// @Success      200  {object}  dto.TenantResponse
// @Router       /api/tenants/{id}/unfreeze [patch]
func (h *TenantHandler) Unfreeze(c *fiber.Ctx) error {
	out, err := h.uc.Unfreeze(GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}
