package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
)

// CatalogHandler catálogos por tenant: productos y etapas de proceso.
type CatalogHandler struct {
	products *usecase.ProductUseCase
	stages   *usecase.ProcessStageUseCase
	devMode  bool
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(products *usecase.ProductUseCase, stages *usecase.ProcessStageUseCase, devMode bool) *CatalogHandler {
	return &CatalogHandler{products: products, stages: stages, devMode: devMode}
}

// CreateProduct godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.products.Create(GetCaller(c), in)
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProducts godoc
// @Summary      Listar productos del tenant
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        tenant_id  query  string  false  "Tenant (solo super_admin puede elegir otro)"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválido"})
	}
	out, err := h.products.List(GetCaller(c), c.Query("tenant_id"), page)
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}

// GetProduct godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	out, err := h.products.GetByID(GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}

// UpdateProduct godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.products.Update(GetCaller(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}

// CreateStage godoc
// @Summary      Crear etapa de proceso
// @Tags         process-stages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProcessStageRequest  true  "Datos de la etapa"
// @Success      201   {object}  dto.ProcessStageResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/process-stages [post]
func (h *CatalogHandler) CreateStage(c *fiber.Ctx) error {
	var in dto.CreateProcessStageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.stages.Create(GetCaller(c), in)
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListStages godoc
// @Summary      Listar etapas de proceso del tenant
// @Tags         process-stages
// @Security     Bearer
// @Produce      json
// @Param        tenant_id  query  string  false  "Tenant (solo super_admin puede elegir otro)"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.ProcessStageListResponse
// @Router       /api/process-stages [get]
func (h *CatalogHandler) ListStages(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválido"})
	}
	out, err := h.stages.List(GetCaller(c), c.Query("tenant_id"), page)
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}

// GetStage godoc
// @Summary      Obtener etapa de proceso por ID
// @Tags         process-stages
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la etapa"
// @Success      200  {object}  dto.ProcessStageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/process-stages/{id} [get]
func (h *CatalogHandler) GetStage(c *fiber.Ctx) error {
	out, err := h.stages.GetByID(GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, h.devMode)
	}
	return c.JSON(out)
}
