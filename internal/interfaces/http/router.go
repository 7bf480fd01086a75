package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Produccion-api/internal/application/auth"
	"github.com/jhoicas/Produccion-api/internal/application/authz"
	"github.com/jhoicas/Produccion-api/internal/application/task"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	TenantUC  *usecase.TenantUseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	StageUC   *usecase.ProcessStageUseCase
	TaskUC    *task.UseCase
	JWTSecret string
	DevMode   bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.DevMode)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", authHandler.Logout)

	// Registro de fábricas (público; queda pending hasta aprobación)
	tenantHandler := NewTenantHandler(deps.TenantUC, deps.DevMode)
	api.Post("/tenants/signup", tenantHandler.Signup)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Tenants (protegido; aprobación y congelado solo super_admin)
	tenants := protected.Group("/tenants")
	tenants.Get("/", RequireOp(authz.OpTenantList), tenantHandler.List)
	tenants.Get("/:id", RequireOp(authz.OpTenantRead), tenantHandler.GetByID)
	tenants.Patch("/:id/approve", RequireOp(authz.OpTenantApprove), tenantHandler.Approve)
	tenants.Patch("/:id/reject", RequireOp(authz.OpTenantReject), tenantHandler.Reject)
	tenants.Patch("/:id/freeze", RequireOp(authz.OpTenantFreeze), tenantHandler.Freeze)
	tenants.Patch("/:id/unfreeze", RequireOp(authz.OpTenantUnfreeze), tenantHandler.Unfreeze)

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.DevMode)
	users.Post("/", RequireOp(authz.OpUserCreate), userHandler.Create)
	users.Get("/", RequireOp(authz.OpUserList), userHandler.List)
	users.Get("/:id", RequireOp(authz.OpUserRead), userHandler.GetByID)
	users.Patch("/:id/deactivate", RequireOp(authz.OpUserDeactivate), userHandler.Deactivate)

	// Catálogos (protegido)
	catalogHandler := NewCatalogHandler(deps.ProductUC, deps.StageUC, deps.DevMode)
	products := protected.Group("/products")
	products.Post("/", RequireOp(authz.OpProductWrite), catalogHandler.CreateProduct)
	products.Get("/", RequireOp(authz.OpProductRead), catalogHandler.ListProducts)
	products.Get("/:id", RequireOp(authz.OpProductRead), catalogHandler.GetProduct)
	products.Put("/:id", RequireOp(authz.OpProductWrite), catalogHandler.UpdateProduct)

	stages := protected.Group("/process-stages")
	stages.Post("/", RequireOp(authz.OpStageWrite), catalogHandler.CreateStage)
	stages.Get("/", RequireOp(authz.OpStageRead), catalogHandler.ListStages)
	stages.Get("/:id", RequireOp(authz.OpStageRead), catalogHandler.GetStage)

	// Tasks (protegido; el ciclo de vida completo)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC, deps.DevMode)
	tasks.Post("/", RequireOp(authz.OpTaskCreate), taskHandler.Create)
	tasks.Get("/", RequireOp(authz.OpTaskList), taskHandler.List)
	tasks.Get("/:id", RequireOp(authz.OpTaskRead), taskHandler.GetByID)
	tasks.Patch("/:id/complete", RequireOp(authz.OpTaskProgress), taskHandler.Complete)
	tasks.Post("/:id/confirm", RequireOp(authz.OpTaskConfirm), taskHandler.Confirm)
	tasks.Post("/:id/reject", RequireOp(authz.OpTaskReject), taskHandler.Reject)
	tasks.Delete("/:id", RequireOp(authz.OpTaskDelete), taskHandler.Delete)
}
