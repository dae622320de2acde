package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/ninjasaskeh/vr46/internal/application/analytics"
	"github.com/ninjasaskeh/vr46/internal/application/auth"
	"github.com/ninjasaskeh/vr46/internal/application/report"
	"github.com/ninjasaskeh/vr46/internal/application/usecase"
	"github.com/ninjasaskeh/vr46/internal/application/weighing"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	WeighingUC     *weighing.UseCase
	MaterialUC     *usecase.MaterialUseCase
	SupplierUC     *usecase.SupplierUseCase
	UserUC         *usecase.UserUseCase
	NotificationUC *usecase.NotificationUseCase
	WeightRecordUC *usecase.WeightRecordUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	ReportUC       *report.UseCase
	Tokens         *jwt.Signer
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// IoT (público: lo invoca la báscula)
	iot := NewIoTHandler(deps.WeighingUC)
	api.Post("/iot/weighing", iot.Ingest)
	api.Get("/iot/weighing", iot.Recent)

	authRequired := AuthMiddleware(deps.Tokens)
	catalogWriters := RequireRole(entity.RoleAdmin, entity.RoleMarketing)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Materials
	materials := api.Group("/materials", authRequired)
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Get("/", materialHandler.List)
	materials.Post("/", catalogWriters, materialHandler.Create)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", catalogWriters, materialHandler.Update)
	materials.Delete("/:id", adminOnly, materialHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers", authRequired)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", catalogWriters, supplierHandler.Create)
	suppliers.Put("/:id", catalogWriters, supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Users
	users := api.Group("/users", authRequired)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequireRole(entity.RoleAdmin, entity.RoleManager), userHandler.List)
	users.Post("/", adminOnly, userHandler.Create)
	users.Put("/:id", adminOnly, userHandler.Update)

	// Weight records
	records := api.Group("/weight-records", authRequired)
	recordHandler := NewWeightRecordHandler(deps.WeightRecordUC, deps.WeighingUC, deps.ReportUC)
	scaleOperators := RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleOperator)
	records.Get("/", recordHandler.List)
	records.Post("/", scaleOperators, recordHandler.Create)
	records.Get("/:id", recordHandler.GetByID)
	records.Patch("/:id/status", scaleOperators, recordHandler.UpdateStatus)
	records.Get("/:id/ticket", recordHandler.Ticket)

	// Reports
	reports := api.Group("/reports", authRequired, RequireRole(entity.RoleAdmin, entity.RoleManager))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/weight-records.xlsx", reportHandler.ExportWeightRecords)

	// Dashboard
	dashboard := api.Group("/dashboard", authRequired)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)

	// Notifications
	notifications := api.Group("/notifications", authRequired)
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Patch("/", notificationHandler.MarkAllRead)
	notifications.Patch("/:id", notificationHandler.MarkRead)
}
