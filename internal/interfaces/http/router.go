package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rebaixa-api/internal/application/auth"
	"github.com/jhoicas/rebaixa-api/internal/application/usecase"
	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	StoreUC      *usecase.StoreUseCase
	DepartmentUC *usecase.DepartmentUseCase
	ProductUC    *usecase.ProductUseCase
	ReportUC     *usecase.ReportUseCase
	ReportPDFUC  *usecase.ReportPDFUseCase
	CatalogUC    *usecase.CatalogUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. RequireRole es la primera barrera por
// ruta; la decisión fina (alcance del producto afectado) vive en authz.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Pantalla inicial del rol
	homeHandler := NewHomeHandler()
	protected.Get("/home", homeHandler.Home)

	// Usuarios (solo gerencia general)
	users := protected.Group("/users", RequireRole(entity.RoleGeneralManager))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Tiendas (lectura abierta; mutación solo gerencia general)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Post("/", RequireRole(entity.RoleGeneralManager), storeHandler.Create)
	stores.Put("/:id", RequireRole(entity.RoleGeneralManager), storeHandler.Update)
	stores.Delete("/:id", RequireRole(entity.RoleGeneralManager), storeHandler.Delete)

	// Sectores (lectura abierta; mutación solo gerencia general)
	departments := protected.Group("/departments")
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	departments.Get("/", departmentHandler.List)
	departments.Post("/", RequireRole(entity.RoleGeneralManager), departmentHandler.Create)
	departments.Delete("/:id", RequireRole(entity.RoleGeneralManager), departmentHandler.Delete)

	// Productos (ciclo de vida)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/department", productHandler.DepartmentProducts)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/status", productHandler.ChangeStatus)
	products.Delete("/:id", productHandler.Delete)

	// Dashboards por rol
	dashboards := protected.Group("/dashboards")
	dashboardHandler := NewDashboardHandler(deps.StoreUC, deps.DepartmentUC)
	dashboards.Get("/general-manager", RequireRole(entity.RoleGeneralManager), dashboardHandler.GeneralManager)
	dashboards.Get("/exchange", RequireRole(entity.RoleExchangeManager), dashboardHandler.Exchange)
	dashboards.Get("/store-manager", RequireRole(entity.RoleStoreManager), productHandler.StoreDashboard)
	dashboards.Get("/assistant", RequireRole(entity.RoleManagementAssistant), dashboardHandler.Assistant)

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.ReportPDFUC)
	reports.Get("/products", reportHandler.Query)
	reports.Get("/products/pdf", reportHandler.QueryPDF)
	reports.Get("/expired", reportHandler.Expired)

	// Catálogo de códigos de barras
	catalog := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog.Get("/lookup/:barcode", catalogHandler.Lookup)
}
