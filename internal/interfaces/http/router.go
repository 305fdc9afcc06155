package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tiendashellx/pos-api/internal/application/analytics"
	"github.com/tiendashellx/pos-api/internal/application/auth"
	"github.com/tiendashellx/pos-api/internal/application/inventory"
	"github.com/tiendashellx/pos-api/internal/application/purchases"
	"github.com/tiendashellx/pos-api/internal/application/sales"
	"github.com/tiendashellx/pos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	BranchUC       *usecase.BranchUseCase
	CategoryUC     *usecase.CategoryUseCase
	SupplierUC     *usecase.SupplierUseCase
	EmployeeUC     *usecase.EmployeeUseCase
	CreateSale     *sales.CreateSaleUseCase
	SaleQueries    *sales.QueryUseCase
	SalePDF        *sales.PDFUseCase
	CreatePurchase *purchases.CreatePurchaseUseCase
	PurchaseQuery  *purchases.QueryUseCase
	InventoryUC    *inventory.InventoryUseCase
	DashboardUC    *analytics.DashboardUseCase

	SessionSecret string
	Cookie        CookieConfig
	DefaultBranch string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público: register y login; logout limpia cookie sin validarla)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren cookie de sesión válida)
	protected := api.Group("/", SessionMiddleware(deps.SessionSecret, deps.Cookie.Name))

	protected.Get("/auth/session", authHandler.Session)

	products := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC, deps.DefaultBranch)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:codigo", productHandler.GetByCode)
	products.Put("/:codigo", productHandler.Update)
	products.Delete("/:codigo", productHandler.Deactivate)

	branches := protected.Group("/sucursales")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", branchHandler.List)
	branches.Post("/", branchHandler.Create)
	branches.Put("/:codigo", branchHandler.Update)
	branches.Delete("/:codigo", branchHandler.Deactivate)

	categories := protected.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)

	suppliers := protected.Group("/proveedores")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/:codigo", supplierHandler.Update)
	suppliers.Delete("/:codigo", supplierHandler.Deactivate)

	employees := protected.Group("/empleados")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:codigo", employeeHandler.Update)
	employees.Delete("/:codigo", employeeHandler.Deactivate)

	ventas := protected.Group("/ventas")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SaleQueries, deps.SalePDF, deps.DefaultBranch)
	ventas.Get("/", saleHandler.List)
	ventas.Post("/", saleHandler.Create)
	ventas.Get("/:id", saleHandler.GetDetail)
	ventas.Get("/:id/pdf", saleHandler.Receipt)

	compras := protected.Group("/compras")
	purchaseHandler := NewPurchaseHandler(deps.CreatePurchase, deps.PurchaseQuery, deps.DefaultBranch)
	compras.Get("/", purchaseHandler.List)
	compras.Post("/", purchaseHandler.Create)
	compras.Get("/:id", purchaseHandler.GetDetail)

	inventario := protected.Group("/inventario")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventario.Get("/", inventoryHandler.ListMovements)
	inventario.Get("/bajo-stock", inventoryHandler.LowStock)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Get)
}
