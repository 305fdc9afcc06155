package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/tiendashellx/pos-api/internal/application/analytics"
	"github.com/tiendashellx/pos-api/internal/application/auth"
	"github.com/tiendashellx/pos-api/internal/application/inventory"
	"github.com/tiendashellx/pos-api/internal/application/purchases"
	"github.com/tiendashellx/pos-api/internal/application/sales"
	"github.com/tiendashellx/pos-api/internal/application/tenant"
	"github.com/tiendashellx/pos-api/internal/application/usecase"
	infrapdf "github.com/tiendashellx/pos-api/internal/infrastructure/pdf"
	"github.com/tiendashellx/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/tiendashellx/pos-api/internal/interfaces/http"
	"github.com/tiendashellx/pos-api/pkg/config"
	"github.com/tiendashellx/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	codeRepo := postgres.NewActivationCodeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Códigos de activación iniciales (no pisa los ya consumidos).
	if err := codeRepo.EnsureDefaults(tenant.DefaultActivationCodes); err != nil {
		log.Fatal().Err(err).Msg("sembrar códigos de activación")
	}

	provisioner := tenant.NewProvisioner(
		branchRepo, categoryRepo, productRepo, stockRepo, employeeRepo, supplierRepo, log,
	)
	authUC := auth.NewAuthUseCase(userRepo, txRunner, provisioner, auth.SessionConfig{
		Secret:   cfg.Session.Secret,
		Issuer:   cfg.Session.Issuer,
		ExpHours: cfg.Session.ExpHours,
	})

	productUC := usecase.NewProductUseCase(productRepo, stockRepo, categoryRepo, branchRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)

	createSaleUC := sales.NewCreateSaleUseCase(
		txRunner, productRepo, branchRepo, employeeRepo,
		sales.AuthConfig{Required: cfg.Sales.AuthRequired},
	)
	saleQueryUC := sales.NewQueryUseCase(saleRepo)
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	salePDFUC := sales.NewPDFUseCase(saleRepo, receiptGenerator)

	createPurchaseUC := purchases.NewCreatePurchaseUseCase(txRunner, productRepo, branchRepo, supplierRepo)
	purchaseQueryUC := purchases.NewQueryUseCase(purchaseRepo)

	inventoryUC := inventory.NewInventoryUseCase(movementRepo, analyticsRepo, inventory.Config{
		DefaultBranch:     cfg.Sales.DefaultBranch,
		MovementsPageSize: cfg.Sales.MovementsPageSize,
		LowStockDefault:   cfg.Sales.LowStockDefault,
	})
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, appanalytics.Config{
		DefaultBranch:   cfg.Sales.DefaultBranch,
		LowStockDefault: cfg.Sales.LowStockDefault,
		LastSalesLimit:  5,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		BranchUC:       branchUC,
		CategoryUC:     categoryUC,
		SupplierUC:     supplierUC,
		EmployeeUC:     employeeUC,
		CreateSale:     createSaleUC,
		SaleQueries:    saleQueryUC,
		SalePDF:        salePDFUC,
		CreatePurchase: createPurchaseUC,
		PurchaseQuery:  purchaseQueryUC,
		InventoryUC:    inventoryUC,
		DashboardUC:    dashboardUC,
		SessionSecret:  cfg.Session.Secret,
		Cookie: httpRouter.CookieConfig{
			Name:     cfg.Session.CookieName,
			ExpHours: cfg.Session.ExpHours,
			Secure:   cfg.App.Env == "production",
		},
		DefaultBranch: cfg.Sales.DefaultBranch,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
