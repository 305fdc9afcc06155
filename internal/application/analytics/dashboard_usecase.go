package analytics

import (
	"context"
	"time"

	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
)

// Config parámetros del dashboard.
type Config struct {
	DefaultBranch   string
	LowStockDefault int
	LastSalesLimit  int
}

// DashboardUseCase compone las métricas agregadas del dashboard.
type DashboardUseCase struct {
	repo repository.AnalyticsRepository
	cfg  Config
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository, cfg Config) *DashboardUseCase {
	if cfg.LastSalesLimit <= 0 {
		cfg.LastSalesLimit = 5
	}
	return &DashboardUseCase{repo: repo, cfg: cfg}
}

// Get arma el resumen del dashboard para una sucursal: conteos de catálogo,
// stock total, productos bajo mínimo, ventas del día y últimas ventas.
func (uc *DashboardUseCase) Get(ctx context.Context, tenantID, branchCode string) (*dto.DashboardResponse, error) {
	if branchCode == "" {
		branchCode = uc.cfg.DefaultBranch
	}

	totalProducts, err := uc.repo.CountProducts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	totalEmployees, err := uc.repo.CountActiveEmployees(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	stockTotal, err := uc.repo.StockTotalByBranch(ctx, tenantID, branchCode)
	if err != nil {
		return nil, err
	}
	lowStockRows, err := uc.repo.LowStock(ctx, tenantID, branchCode, uc.cfg.LowStockDefault)
	if err != nil {
		return nil, err
	}

	// Ventas de hoy: desde la medianoche local del servidor.
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	salesToday, err := uc.repo.SalesSince(ctx, tenantID, branchCode, midnight)
	if err != nil {
		return nil, err
	}
	lastSales, err := uc.repo.LastSales(ctx, tenantID, branchCode, uc.cfg.LastSalesLimit)
	if err != nil {
		return nil, err
	}

	lowStock := make([]dto.LowStockResponse, 0, len(lowStockRows))
	for _, r := range lowStockRows {
		lowStock = append(lowStock, dto.LowStockResponse{
			Code:     r.Code,
			Name:     r.Name,
			Stock:    r.Stock,
			MinStock: r.MinStock,
		})
	}
	recent := make([]dto.SaleResponse, 0, len(lastSales))
	for _, s := range lastSales {
		recent = append(recent, dto.SaleResponse{
			ID:         s.ID,
			Date:       s.Date,
			Total:      s.Total,
			ItemsCount: s.ItemsCount,
			BranchCode: s.BranchCode,
		})
	}

	return &dto.DashboardResponse{
		TotalProducts:  totalProducts,
		TotalEmployees: totalEmployees,
		StockTotal:     stockTotal,
		LowStock:       lowStock,
		SalesToday:     salesToday.Count,
		RevenueToday:   salesToday.Total,
		LastSales:      recent,
	}, nil
}
