package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
)

// LowStockRow producto con stock en o por debajo del mínimo en una sucursal.
type LowStockRow struct {
	Code     string
	Name     string
	Stock    int64
	MinStock int64
}

// SalesTodayResult número de ventas y total vendido desde la medianoche local.
type SalesTodayResult struct {
	Count int64
	Total decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	CountProducts(ctx context.Context, tenantID string) (int64, error)
	CountActiveEmployees(ctx context.Context, tenantID string) (int64, error)
	StockTotalByBranch(ctx context.Context, tenantID, branchCode string) (int64, error)
	LowStock(ctx context.Context, tenantID, branchCode string, defaultMin int) ([]LowStockRow, error)
	SalesSince(ctx context.Context, tenantID, branchCode string, since time.Time) (*SalesTodayResult, error)
	LastSales(ctx context.Context, tenantID, branchCode string, limit int) ([]*entity.Sale, error)
}
