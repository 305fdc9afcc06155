package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountProducts cuenta todos los productos del tenant (activos e inactivos).
func (r *AnalyticsRepo) CountProducts(ctx context.Context, tenantID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM products WHERE tenant_id = $1`, tenantID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountProducts: %w", err)
	}
	return n, nil
}

// CountActiveEmployees cuenta los empleados activos del tenant.
func (r *AnalyticsRepo) CountActiveEmployees(ctx context.Context, tenantID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM employees WHERE tenant_id = $1 AND active = true`, tenantID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountActiveEmployees: %w", err)
	}
	return n, nil
}

// StockTotalByBranch suma las existencias de los productos activos en una sucursal.
func (r *AnalyticsRepo) StockTotalByBranch(ctx context.Context, tenantID, branchCode string) (int64, error) {
	const query = `
	SELECT COALESCE(SUM(bs.quantity), 0)
	FROM branch_stock bs
	JOIN products p ON p.id = bs.product_id
	WHERE bs.tenant_id = $1 AND bs.branch_code = $2 AND p.active = true`
	var n int64
	if err := r.pool.QueryRow(ctx, query, tenantID, branchCode).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.StockTotalByBranch: %w", err)
	}
	return n, nil
}

// LowStock lista los productos activos cuyo stock en la sucursal está en o por
// debajo del mínimo; si el producto no define mínimo aplica defaultMin.
func (r *AnalyticsRepo) LowStock(ctx context.Context, tenantID, branchCode string, defaultMin int) ([]repository.LowStockRow, error) {
	const query = `
	SELECT
	    p.code,
	    p.name,
	    COALESCE(bs.quantity, 0)                            AS stock,
	    CASE WHEN p.min_stock > 0 THEN p.min_stock ELSE $3 END AS min_stock
	FROM products p
	LEFT JOIN branch_stock bs
	       ON bs.tenant_id = p.tenant_id AND bs.product_id = p.id AND bs.branch_code = $2
	WHERE p.tenant_id = $1
	  AND p.active = true
	  AND COALESCE(bs.quantity, 0) <= CASE WHEN p.min_stock > 0 THEN p.min_stock ELSE $3 END
	ORDER BY stock ASC, p.code`

	rows, err := r.pool.Query(ctx, query, tenantID, branchCode, defaultMin)
	if err != nil {
		return nil, fmt.Errorf("analytics.LowStock: %w", err)
	}
	defer rows.Close()
	var results []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.Code, &row.Name, &row.Stock, &row.MinStock); err != nil {
			return nil, fmt.Errorf("analytics.LowStock scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SalesSince cuenta ventas y suma totales de una sucursal desde el instante dado.
func (r *AnalyticsRepo) SalesSince(ctx context.Context, tenantID, branchCode string, since time.Time) (*repository.SalesTodayResult, error) {
	const query = `
	SELECT count(*), COALESCE(SUM(total), 0)
	FROM sales
	WHERE tenant_id = $1 AND branch_code = $2 AND date >= $3`
	res := &repository.SalesTodayResult{Total: decimal.Zero}
	if err := r.pool.QueryRow(ctx, query, tenantID, branchCode, since).Scan(&res.Count, &res.Total); err != nil {
		return nil, fmt.Errorf("analytics.SalesSince: %w", err)
	}
	return res, nil
}

// LastSales devuelve las ventas más recientes de una sucursal.
func (r *AnalyticsRepo) LastSales(ctx context.Context, tenantID, branchCode string, limit int) ([]*entity.Sale, error) {
	const query = `
	SELECT id, tenant_id, branch_code, date, total, items_count, operator, employee_code, employee_name
	FROM sales
	WHERE tenant_id = $1 AND branch_code = $2
	ORDER BY date DESC
	LIMIT $3`
	rows, err := r.pool.Query(ctx, query, tenantID, branchCode, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.LastSales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.TenantID, &s.BranchCode, &s.Date, &s.Total,
			&s.ItemsCount, &s.Operator, &s.EmployeeCode, &s.EmployeeName); err != nil {
			return nil, fmt.Errorf("analytics.LastSales scan: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
