package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene las existencias de un producto en una sucursal.
// Sin fila registrada el stock es cero.
func (r *StockRepo) Get(tenantID, productID, branchCode string) (*entity.BranchStock, error) {
	query := `
		SELECT tenant_id, product_id, branch_code, quantity, updated_at
		FROM branch_stock WHERE tenant_id = $1 AND product_id = $2 AND branch_code = $3`
	var s entity.BranchStock
	err := r.q.QueryRow(context.Background(), query, tenantID, productID, branchCode).Scan(
		&s.TenantID, &s.ProductID, &s.BranchCode, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.BranchStock{TenantID: tenantID, ProductID: productID, BranchCode: branchCode}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene las existencias y bloquea la fila (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(tenantID, productID, branchCode string) (*entity.BranchStock, error) {
	query := `
		SELECT tenant_id, product_id, branch_code, quantity, updated_at
		FROM branch_stock WHERE tenant_id = $1 AND product_id = $2 AND branch_code = $3
		FOR UPDATE`
	var s entity.BranchStock
	err := r.q.QueryRow(context.Background(), query, tenantID, productID, branchCode).Scan(
		&s.TenantID, &s.ProductID, &s.BranchCode, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.BranchStock{TenantID: tenantID, ProductID: productID, BranchCode: branchCode}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad (por tenant, producto y sucursal).
func (r *StockRepo) Upsert(stock *entity.BranchStock) error {
	query := `
		INSERT INTO branch_stock (tenant_id, product_id, branch_code, quantity, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (tenant_id, product_id, branch_code)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		stock.TenantID, stock.ProductID, stock.BranchCode, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByProduct lista las existencias de un producto en todas sus sucursales.
func (r *StockRepo) ListByProduct(tenantID, productID string) ([]*entity.BranchStock, error) {
	query := `
		SELECT tenant_id, product_id, branch_code, quantity, updated_at
		FROM branch_stock WHERE tenant_id = $1 AND product_id = $2 ORDER BY branch_code`
	rows, err := r.q.Query(context.Background(), query, tenantID, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.BranchStock
	for rows.Next() {
		var s entity.BranchStock
		if err := rows.Scan(&s.TenantID, &s.ProductID, &s.BranchCode, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
