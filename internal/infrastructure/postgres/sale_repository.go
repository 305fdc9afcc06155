package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, tenant_id, branch_code, date, total, items_count, operator, employee_code, employee_name`

// CreateHeader inserta la cabecera de la venta.
func (r *SaleRepo) CreateHeader(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.TenantID, sale.BranchCode, sale.Date, sale.Total,
		sale.ItemsCount, sale.Operator, sale.EmployeeCode, sale.EmployeeName,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem inserta una línea de venta referida a la cabecera.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, tenant_id, sale_id, product_code, product_name, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TenantID, item.SaleID, item.ProductCode, item.ProductName,
		item.Quantity, item.UnitPrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta del tenant.
func (r *SaleRepo) GetByID(tenantID, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE tenant_id = $1 AND id = $2`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, tenantID, id).Scan(
		&s.ID, &s.TenantID, &s.BranchCode, &s.Date, &s.Total, &s.ItemsCount,
		&s.Operator, &s.EmployeeCode, &s.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// ListItems lista las líneas de una venta.
func (r *SaleRepo) ListItems(tenantID, saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, tenant_id, sale_id, product_code, product_name, quantity, unit_price, subtotal
		FROM sale_items WHERE tenant_id = $1 AND sale_id = $2 ORDER BY product_code`
	rows, err := r.q.Query(context.Background(), query, tenantID, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.TenantID, &it.SaleID, &it.ProductCode,
			&it.ProductName, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByBranch lista las ventas de una sucursal, más recientes primero.
func (r *SaleRepo) ListByBranch(tenantID, branchCode string) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE tenant_id = $1 AND branch_code = $2 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, tenantID, branchCode)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.TenantID, &s.BranchCode, &s.Date, &s.Total,
			&s.ItemsCount, &s.Operator, &s.EmployeeCode, &s.EmployeeName); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
