package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `id, tenant_id, branch_code, supplier_code, supplier_name, date, total, items_count, operator`

// CreateHeader inserta la cabecera de la compra.
func (r *PurchaseRepo) CreateHeader(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.TenantID, purchase.BranchCode, purchase.SupplierCode,
		purchase.SupplierName, purchase.Date, purchase.Total, purchase.ItemsCount, purchase.Operator,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// CreateItem inserta una línea de compra referida a la cabecera.
func (r *PurchaseRepo) CreateItem(item *entity.PurchaseItem) error {
	query := `
		INSERT INTO purchase_items (id, tenant_id, purchase_id, product_code, product_name, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TenantID, item.PurchaseID, item.ProductCode, item.ProductName,
		item.Quantity, item.UnitPrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert purchase item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una compra del tenant.
func (r *PurchaseRepo) GetByID(tenantID, id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE tenant_id = $1 AND id = $2`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, tenantID, id).Scan(
		&p.ID, &p.TenantID, &p.BranchCode, &p.SupplierCode, &p.SupplierName,
		&p.Date, &p.Total, &p.ItemsCount, &p.Operator,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// ListItems lista las líneas de una compra.
func (r *PurchaseRepo) ListItems(tenantID, purchaseID string) ([]*entity.PurchaseItem, error) {
	query := `
		SELECT id, tenant_id, purchase_id, product_code, product_name, quantity, unit_price, subtotal
		FROM purchase_items WHERE tenant_id = $1 AND purchase_id = $2 ORDER BY product_code`
	rows, err := r.q.Query(context.Background(), query, tenantID, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseItem
	for rows.Next() {
		var it entity.PurchaseItem
		if err := rows.Scan(&it.ID, &it.TenantID, &it.PurchaseID, &it.ProductCode,
			&it.ProductName, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByBranch lista las compras de una sucursal, más recientes primero.
func (r *PurchaseRepo) ListByBranch(tenantID, branchCode string) ([]*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE tenant_id = $1 AND branch_code = $2 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, tenantID, branchCode)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.TenantID, &p.BranchCode, &p.SupplierCode,
			&p.SupplierName, &p.Date, &p.Total, &p.ItemsCount, &p.Operator); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
