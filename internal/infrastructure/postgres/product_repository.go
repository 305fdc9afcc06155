package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tiendashellx/pos-api/internal/domain"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, tenant_id, code, name, category_code, purchase_price, sale_price, min_stock, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.TenantID, product.Code, product.Name, product.CategoryCode,
		product.PurchasePrice, product.SalePrice, product.MinStock, product.Active,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByTenantAndCode obtiene un producto por tenant y código.
func (r *ProductRepo) GetByTenantAndCode(tenantID, code string) (*entity.Product, error) {
	query := `
		SELECT id, tenant_id, code, name, category_code, purchase_price, sale_price, min_stock, active, created_at, updated_at
		FROM products WHERE tenant_id = $1 AND code = $2`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, tenantID, code).Scan(
		&p.ID, &p.TenantID, &p.Code, &p.Name, &p.CategoryCode,
		&p.PurchasePrice, &p.SalePrice, &p.MinStock, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza los datos editables de un producto. El stock se maneja
// vía BranchStock, nunca aquí.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $3, category_code = $4, purchase_price = $5, sale_price = $6, min_stock = $7, updated_at = $8
		WHERE tenant_id = $1 AND code = $2`
	_, err := r.q.Exec(context.Background(), query,
		product.TenantID, product.Code, product.Name, product.CategoryCode,
		product.PurchasePrice, product.SalePrice, product.MinStock, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ListActiveByTenant lista los productos activos de un tenant.
func (r *ProductRepo) ListActiveByTenant(tenantID string) ([]*entity.Product, error) {
	query := `
		SELECT id, tenant_id, code, name, category_code, purchase_price, sale_price, min_stock, active, created_at, updated_at
		FROM products WHERE tenant_id = $1 AND active = true ORDER BY code`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Code, &p.Name, &p.CategoryCode,
			&p.PurchasePrice, &p.SalePrice, &p.MinStock, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Deactivate borrado lógico (active=false).
func (r *ProductRepo) Deactivate(tenantID, code string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET active = false, updated_at = now() WHERE tenant_id = $1 AND code = $2`,
		tenantID, code,
	)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	return nil
}

// CountByTenant cuenta los productos del tenant (para el seeding idempotente).
func (r *ProductRepo) CountByTenant(tenantID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM products WHERE tenant_id = $1`, tenantID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
