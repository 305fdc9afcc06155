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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, tenant_id, code, name, contact, phone, email, active, created_at, updated_at`

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.TenantID, supplier.Code, supplier.Name, supplier.Contact,
		supplier.Phone, supplier.Email, supplier.Active, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByTenantAndCode obtiene un proveedor por tenant y código.
func (r *SupplierRepo) GetByTenantAndCode(tenantID, code string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE tenant_id = $1 AND code = $2`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, tenantID, code).Scan(
		&s.ID, &s.TenantID, &s.Code, &s.Name, &s.Contact, &s.Phone, &s.Email,
		&s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// ListActiveByTenant lista los proveedores activos del tenant.
func (r *SupplierRepo) ListActiveByTenant(tenantID string) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE tenant_id = $1 AND active = true ORDER BY code`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Code, &s.Name, &s.Contact, &s.Phone,
			&s.Email, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $3, contact = $4, phone = $5, email = $6, updated_at = $7
		WHERE tenant_id = $1 AND code = $2`
	_, err := r.q.Exec(context.Background(), query,
		supplier.TenantID, supplier.Code, supplier.Name, supplier.Contact,
		supplier.Phone, supplier.Email, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Deactivate borrado lógico (active=false).
func (r *SupplierRepo) Deactivate(tenantID, code string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET active = false, updated_at = now() WHERE tenant_id = $1 AND code = $2`,
		tenantID, code,
	)
	if err != nil {
		return fmt.Errorf("deactivate supplier: %w", err)
	}
	return nil
}

// CountByTenant cuenta los proveedores del tenant (para el seeding idempotente).
func (r *SupplierRepo) CountByTenant(tenantID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM suppliers WHERE tenant_id = $1`, tenantID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count suppliers: %w", err)
	}
	return n, nil
}
