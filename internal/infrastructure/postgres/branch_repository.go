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

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

const branchColumns = `id, tenant_id, code, name, address, phone, active, created_at, updated_at`

// Create persiste una nueva sucursal.
func (r *BranchRepo) Create(branch *entity.Branch) error {
	query := `
		INSERT INTO branches (` + branchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		branch.ID, branch.TenantID, branch.Code, branch.Name, branch.Address,
		branch.Phone, branch.Active, branch.CreatedAt, branch.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByTenantAndCode obtiene una sucursal por tenant y código.
func (r *BranchRepo) GetByTenantAndCode(tenantID, code string) (*entity.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches WHERE tenant_id = $1 AND code = $2`
	var b entity.Branch
	err := r.q.QueryRow(context.Background(), query, tenantID, code).Scan(
		&b.ID, &b.TenantID, &b.Code, &b.Name, &b.Address, &b.Phone, &b.Active, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

// ListByTenant lista todas las sucursales del tenant.
func (r *BranchRepo) ListByTenant(tenantID string) ([]*entity.Branch, error) {
	return r.list(`SELECT `+branchColumns+` FROM branches WHERE tenant_id = $1 ORDER BY code`, tenantID)
}

// ListActiveByTenant lista las sucursales activas del tenant.
func (r *BranchRepo) ListActiveByTenant(tenantID string) ([]*entity.Branch, error) {
	return r.list(`SELECT `+branchColumns+` FROM branches WHERE tenant_id = $1 AND active = true ORDER BY code`, tenantID)
}

func (r *BranchRepo) list(query, tenantID string) ([]*entity.Branch, error) {
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.TenantID, &b.Code, &b.Name, &b.Address, &b.Phone,
			&b.Active, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza una sucursal existente.
func (r *BranchRepo) Update(branch *entity.Branch) error {
	query := `
		UPDATE branches SET name = $3, address = $4, phone = $5, updated_at = $6
		WHERE tenant_id = $1 AND code = $2`
	_, err := r.q.Exec(context.Background(), query,
		branch.TenantID, branch.Code, branch.Name, branch.Address, branch.Phone, branch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update branch: %w", err)
	}
	return nil
}

// Deactivate borrado lógico (active=false).
func (r *BranchRepo) Deactivate(tenantID, code string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE branches SET active = false, updated_at = now() WHERE tenant_id = $1 AND code = $2`,
		tenantID, code,
	)
	if err != nil {
		return fmt.Errorf("deactivate branch: %w", err)
	}
	return nil
}

// CountByTenant cuenta las sucursales del tenant (para el seeding idempotente).
func (r *BranchRepo) CountByTenant(tenantID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM branches WHERE tenant_id = $1`, tenantID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count branches: %w", err)
	}
	return n, nil
}
