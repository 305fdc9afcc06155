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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, tenant_id, code, name, role, branch_code, phone, salary, pin_hash, active, created_at, updated_at`

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.TenantID, employee.Code, employee.Name, employee.Role,
		employee.BranchCode, employee.Phone, employee.Salary, employee.PINHash,
		employee.Active, employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetActiveByCode obtiene un empleado activo por tenant y código.
func (r *EmployeeRepo) GetActiveByCode(tenantID, code string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE tenant_id = $1 AND code = $2 AND active = true`
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, tenantID, code).Scan(
		&e.ID, &e.TenantID, &e.Code, &e.Name, &e.Role, &e.BranchCode, &e.Phone,
		&e.Salary, &e.PINHash, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// ListActiveByTenant lista los empleados activos del tenant.
func (r *EmployeeRepo) ListActiveByTenant(tenantID string) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE tenant_id = $1 AND active = true ORDER BY code`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.TenantID, &e.Code, &e.Name, &e.Role, &e.BranchCode,
			&e.Phone, &e.Salary, &e.PINHash, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un empleado existente (incluido el PIN de autorización).
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees SET name = $3, role = $4, branch_code = $5, phone = $6, salary = $7, pin_hash = $8, updated_at = $9
		WHERE tenant_id = $1 AND code = $2`
	_, err := r.q.Exec(context.Background(), query,
		employee.TenantID, employee.Code, employee.Name, employee.Role, employee.BranchCode,
		employee.Phone, employee.Salary, employee.PINHash, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Deactivate borrado lógico (active=false).
func (r *EmployeeRepo) Deactivate(tenantID, code string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE employees SET active = false, updated_at = now() WHERE tenant_id = $1 AND code = $2`,
		tenantID, code,
	)
	if err != nil {
		return fmt.Errorf("deactivate employee: %w", err)
	}
	return nil
}

// CountByTenant cuenta los empleados del tenant (para el seeding idempotente).
func (r *EmployeeRepo) CountByTenant(tenantID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM employees WHERE tenant_id = $1`, tenantID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}
