package repository

import "github.com/tiendashellx/pos-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	// GetActiveByCode solo devuelve empleados con Active=true; la
	// autorización de ventas no acepta empleados dados de baja.
	GetActiveByCode(tenantID, code string) (*entity.Employee, error)
	ListActiveByTenant(tenantID string) ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Deactivate(tenantID, code string) error
	CountByTenant(tenantID string) (int64, error)
}
