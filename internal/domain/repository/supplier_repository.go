package repository

import "github.com/tiendashellx/pos-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByTenantAndCode(tenantID, code string) (*entity.Supplier, error)
	ListActiveByTenant(tenantID string) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Deactivate(tenantID, code string) error
	CountByTenant(tenantID string) (int64, error)
}
