package repository

import "github.com/tiendashellx/pos-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByTenantAndCode(tenantID, code string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListActiveByTenant(tenantID string) ([]*entity.Product, error)
	// Deactivate borrado lógico: Active=false, nunca borrado físico.
	Deactivate(tenantID, code string) error
	CountByTenant(tenantID string) (int64, error)
}
