package repository

import "github.com/tiendashellx/pos-api/internal/domain/entity"

// BranchRepository define el puerto de persistencia para Branch (DIP).
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByTenantAndCode(tenantID, code string) (*entity.Branch, error)
	ListByTenant(tenantID string) ([]*entity.Branch, error)
	ListActiveByTenant(tenantID string) ([]*entity.Branch, error)
	Update(branch *entity.Branch) error
	Deactivate(tenantID, code string) error
	CountByTenant(tenantID string) (int64, error)
}
