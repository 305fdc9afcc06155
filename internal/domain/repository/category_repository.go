package repository

import "github.com/tiendashellx/pos-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	ListByTenant(tenantID string) ([]*entity.Category, error)
	CountByTenant(tenantID string) (int64, error)
}
