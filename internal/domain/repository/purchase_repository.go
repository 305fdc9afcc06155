package repository

import "github.com/tiendashellx/pos-api/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para Purchase y sus líneas (DIP).
type PurchaseRepository interface {
	CreateHeader(purchase *entity.Purchase) error
	CreateItem(item *entity.PurchaseItem) error
	GetByID(tenantID, id string) (*entity.Purchase, error)
	ListItems(tenantID, purchaseID string) ([]*entity.PurchaseItem, error)
	ListByBranch(tenantID, branchCode string) ([]*entity.Purchase, error)
}
