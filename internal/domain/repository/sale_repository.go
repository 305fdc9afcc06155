package repository

import "github.com/tiendashellx/pos-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus líneas (DIP).
// Cabecera y líneas son inmutables: no hay Update ni Delete.
type SaleRepository interface {
	CreateHeader(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(tenantID, id string) (*entity.Sale, error)
	ListItems(tenantID, saleID string) ([]*entity.SaleItem, error)
	ListByBranch(tenantID, branchCode string) ([]*entity.Sale, error)
}
