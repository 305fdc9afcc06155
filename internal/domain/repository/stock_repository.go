package repository

import "github.com/tiendashellx/pos-api/internal/domain/entity"

// StockRepository define el puerto para las existencias por sucursal.
type StockRepository interface {
	Get(tenantID, productID, branchCode string) (*entity.BranchStock, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de la
	// transacción en curso; serializa ventas concurrentes del mismo producto.
	GetForUpdate(tenantID, productID, branchCode string) (*entity.BranchStock, error)
	Upsert(stock *entity.BranchStock) error
	ListByProduct(tenantID, productID string) ([]*entity.BranchStock, error)
}
