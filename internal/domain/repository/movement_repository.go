package repository

import "github.com/tiendashellx/pos-api/internal/domain/entity"

// MovementRepository define el puerto para el historial de movimientos.
// El historial es append-only: solo Create y lecturas.
type MovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	// ListRecent devuelve los movimientos de una sucursal, más recientes
	// primero, opcionalmente filtrados por tipo (ENTRADA|SALIDA), con tope.
	ListRecent(tenantID, branchCode, movementType string, limit int) ([]*entity.InventoryMovement, error)
}
