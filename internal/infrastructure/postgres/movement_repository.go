package postgres

import (
	"context"
	"fmt"

	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// La tabla es append-only: este adaptador no expone UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta un movimiento de inventario.
func (r *MovementRepo) Create(movement *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (id, tenant_id, product_code, product_name, branch_code, type, reason, quantity, date, reference_id, operator)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.TenantID, movement.ProductCode, movement.ProductName,
		movement.BranchCode, movement.Type, movement.Reason, movement.Quantity,
		movement.Date, movement.ReferenceID, movement.Operator,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListRecent lista los movimientos de una sucursal, más recientes primero,
// opcionalmente filtrados por tipo, con tope de filas.
func (r *MovementRepo) ListRecent(tenantID, branchCode, movementType string, limit int) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT id, tenant_id, product_code, product_name, branch_code, type, reason, quantity, date, reference_id, operator
		FROM inventory_movements
		WHERE tenant_id = $1 AND branch_code = $2 AND ($3 = '' OR type = $3)
		ORDER BY date DESC
		LIMIT $4`
	rows, err := r.q.Query(context.Background(), query, tenantID, branchCode, movementType, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(&m.ID, &m.TenantID, &m.ProductCode, &m.ProductName, &m.BranchCode,
			&m.Type, &m.Reason, &m.Quantity, &m.Date, &m.ReferenceID, &m.Operator); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
