package inventory

import (
	"context"

	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
)

// Config parámetros del módulo de inventario.
type Config struct {
	DefaultBranch     string
	MovementsPageSize int
	LowStockDefault   int
}

// InventoryUseCase consultas sobre el historial de movimientos y el stock.
type InventoryUseCase struct {
	movementRepo  repository.MovementRepository
	analyticsRepo repository.AnalyticsRepository
	cfg           Config
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(movementRepo repository.MovementRepository, analyticsRepo repository.AnalyticsRepository, cfg Config) *InventoryUseCase {
	return &InventoryUseCase{movementRepo: movementRepo, analyticsRepo: analyticsRepo, cfg: cfg}
}

// ListMovements devuelve los movimientos más recientes de una sucursal,
// opcionalmente filtrados por tipo (ENTRADA o SALIDA). El listado viene
// ordenado del más reciente al más antiguo y acotado al tamaño de página.
func (uc *InventoryUseCase) ListMovements(tenantID, branchCode, movementType string) ([]dto.MovementResponse, error) {
	if branchCode == "" {
		branchCode = uc.cfg.DefaultBranch
	}
	movements, err := uc.movementRepo.ListRecent(tenantID, branchCode, movementType, uc.cfg.MovementsPageSize)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.MovementResponse{
			ID:          m.ID,
			ProductCode: m.ProductCode,
			ProductName: m.ProductName,
			BranchCode:  m.BranchCode,
			Type:        m.Type,
			Reason:      m.Reason,
			Quantity:    m.Quantity,
			Date:        m.Date,
			ReferenceID: m.ReferenceID,
			Operator:    m.Operator,
		})
	}
	return items, nil
}

// LowStock lista los productos cuya existencia en la sucursal está en o por
// debajo de su stock mínimo.
func (uc *InventoryUseCase) LowStock(ctx context.Context, tenantID, branchCode string) ([]dto.LowStockResponse, error) {
	if branchCode == "" {
		branchCode = uc.cfg.DefaultBranch
	}
	rows, err := uc.analyticsRepo.LowStock(ctx, tenantID, branchCode, uc.cfg.LowStockDefault)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.LowStockResponse{
			Code:     r.Code,
			Name:     r.Name,
			Stock:    r.Stock,
			MinStock: r.MinStock,
		})
	}
	return items, nil
}
