package purchases

import (
	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
)

// QueryUseCase lecturas sobre compras registradas.
type QueryUseCase struct {
	purchaseRepo repository.PurchaseRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(purchaseRepo repository.PurchaseRepository) *QueryUseCase {
	return &QueryUseCase{purchaseRepo: purchaseRepo}
}

// ListByBranch lista las compras de una sucursal, más recientes primero.
func (uc *QueryUseCase) ListByBranch(tenantID, branchCode string) ([]dto.PurchaseResponse, error) {
	list, err := uc.purchaseRepo.ListByBranch(tenantID, branchCode)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.PurchaseResponse{
			ID:           p.ID,
			Date:         p.Date,
			Total:        p.Total,
			ItemsCount:   p.ItemsCount,
			SupplierCode: p.SupplierCode,
			SupplierName: p.SupplierName,
			BranchCode:   p.BranchCode,
		})
	}
	return out, nil
}

// GetDetail obtiene una compra con sus líneas. Devuelve nil si no existe.
func (uc *QueryUseCase) GetDetail(tenantID, purchaseID string) (*dto.PurchaseDetailResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(tenantID, purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, nil
	}
	items, err := uc.purchaseRepo.ListItems(tenantID, purchaseID)
	if err != nil {
		return nil, err
	}
	detail := &dto.PurchaseDetailResponse{
		ID:           purchase.ID,
		Date:         purchase.Date,
		Total:        purchase.Total,
		ItemsCount:   purchase.ItemsCount,
		BranchCode:   purchase.BranchCode,
		SupplierCode: purchase.SupplierCode,
		SupplierName: purchase.SupplierName,
		Operator:     purchase.Operator,
		Items:        make([]dto.PurchaseItemResponse, 0, len(items)),
	}
	for _, it := range items {
		detail.Items = append(detail.Items, dto.PurchaseItemResponse{
			ProductCode: it.ProductCode,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return detail, nil
}
