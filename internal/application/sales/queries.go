package sales

import (
	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
)

// QueryUseCase lecturas sobre ventas ya procesadas.
type QueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(saleRepo repository.SaleRepository) *QueryUseCase {
	return &QueryUseCase{saleRepo: saleRepo}
}

// ListByBranch lista las ventas de una sucursal, más recientes primero.
func (uc *QueryUseCase) ListByBranch(tenantID, branchCode string) ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.ListByBranch(tenantID, branchCode)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// GetDetail obtiene una venta con sus líneas. Devuelve nil si no existe.
func (uc *QueryUseCase) GetDetail(tenantID, saleID string) (*dto.SaleDetailResponse, error) {
	sale, err := uc.saleRepo.GetByID(tenantID, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	items, err := uc.saleRepo.ListItems(tenantID, saleID)
	if err != nil {
		return nil, err
	}
	detail := &dto.SaleDetailResponse{
		ID:           sale.ID,
		Date:         sale.Date,
		Total:        sale.Total,
		ItemsCount:   sale.ItemsCount,
		BranchCode:   sale.BranchCode,
		Operator:     sale.Operator,
		EmployeeCode: sale.EmployeeCode,
		EmployeeName: sale.EmployeeName,
		Items:        make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, it := range items {
		detail.Items = append(detail.Items, dto.SaleItemResponse{
			ProductCode: it.ProductCode,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return detail, nil
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:         s.ID,
		Date:       s.Date,
		Total:      s.Total,
		ItemsCount: s.ItemsCount,
		BranchCode: s.BranchCode,
	}
}
