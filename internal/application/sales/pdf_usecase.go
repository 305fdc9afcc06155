package sales

import (
	"context"

	"github.com/tiendashellx/pos-api/internal/domain"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
)

// PDFUseCase genera el ticket PDF de una venta procesada.
type PDFUseCase struct {
	saleRepo  repository.SaleRepository
	generator ReceiptGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(saleRepo repository.SaleRepository, generator ReceiptGenerator) *PDFUseCase {
	return &PDFUseCase{saleRepo: saleRepo, generator: generator}
}

// GenerateReceipt carga la venta con sus líneas y delega en el generador.
func (uc *PDFUseCase) GenerateReceipt(ctx context.Context, tenantID, saleID, storeName string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(tenantID, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.ListItems(tenantID, saleID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateReceipt(ctx, sale, items, storeName)
}
