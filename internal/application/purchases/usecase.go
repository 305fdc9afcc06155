package purchases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/domain"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios del flujo de compra atados a esa tx.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
	) error) error
}

// CreatePurchaseUseCase registra una compra a proveedor: cabecera, líneas,
// incremento de stock por sucursal y movimientos ENTRADA/COMPRA, todo en una
// transacción. Simétrico a la venta pero sin autorización por PIN.
type CreatePurchaseUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	branchRepo   repository.BranchRepository
	supplierRepo repository.SupplierRepository
}

// NewCreatePurchaseUseCase construye el caso de uso.
func NewCreatePurchaseUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	supplierRepo repository.SupplierRepository,
) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		branchRepo:   branchRepo,
		supplierRepo: supplierRepo,
	}
}

// Execute registra la compra para el tenant/operador de la sesión.
func (uc *CreatePurchaseUseCase) Execute(ctx context.Context, tenantID, operator string, in dto.CreatePurchaseRequest) (*dto.CreatePurchaseResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	branch, err := uc.branchRepo.GetByTenantAndCode(tenantID, in.BranchCode)
	if err != nil {
		return nil, err
	}
	if branch == nil || !branch.Active {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByTenantAndCode(tenantID, in.SupplierCode)
	if err != nil {
		return nil, err
	}
	if supplier == nil || !supplier.Active {
		return nil, domain.ErrNotFound
	}

	type purchaseLine struct {
		product  *entity.Product
		quantity int64
		price    decimal.Decimal
	}
	lines := make([]purchaseLine, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByTenantAndCode(tenantID, item.ProductCode)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.Active {
			return nil, domain.ErrNotFound
		}
		price := item.UnitPrice
		if price.IsZero() {
			price = product.PurchasePrice
		}
		lines = append(lines, purchaseLine{product: product, quantity: item.Quantity, price: price})
	}

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.price.Mul(decimal.NewFromInt(l.quantity)))
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		BranchCode:   in.BranchCode,
		SupplierCode: supplier.Code,
		SupplierName: supplier.Name,
		Date:         now,
		Total:        total,
		ItemsCount:   len(lines),
		Operator:     operator,
	}

	err = uc.txRunner.RunPurchase(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
	) error {
		if err := purchaseRepo.CreateHeader(purchase); err != nil {
			return err
		}
		for _, l := range lines {
			stock, err := stockRepo.GetForUpdate(tenantID, l.product.ID, in.BranchCode)
			if err != nil {
				return err
			}
			stock.Quantity += l.quantity
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}
			item := &entity.PurchaseItem{
				ID:          uuid.New().String(),
				TenantID:    tenantID,
				PurchaseID:  purchase.ID,
				ProductCode: l.product.Code,
				ProductName: l.product.Name,
				Quantity:    l.quantity,
				UnitPrice:   l.price,
				Subtotal:    l.price.Mul(decimal.NewFromInt(l.quantity)),
			}
			if err := purchaseRepo.CreateItem(item); err != nil {
				return err
			}
			mov := &entity.InventoryMovement{
				ID:          uuid.New().String(),
				TenantID:    tenantID,
				ProductCode: l.product.Code,
				ProductName: l.product.Name,
				BranchCode:  in.BranchCode,
				Type:        entity.MovementTypeEntrada,
				Reason:      entity.MovementReasonCompra,
				Quantity:    l.quantity,
				Date:        now,
				ReferenceID: purchase.ID,
				Operator:    operator,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreatePurchaseResponse{Success: true, PurchaseID: purchase.ID, Total: total}, nil
}
