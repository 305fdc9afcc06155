package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/domain"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthConfig reglas de autorización secundaria del flujo de venta.
type AuthConfig struct {
	Required bool // exige código + PIN de empleado activo
}

// CreateSaleUseCase procesa una venta: autorización de empleado (opcional),
// validación de stock por línea, y en una sola transacción la cabecera, las
// líneas, el decremento de stock por sucursal y los movimientos SALIDA/VENTA.
type CreateSaleUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	branchRepo   repository.BranchRepository
	employeeRepo repository.EmployeeRepository
	authCfg      AuthConfig
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	employeeRepo repository.EmployeeRepository,
	authCfg AuthConfig,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		branchRepo:   branchRepo,
		employeeRepo: employeeRepo,
		authCfg:      authCfg,
	}
}

// Execute procesa la venta para el tenant/operador de la sesión.
// Cualquier línea inválida rechaza la venta completa sin efectos; dentro de
// la transacción un segundo chequeo con bloqueo de fila garantiza que el
// stock nunca quede negativo aun con ventas concurrentes.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, tenantID, operator string, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
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

	employee, err := uc.authorizeEmployee(tenantID, in.EmployeeCode, in.EmployeePIN)
	if err != nil {
		return nil, err
	}

	// Validación previa: producto existente y stock disponible por línea.
	// Aborta la petición completa antes de cualquier efecto.
	type saleLine struct {
		product  *entity.Product
		quantity int64
		price    decimal.Decimal
	}
	lines := make([]saleLine, 0, len(in.Items))
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
			price = product.SalePrice
		}
		lines = append(lines, saleLine{product: product, quantity: item.Quantity, price: price})
	}

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.price.Mul(decimal.NewFromInt(l.quantity)))
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		BranchCode: in.BranchCode,
		Date:       now,
		Total:      total,
		ItemsCount: len(lines),
		Operator:   operator,
	}
	if employee != nil {
		sale.EmployeeCode = employee.Code
		sale.EmployeeName = employee.Name
	}

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
	) error {
		if err := saleRepo.CreateHeader(sale); err != nil {
			return err
		}
		for _, l := range lines {
			// Bloquea la fila de stock; re-verifica dentro de la transacción.
			stock, err := stockRepo.GetForUpdate(tenantID, l.product.ID, in.BranchCode)
			if err != nil {
				return err
			}
			if stock.Quantity < l.quantity {
				return &domain.InsufficientStockError{
					ProductCode: l.product.Code,
					ProductName: l.product.Name,
					Available:   stock.Quantity,
					Requested:   l.quantity,
				}
			}
			stock.Quantity -= l.quantity
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}
			item := &entity.SaleItem{
				ID:          uuid.New().String(),
				TenantID:    tenantID,
				SaleID:      sale.ID,
				ProductCode: l.product.Code,
				ProductName: l.product.Name,
				Quantity:    l.quantity,
				UnitPrice:   l.price,
				Subtotal:    l.price.Mul(decimal.NewFromInt(l.quantity)),
			}
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
			mov := &entity.InventoryMovement{
				ID:          uuid.New().String(),
				TenantID:    tenantID,
				ProductCode: l.product.Code,
				ProductName: l.product.Name,
				BranchCode:  in.BranchCode,
				Type:        entity.MovementTypeSalida,
				Reason:      entity.MovementReasonVenta,
				Quantity:    l.quantity,
				Date:        now,
				ReferenceID: sale.ID,
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

	return &dto.CreateSaleResponse{Success: true, SaleID: sale.ID, Total: total}, nil
}

// authorizeEmployee aplica la autorización secundaria si está configurada:
// empleado activo por código, con PIN registrado, y comparación bcrypt
// (hash con sal, tiempo constante). Ocurre antes de tocar stock alguno.
func (uc *CreateSaleUseCase) authorizeEmployee(tenantID, code, pin string) (*entity.Employee, error) {
	if !uc.authCfg.Required {
		return nil, nil
	}
	if code == "" || pin == "" {
		return nil, domain.ErrUnauthorized
	}
	employee, err := uc.employeeRepo.GetActiveByCode(tenantID, code)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if employee.PINHash == "" {
		return nil, domain.ErrEmployeeNoPIN
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PINHash), []byte(pin)); err != nil {
		return nil, domain.ErrInvalidPIN
	}
	return employee, nil
}
