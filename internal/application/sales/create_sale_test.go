package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/application/sales"
	"github.com/tiendashellx/pos-api/internal/domain"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product // key: code
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.Code] = p; return nil }
func (f *fakeProductRepo) GetByTenantAndCode(tenantID, code string) (*entity.Product, error) {
	p, ok := f.products[code]
	if !ok || p.TenantID != tenantID {
		return nil, nil
	}
	return p, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.Code] = p; return nil }
func (f *fakeProductRepo) ListActiveByTenant(tenantID string) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Deactivate(tenantID, code string) error { return nil }
func (f *fakeProductRepo) CountByTenant(tenantID string) (int64, error) {
	return int64(len(f.products)), nil
}

type fakeBranchRepo struct {
	branches map[string]*entity.Branch
}

func (f *fakeBranchRepo) Create(b *entity.Branch) error { f.branches[b.Code] = b; return nil }
func (f *fakeBranchRepo) GetByTenantAndCode(tenantID, code string) (*entity.Branch, error) {
	b, ok := f.branches[code]
	if !ok || b.TenantID != tenantID {
		return nil, nil
	}
	return b, nil
}
func (f *fakeBranchRepo) ListByTenant(tenantID string) ([]*entity.Branch, error)       { return nil, nil }
func (f *fakeBranchRepo) ListActiveByTenant(tenantID string) ([]*entity.Branch, error) { return nil, nil }
func (f *fakeBranchRepo) Update(b *entity.Branch) error                                { return nil }
func (f *fakeBranchRepo) Deactivate(tenantID, code string) error                       { return nil }
func (f *fakeBranchRepo) CountByTenant(tenantID string) (int64, error) {
	return int64(len(f.branches)), nil
}

type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func (f *fakeEmployeeRepo) Create(e *entity.Employee) error { f.employees[e.Code] = e; return nil }
func (f *fakeEmployeeRepo) GetActiveByCode(tenantID, code string) (*entity.Employee, error) {
	e, ok := f.employees[code]
	if !ok || e.TenantID != tenantID || !e.Active {
		return nil, nil
	}
	return e, nil
}
func (f *fakeEmployeeRepo) ListActiveByTenant(tenantID string) ([]*entity.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) Update(e *entity.Employee) error      { return nil }
func (f *fakeEmployeeRepo) Deactivate(tenantID, code string) error { return nil }
func (f *fakeEmployeeRepo) CountByTenant(tenantID string) (int64, error) {
	return int64(len(f.employees)), nil
}

type stockKey struct{ productID, branchCode string }

type fakeStockRepo struct {
	stock map[stockKey]int64
}

func (f *fakeStockRepo) Get(tenantID, productID, branchCode string) (*entity.BranchStock, error) {
	return &entity.BranchStock{
		TenantID: tenantID, ProductID: productID, BranchCode: branchCode,
		Quantity: f.stock[stockKey{productID, branchCode}],
	}, nil
}
func (f *fakeStockRepo) GetForUpdate(tenantID, productID, branchCode string) (*entity.BranchStock, error) {
	return f.Get(tenantID, productID, branchCode)
}
func (f *fakeStockRepo) Upsert(s *entity.BranchStock) error {
	f.stock[stockKey{s.ProductID, s.BranchCode}] = s.Quantity
	return nil
}
func (f *fakeStockRepo) ListByProduct(tenantID, productID string) ([]*entity.BranchStock, error) {
	return nil, nil
}

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
	items map[string][]*entity.SaleItem // key: sale ID
}

func (f *fakeSaleRepo) CreateHeader(s *entity.Sale) error { f.sales[s.ID] = s; return nil }
func (f *fakeSaleRepo) CreateItem(it *entity.SaleItem) error {
	f.items[it.SaleID] = append(f.items[it.SaleID], it)
	return nil
}
func (f *fakeSaleRepo) GetByID(tenantID, id string) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok || s.TenantID != tenantID {
		return nil, nil
	}
	return s, nil
}
func (f *fakeSaleRepo) ListItems(tenantID, saleID string) ([]*entity.SaleItem, error) {
	return f.items[saleID], nil
}
func (f *fakeSaleRepo) ListByBranch(tenantID, branchCode string) ([]*entity.Sale, error) {
	return nil, nil
}

type fakeMovementRepo struct {
	movements []*entity.InventoryMovement
}

func (f *fakeMovementRepo) Create(m *entity.InventoryMovement) error {
	f.movements = append(f.movements, m)
	return nil
}
func (f *fakeMovementRepo) ListRecent(tenantID, branchCode, movementType string, limit int) ([]*entity.InventoryMovement, error) {
	return f.movements, nil
}

// fakeTxRunner ejecuta la función con los fakes y revierte el stock, las
// ventas y los movimientos si fn falla, imitando el rollback.
type fakeTxRunner struct {
	saleRepo  *fakeSaleRepo
	stockRepo *fakeStockRepo
	movRepo   *fakeMovementRepo
}

func (r *fakeTxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
) error) error {
	stockBefore := make(map[stockKey]int64, len(r.stockRepo.stock))
	for k, v := range r.stockRepo.stock {
		stockBefore[k] = v
	}
	salesBefore := make(map[string]bool, len(r.saleRepo.sales))
	for id := range r.saleRepo.sales {
		salesBefore[id] = true
	}
	movsBefore := len(r.movRepo.movements)

	if err := fn(r.saleRepo, r.stockRepo, r.movRepo); err != nil {
		r.stockRepo.stock = stockBefore
		for id := range r.saleRepo.sales {
			if !salesBefore[id] {
				delete(r.saleRepo.sales, id)
				delete(r.saleRepo.items, id)
			}
		}
		r.movRepo.movements = r.movRepo.movements[:movsBefore]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	tenantA  = "tenant-a"
	operator = "maria"
)

type fixture struct {
	products  *fakeProductRepo
	branches  *fakeBranchRepo
	employees *fakeEmployeeRepo
	stock     *fakeStockRepo
	sales     *fakeSaleRepo
	movements *fakeMovementRepo
	runner    *fakeTxRunner
}

// newFixture arma el escenario base: SUC001 activa, PROD001 a $18.00 con
// 100 unidades en SUC001.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		products:  &fakeProductRepo{products: map[string]*entity.Product{}},
		branches:  &fakeBranchRepo{branches: map[string]*entity.Branch{}},
		employees: &fakeEmployeeRepo{employees: map[string]*entity.Employee{}},
		stock:     &fakeStockRepo{stock: map[stockKey]int64{}},
		sales:     &fakeSaleRepo{sales: map[string]*entity.Sale{}, items: map[string][]*entity.SaleItem{}},
		movements: &fakeMovementRepo{},
	}
	f.runner = &fakeTxRunner{saleRepo: f.sales, stockRepo: f.stock, movRepo: f.movements}

	f.branches.branches["SUC001"] = &entity.Branch{
		ID: "b1", TenantID: tenantA, Code: "SUC001", Name: "Sucursal Central", Active: true,
	}
	f.products.products["PROD001"] = &entity.Product{
		ID: "p1", TenantID: tenantA, Code: "PROD001", Name: "Coca-Cola 600ml",
		SalePrice: decimal.RequireFromString("18.00"), Active: true,
	}
	f.stock.stock[stockKey{"p1", "SUC001"}] = 100
	return f
}

func (f *fixture) useCase(authRequired bool) *sales.CreateSaleUseCase {
	return sales.NewCreateSaleUseCase(
		f.runner, f.products, f.branches, f.employees,
		sales.AuthConfig{Required: authRequired},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Venta válida: 30 unidades a $18.00 → total $540.00, stock 100 → 70 y un
// movimiento SALIDA/VENTA referenciando la venta.
func TestCreateSale_DescuentaStockYRegistraMovimiento(t *testing.T) {
	f := newFixture(t)
	uc := f.useCase(false)

	out, err := uc.Execute(context.Background(), tenantA, operator, dto.CreateSaleRequest{
		BranchCode: "SUC001",
		Items:      []dto.SaleItemRequest{{ProductCode: "PROD001", Quantity: 30}},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Success)
	assert.Equal(t, "540", out.Total.String(), "total = 30 x 18.00")
	assert.EqualValues(t, 70, f.stock.stock[stockKey{"p1", "SUC001"}],
		"el stock debe quedar en 70")

	require.Len(t, f.movements.movements, 1)
	mov := f.movements.movements[0]
	assert.Equal(t, entity.MovementTypeSalida, mov.Type)
	assert.Equal(t, entity.MovementReasonVenta, mov.Reason)
	assert.EqualValues(t, 30, mov.Quantity)
	assert.Equal(t, out.SaleID, mov.ReferenceID,
		"el movimiento debe referenciar la venta que lo originó")
	assert.Equal(t, operator, mov.Operator)

	// Las líneas guardan snapshot de nombre y precio.
	items := f.sales.items[out.SaleID]
	require.Len(t, items, 1)
	assert.Equal(t, "Coca-Cola 600ml", items[0].ProductName)
	assert.Equal(t, "540", items[0].Subtotal.String())
}

// Stock insuficiente: la venta completa se rechaza con las cifras en el
// mensaje y sin ningún efecto sobre stock ni movimientos.
func TestCreateSale_StockInsuficienteRechazaTodo(t *testing.T) {
	f := newFixture(t)
	uc := f.useCase(false)

	out, err := uc.Execute(context.Background(), tenantA, operator, dto.CreateSaleRequest{
		BranchCode: "SUC001",
		Items:      []dto.SaleItemRequest{{ProductCode: "PROD001", Quantity: 150}},
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, domain.IsInsufficientStock(err))
	assert.Contains(t, err.Error(), "Coca-Cola 600ml")
	assert.Contains(t, err.Error(), "Disponible: 100")
	assert.Contains(t, err.Error(), "Solicitado: 150")

	assert.EqualValues(t, 100, f.stock.stock[stockKey{"p1", "SUC001"}],
		"el stock no debe cambiar si la venta falla")
	assert.Empty(t, f.movements.movements)
}

// Una línea insuficiente invalida también las líneas válidas de la misma venta.
func TestCreateSale_LineaInvalidaRevierteLineasValidas(t *testing.T) {
	f := newFixture(t)
	f.products.products["PROD002"] = &entity.Product{
		ID: "p2", TenantID: tenantA, Code: "PROD002", Name: "Leche Entera 1L",
		SalePrice: decimal.RequireFromString("28.00"), Active: true,
	}
	f.stock.stock[stockKey{"p2", "SUC001"}] = 5
	uc := f.useCase(false)

	_, err := uc.Execute(context.Background(), tenantA, operator, dto.CreateSaleRequest{
		BranchCode: "SUC001",
		Items: []dto.SaleItemRequest{
			{ProductCode: "PROD001", Quantity: 10}, // suficiente
			{ProductCode: "PROD002", Quantity: 50}, // insuficiente
		},
	})
	require.Error(t, err)
	assert.True(t, domain.IsInsufficientStock(err))

	assert.EqualValues(t, 100, f.stock.stock[stockKey{"p1", "SUC001"}],
		"la línea válida también debe revertirse")
	assert.EqualValues(t, 5, f.stock.stock[stockKey{"p2", "SUC001"}])
	assert.Empty(t, f.movements.movements)
}

// Producto inexistente o cantidad no positiva → rechazo sin efectos.
func TestCreateSale_ValidacionesDeEntrada(t *testing.T) {
	f := newFixture(t)
	uc := f.useCase(false)

	_, err := uc.Execute(context.Background(), tenantA, operator, dto.CreateSaleRequest{
		BranchCode: "SUC001",
		Items:      []dto.SaleItemRequest{{ProductCode: "NOEXISTE", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Execute(context.Background(), tenantA, operator, dto.CreateSaleRequest{
		BranchCode: "SUC001",
		Items:      []dto.SaleItemRequest{{ProductCode: "PROD001", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), tenantA, operator, dto.CreateSaleRequest{
		BranchCode: "SUC001",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "venta sin items")

	_, err = uc.Execute(context.Background(), tenantA, operator, dto.CreateSaleRequest{
		BranchCode: "SUC999",
		Items:      []dto.SaleItemRequest{{ProductCode: "PROD001", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "sucursal inexistente")

	assert.EqualValues(t, 100, f.stock.stock[stockKey{"p1", "SUC001"}])
}

// Sin precio en la línea se usa el precio de venta del catálogo.
func TestCreateSale_PrecioPorDefectoDelCatalogo(t *testing.T) {
	f := newFixture(t)
	uc := f.useCase(false)

	out, err := uc.Execute(context.Background(), tenantA, operator, dto.CreateSaleRequest{
		BranchCode: "SUC001",
		Items: []dto.SaleItemRequest{
			{ProductCode: "PROD001", Quantity: 2, UnitPrice: decimal.RequireFromString("15.50")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "31", out.Total.String(), "con precio explícito se usa el de la línea")

	out, err = uc.Execute(context.Background(), tenantA, operator, dto.CreateSaleRequest{
		BranchCode: "SUC001",
		Items:      []dto.SaleItemRequest{{ProductCode: "PROD001", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "36", out.Total.String(), "sin precio se usa el del catálogo (18.00)")
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización por PIN de empleado
// ──────────────────────────────────────────────────────────────────────────────

func withEmployee(t *testing.T, f *fixture, pin string) {
	t.Helper()
	pinHash := ""
	if pin != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
		require.NoError(t, err)
		pinHash = string(hash)
	}
	f.employees.employees["EMP001"] = &entity.Employee{
		ID: "e1", TenantID: tenantA, Code: "EMP001", Name: "Juan Perez",
		PINHash: pinHash, Active: true,
	}
}

// Con autorización requerida y PIN correcto la venta procede y queda
// asociada al empleado.
func TestCreateSale_PINCorrectoAutoriza(t *testing.T) {
	f := newFixture(t)
	withEmployee(t, f, "1234")
	uc := f.useCase(true)

	out, err := uc.Execute(context.Background(), tenantA, operator, dto.CreateSaleRequest{
		BranchCode:   "SUC001",
		EmployeeCode: "EMP001",
		EmployeePIN:  "1234",
		Items:        []dto.SaleItemRequest{{ProductCode: "PROD001", Quantity: 1}},
	})
	require.NoError(t, err)

	sale := f.sales.sales[out.SaleID]
	require.NotNil(t, sale)
	assert.Equal(t, "EMP001", sale.EmployeeCode)
	assert.Equal(t, "Juan Perez", sale.EmployeeName)
}

// PIN incorrecto, empleado sin PIN, empleado inexistente o credenciales
// ausentes: rechazo antes de tocar stock.
func TestCreateSale_AutorizacionRechazada(t *testing.T) {
	cases := []struct {
		name    string
		pin     string // PIN registrado del empleado ("" = sin PIN)
		reqCode string
		reqPIN  string
		wantErr error
	}{
		{"sin credenciales", "1234", "", "", domain.ErrUnauthorized},
		{"empleado inexistente", "1234", "EMP999", "1234", domain.ErrEmployeeNotFound},
		{"empleado sin PIN registrado", "", "EMP001", "1234", domain.ErrEmployeeNoPIN},
		{"PIN incorrecto", "1234", "EMP001", "9999", domain.ErrInvalidPIN},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			withEmployee(t, f, tc.pin)
			uc := f.useCase(true)

			_, err := uc.Execute(context.Background(), tenantA, operator, dto.CreateSaleRequest{
				BranchCode:   "SUC001",
				EmployeeCode: tc.reqCode,
				EmployeePIN:  tc.reqPIN,
				Items:        []dto.SaleItemRequest{{ProductCode: "PROD001", Quantity: 1}},
			})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.EqualValues(t, 100, f.stock.stock[stockKey{"p1", "SUC001"}],
				"el rechazo de autorización no debe tocar stock")
			assert.Empty(t, f.movements.movements)
		})
	}
}

// Con autorización deshabilitada la venta no exige empleado.
func TestCreateSale_AutorizacionDeshabilitada(t *testing.T) {
	f := newFixture(t)
	uc := f.useCase(false)

	out, err := uc.Execute(context.Background(), tenantA, operator, dto.CreateSaleRequest{
		BranchCode: "SUC001",
		Items:      []dto.SaleItemRequest{{ProductCode: "PROD001", Quantity: 1}},
	})
	require.NoError(t, err)
	sale := f.sales.sales[out.SaleID]
	assert.Empty(t, sale.EmployeeCode)
}
