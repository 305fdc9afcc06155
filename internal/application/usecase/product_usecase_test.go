package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/application/usecase"
	"github.com/tiendashellx/pos-api/internal/domain"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
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
	var out []*entity.Product
	for _, p := range f.products {
		if p.TenantID == tenantID && p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProductRepo) Deactivate(tenantID, code string) error {
	if p, ok := f.products[code]; ok {
		p.Active = false
	}
	return nil
}
func (f *fakeProductRepo) CountByTenant(tenantID string) (int64, error) {
	return int64(len(f.products)), nil
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

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	f.categories = append(f.categories, c)
	return nil
}
func (f *fakeCategoryRepo) ListByTenant(tenantID string) ([]*entity.Category, error) {
	return f.categories, nil
}
func (f *fakeCategoryRepo) CountByTenant(tenantID string) (int64, error) {
	return int64(len(f.categories)), nil
}

type fakeBranchRepo struct {
	branches []*entity.Branch
}

func (f *fakeBranchRepo) Create(b *entity.Branch) error { f.branches = append(f.branches, b); return nil }
func (f *fakeBranchRepo) GetByTenantAndCode(tenantID, code string) (*entity.Branch, error) {
	for _, b := range f.branches {
		if b.TenantID == tenantID && b.Code == code {
			return b, nil
		}
	}
	return nil, nil
}
func (f *fakeBranchRepo) ListByTenant(tenantID string) ([]*entity.Branch, error) {
	return f.branches, nil
}
func (f *fakeBranchRepo) ListActiveByTenant(tenantID string) ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, b := range f.branches {
		if b.Active {
			out = append(out, b)
		}
	}
	return out, nil
}
func (f *fakeBranchRepo) Update(b *entity.Branch) error          { return nil }
func (f *fakeBranchRepo) Deactivate(tenantID, code string) error { return nil }
func (f *fakeBranchRepo) CountByTenant(tenantID string) (int64, error) {
	return int64(len(f.branches)), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

const tenantA = "tenant-a"

type fixture struct {
	products *fakeProductRepo
	stock    *fakeStockRepo
	uc       *usecase.ProductUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	products := &fakeProductRepo{products: map[string]*entity.Product{}}
	stock := &fakeStockRepo{stock: map[stockKey]int64{}}
	categories := &fakeCategoryRepo{categories: []*entity.Category{
		{TenantID: tenantA, Code: "CAT001", Name: "Bebidas"},
	}}
	branches := &fakeBranchRepo{branches: []*entity.Branch{
		{ID: "b1", TenantID: tenantA, Code: "SUC001", Active: true},
		{ID: "b2", TenantID: tenantA, Code: "SUC002", Active: true},
		{ID: "b3", TenantID: tenantA, Code: "SUC003", Active: false},
	}}
	return &fixture{
		products: products,
		stock:    stock,
		uc:       usecase.NewProductUseCase(products, stock, categories, branches),
	}
}

// El alta aplica el stock inicial a todas las sucursales activas, nunca a
// las inactivas.
func TestProductCreate_StockInicialEnSucursalesActivas(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Create(tenantA, dto.CreateProductRequest{
		Code:         "PROD001",
		Name:         "Coca-Cola 600ml",
		CategoryCode: "CAT001",
		SalePrice:    decimal.RequireFromString("18.00"),
		InitialStock: 50,
		MinStock:     20,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 50, out.Stock)
	assert.Equal(t, "Bebidas", out.Category, "la categoría se resuelve por nombre")

	p := f.products.products["PROD001"]
	require.NotNil(t, p)
	assert.EqualValues(t, 50, f.stock.stock[stockKey{p.ID, "SUC001"}])
	assert.EqualValues(t, 50, f.stock.stock[stockKey{p.ID, "SUC002"}])
	_, seeded := f.stock.stock[stockKey{p.ID, "SUC003"}]
	assert.False(t, seeded, "la sucursal inactiva no recibe stock inicial")
}

// Código repetido dentro del mismo tenant → conflicto.
func TestProductCreate_CodigoDuplicado(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(tenantA, dto.CreateProductRequest{Code: "PROD001", Name: "Uno"})
	require.NoError(t, err)

	_, err = f.uc.Create(tenantA, dto.CreateProductRequest{Code: "PROD001", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Precios y cantidades negativas se rechazan.
func TestProductCreate_Validaciones(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(tenantA, dto.CreateProductRequest{Code: "", Name: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(tenantA, dto.CreateProductRequest{
		Code: "P1", Name: "X", SalePrice: decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(tenantA, dto.CreateProductRequest{Code: "P1", Name: "X", InitialStock: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La actualización es parcial: solo cambia lo enviado y nunca el stock.
func TestProductUpdate_Parcial(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(tenantA, dto.CreateProductRequest{
		Code: "PROD001", Name: "Coca-Cola 600ml",
		SalePrice: decimal.RequireFromString("18.00"), InitialStock: 50,
	})
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("20.00")
	out, err := f.uc.Update(tenantA, "PROD001", dto.UpdateProductRequest{SalePrice: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "20", out.SalePrice.String())
	assert.Equal(t, "Coca-Cola 600ml", out.Name, "el nombre no cambia si no se envía")

	p := f.products.products["PROD001"]
	assert.EqualValues(t, 50, f.stock.stock[stockKey{p.ID, "SUC001"}],
		"el update de catálogo no toca el stock")
}

// Desactivar es borrado lógico; repetirlo o hacerlo sobre inexistente → 404.
func TestProductDeactivate(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(tenantA, dto.CreateProductRequest{Code: "PROD001", Name: "Uno"})
	require.NoError(t, err)

	require.NoError(t, f.uc.Deactivate(tenantA, "PROD001"))
	assert.False(t, f.products.products["PROD001"].Active)

	assert.ErrorIs(t, f.uc.Deactivate(tenantA, "PROD001"), domain.ErrNotFound,
		"ya desactivado se comporta como inexistente")
	assert.ErrorIs(t, f.uc.Deactivate(tenantA, "NOEXISTE"), domain.ErrNotFound)

	out, err := f.uc.GetByCode(tenantA, "PROD001", "SUC001")
	require.NoError(t, err)
	assert.Nil(t, out, "un producto inactivo no se expone")
}

// Los productos de otro tenant no son visibles.
func TestProduct_AislamientoPorTenant(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(tenantA, dto.CreateProductRequest{Code: "PROD001", Name: "Uno"})
	require.NoError(t, err)

	out, err := f.uc.GetByCode("tenant-b", "PROD001", "SUC001")
	require.NoError(t, err)
	assert.Nil(t, out)
}
