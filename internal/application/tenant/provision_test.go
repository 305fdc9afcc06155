package tenant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendashellx/pos-api/internal/application/tenant"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeBranchRepo struct{ rows []*entity.Branch }

func (f *fakeBranchRepo) Create(b *entity.Branch) error { f.rows = append(f.rows, b); return nil }
func (f *fakeBranchRepo) GetByTenantAndCode(tenantID, code string) (*entity.Branch, error) {
	return nil, nil
}
func (f *fakeBranchRepo) ListByTenant(tenantID string) ([]*entity.Branch, error)       { return f.rows, nil }
func (f *fakeBranchRepo) ListActiveByTenant(tenantID string) ([]*entity.Branch, error) { return f.rows, nil }
func (f *fakeBranchRepo) Update(b *entity.Branch) error                                { return nil }
func (f *fakeBranchRepo) Deactivate(tenantID, code string) error                       { return nil }
func (f *fakeBranchRepo) CountByTenant(tenantID string) (int64, error) {
	return int64(len(f.rows)), nil
}

type fakeCategoryRepo struct{ rows []*entity.Category }

func (f *fakeCategoryRepo) Create(c *entity.Category) error { f.rows = append(f.rows, c); return nil }
func (f *fakeCategoryRepo) ListByTenant(tenantID string) ([]*entity.Category, error) {
	return f.rows, nil
}
func (f *fakeCategoryRepo) CountByTenant(tenantID string) (int64, error) {
	return int64(len(f.rows)), nil
}

type fakeProductRepo struct{ rows []*entity.Product }

func (f *fakeProductRepo) Create(p *entity.Product) error { f.rows = append(f.rows, p); return nil }
func (f *fakeProductRepo) GetByTenantAndCode(tenantID, code string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { return nil }
func (f *fakeProductRepo) ListActiveByTenant(tenantID string) ([]*entity.Product, error) {
	return f.rows, nil
}
func (f *fakeProductRepo) Deactivate(tenantID, code string) error { return nil }
func (f *fakeProductRepo) CountByTenant(tenantID string) (int64, error) {
	return int64(len(f.rows)), nil
}

type fakeStockRepo struct{ rows []*entity.BranchStock }

func (f *fakeStockRepo) Get(tenantID, productID, branchCode string) (*entity.BranchStock, error) {
	return &entity.BranchStock{}, nil
}
func (f *fakeStockRepo) GetForUpdate(tenantID, productID, branchCode string) (*entity.BranchStock, error) {
	return &entity.BranchStock{}, nil
}
func (f *fakeStockRepo) Upsert(s *entity.BranchStock) error { f.rows = append(f.rows, s); return nil }
func (f *fakeStockRepo) ListByProduct(tenantID, productID string) ([]*entity.BranchStock, error) {
	return nil, nil
}

type fakeEmployeeRepo struct{ rows []*entity.Employee }

func (f *fakeEmployeeRepo) Create(e *entity.Employee) error { f.rows = append(f.rows, e); return nil }
func (f *fakeEmployeeRepo) GetActiveByCode(tenantID, code string) (*entity.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) ListActiveByTenant(tenantID string) ([]*entity.Employee, error) {
	return f.rows, nil
}
func (f *fakeEmployeeRepo) Update(e *entity.Employee) error      { return nil }
func (f *fakeEmployeeRepo) Deactivate(tenantID, code string) error { return nil }
func (f *fakeEmployeeRepo) CountByTenant(tenantID string) (int64, error) {
	return int64(len(f.rows)), nil
}

type fakeSupplierRepo struct{ rows []*entity.Supplier }

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error { f.rows = append(f.rows, s); return nil }
func (f *fakeSupplierRepo) GetByTenantAndCode(tenantID, code string) (*entity.Supplier, error) {
	return nil, nil
}
func (f *fakeSupplierRepo) ListActiveByTenant(tenantID string) ([]*entity.Supplier, error) {
	return f.rows, nil
}
func (f *fakeSupplierRepo) Update(s *entity.Supplier) error      { return nil }
func (f *fakeSupplierRepo) Deactivate(tenantID, code string) error { return nil }
func (f *fakeSupplierRepo) CountByTenant(tenantID string) (int64, error) {
	return int64(len(f.rows)), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	branches   *fakeBranchRepo
	categories *fakeCategoryRepo
	products   *fakeProductRepo
	stock      *fakeStockRepo
	employees  *fakeEmployeeRepo
	suppliers  *fakeSupplierRepo
	p          *tenant.Provisioner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		branches:   &fakeBranchRepo{},
		categories: &fakeCategoryRepo{},
		products:   &fakeProductRepo{},
		stock:      &fakeStockRepo{},
		employees:  &fakeEmployeeRepo{},
		suppliers:  &fakeSupplierRepo{},
	}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	f.p = tenant.NewProvisioner(f.branches, f.categories, f.products, f.stock, f.employees, f.suppliers, log)
	return f
}

// La siembra puebla el catálogo completo de demostración del tenant.
func TestSeed_PueblaDatosIniciales(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.p.Seed(context.Background(), "tenant-x"))

	assert.Len(t, f.branches.rows, 2, "SUC001 y SUC002")
	assert.Len(t, f.categories.rows, 5)
	assert.Len(t, f.products.rows, 8)
	assert.Len(t, f.stock.rows, 16, "stock por producto en ambas sucursales")
	assert.Len(t, f.employees.rows, 3)
	assert.Len(t, f.suppliers.rows, 2)

	for _, b := range f.branches.rows {
		assert.Equal(t, "tenant-x", b.TenantID)
		assert.True(t, b.Active)
	}
	for _, p := range f.products.rows {
		assert.Equal(t, "tenant-x", p.TenantID)
	}
}

// Los datos de demostración respetan los valores del catálogo base.
func TestSeed_ValoresDelCatalogo(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.p.Seed(context.Background(), "tenant-x"))

	var cola *entity.Product
	for _, p := range f.products.rows {
		if p.Code == "PROD001" {
			cola = p
		}
	}
	require.NotNil(t, cola)
	assert.Equal(t, "Coca-Cola 600ml", cola.Name)
	assert.Equal(t, "CAT001", cola.CategoryCode)
	assert.Equal(t, "18", cola.SalePrice.String())
	assert.EqualValues(t, 20, cola.MinStock)

	stock := map[string]int64{}
	for _, s := range f.stock.rows {
		if s.ProductID == cola.ID {
			stock[s.BranchCode] = s.Quantity
		}
	}
	assert.EqualValues(t, 100, stock["SUC001"])
	assert.EqualValues(t, 80, stock["SUC002"])
}

// Sembrar dos veces no duplica: cada colección se salta si ya tiene filas.
func TestSeed_EsIdempotente(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.p.Seed(context.Background(), "tenant-x"))
	require.NoError(t, f.p.Seed(context.Background(), "tenant-x"))

	assert.Len(t, f.branches.rows, 2)
	assert.Len(t, f.categories.rows, 5)
	assert.Len(t, f.products.rows, 8)
	assert.Len(t, f.employees.rows, 3)
	assert.Len(t, f.suppliers.rows, 2)
}
