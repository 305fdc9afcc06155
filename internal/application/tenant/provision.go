package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
	"github.com/tiendashellx/pos-api/pkg/logger"
)

// DefaultActivationCodes códigos de activación sembrados al arrancar el API.
var DefaultActivationCodes = []string{"ACT001", "ACT002", "ACT003", "DEMO2024", "TIENDA001"}

// Provisioner siembra los datos iniciales de un tenant recién registrado.
// Cada colección se siembra solo si está vacía, así la operación es
// idempotente y puede reintentarse tras un fallo parcial.
type Provisioner struct {
	branchRepo   repository.BranchRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	stockRepo    repository.StockRepository
	employeeRepo repository.EmployeeRepository
	supplierRepo repository.SupplierRepository
	logger       *logger.Logger
}

// NewProvisioner construye el sembrador de tenants.
func NewProvisioner(
	branchRepo repository.BranchRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	employeeRepo repository.EmployeeRepository,
	supplierRepo repository.SupplierRepository,
	log *logger.Logger,
) *Provisioner {
	return &Provisioner{
		branchRepo:   branchRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		stockRepo:    stockRepo,
		employeeRepo: employeeRepo,
		supplierRepo: supplierRepo,
		logger:       log,
	}
}

// Seed puebla sucursales, categorías, productos (con stock por sucursal),
// empleados y proveedores de demostración para el tenant.
func (p *Provisioner) Seed(ctx context.Context, tenantID string) error {
	if err := p.seedBranches(tenantID); err != nil {
		return err
	}
	if err := p.seedCategories(tenantID); err != nil {
		return err
	}
	if err := p.seedProducts(tenantID); err != nil {
		return err
	}
	if err := p.seedEmployees(tenantID); err != nil {
		return err
	}
	if err := p.seedSuppliers(tenantID); err != nil {
		return err
	}
	p.logger.Info().Str("tenant_id", tenantID).Msg("Tenant aprovisionado con datos iniciales")
	return nil
}

func (p *Provisioner) seedBranches(tenantID string) error {
	count, err := p.branchRepo.CountByTenant(tenantID)
	if err != nil || count > 0 {
		return err
	}
	now := time.Now()
	branches := []*entity.Branch{
		{Code: "SUC001", Name: "Sucursal Central", Address: "Av. Principal #100", Phone: "555-0001"},
		{Code: "SUC002", Name: "Sucursal Norte", Address: "Blvd. Norte #200", Phone: "555-0002"},
	}
	for _, b := range branches {
		b.ID = uuid.New().String()
		b.TenantID = tenantID
		b.Active = true
		b.CreatedAt = now
		b.UpdatedAt = now
		if err := p.branchRepo.Create(b); err != nil {
			return err
		}
	}
	return nil
}

func (p *Provisioner) seedCategories(tenantID string) error {
	count, err := p.categoryRepo.CountByTenant(tenantID)
	if err != nil || count > 0 {
		return err
	}
	now := time.Now()
	categories := []*entity.Category{
		{Code: "CAT001", Name: "Bebidas", Description: "Refrescos, jugos, agua"},
		{Code: "CAT002", Name: "Lacteos", Description: "Leche, queso, yogurt"},
		{Code: "CAT003", Name: "Abarrotes", Description: "Arroz, frijol, aceite"},
		{Code: "CAT004", Name: "Snacks", Description: "Papas, galletas, dulces"},
		{Code: "CAT005", Name: "Limpieza", Description: "Jabon, detergente, cloro"},
	}
	for _, c := range categories {
		c.ID = uuid.New().String()
		c.TenantID = tenantID
		c.CreatedAt = now
		if err := p.categoryRepo.Create(c); err != nil {
			return err
		}
	}
	return nil
}

type seedProduct struct {
	code          string
	name          string
	categoryCode  string
	purchasePrice string
	salePrice     string
	minStock      int64
	stock         map[string]int64
}

func (p *Provisioner) seedProducts(tenantID string) error {
	count, err := p.productRepo.CountByTenant(tenantID)
	if err != nil || count > 0 {
		return err
	}
	now := time.Now()
	products := []seedProduct{
		{"PROD001", "Coca-Cola 600ml", "CAT001", "10.00", "18.00", 20, map[string]int64{"SUC001": 100, "SUC002": 80}},
		{"PROD002", "Leche Entera 1L", "CAT002", "18.00", "28.00", 15, map[string]int64{"SUC001": 50, "SUC002": 40}},
		{"PROD003", "Arroz 1kg", "CAT003", "20.00", "35.00", 10, map[string]int64{"SUC001": 60, "SUC002": 45}},
		{"PROD004", "Papas Sabritas", "CAT004", "12.00", "22.00", 25, map[string]int64{"SUC001": 80, "SUC002": 60}},
		{"PROD005", "Jabon Zote", "CAT005", "8.00", "15.00", 10, map[string]int64{"SUC001": 40, "SUC002": 30}},
		{"PROD006", "Frijol Negro 1kg", "CAT003", "25.00", "40.00", 10, map[string]int64{"SUC001": 35, "SUC002": 28}},
		{"PROD007", "Agua Natural 1L", "CAT001", "5.00", "12.00", 30, map[string]int64{"SUC001": 150, "SUC002": 120}},
		{"PROD008", "Galletas Marias", "CAT004", "15.00", "25.00", 15, map[string]int64{"SUC001": 45, "SUC002": 35}},
	}
	for _, sp := range products {
		product := &entity.Product{
			ID:            uuid.New().String(),
			TenantID:      tenantID,
			Code:          sp.code,
			Name:          sp.name,
			CategoryCode:  sp.categoryCode,
			PurchasePrice: decimal.RequireFromString(sp.purchasePrice),
			SalePrice:     decimal.RequireFromString(sp.salePrice),
			MinStock:      sp.minStock,
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := p.productRepo.Create(product); err != nil {
			return err
		}
		for branchCode, qty := range sp.stock {
			err := p.stockRepo.Upsert(&entity.BranchStock{
				TenantID:   tenantID,
				ProductID:  product.ID,
				BranchCode: branchCode,
				Quantity:   qty,
				UpdatedAt:  now,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Provisioner) seedEmployees(tenantID string) error {
	count, err := p.employeeRepo.CountByTenant(tenantID)
	if err != nil || count > 0 {
		return err
	}
	now := time.Now()
	employees := []*entity.Employee{
		{Code: "EMP001", Name: "Juan Perez", Role: "Cajero", BranchCode: "SUC001", Phone: "555-1001", Salary: decimal.NewFromInt(8000)},
		{Code: "EMP002", Name: "Maria Garcia", Role: "Gerente", BranchCode: "SUC001", Phone: "555-1002", Salary: decimal.NewFromInt(15000)},
		{Code: "EMP003", Name: "Carlos Lopez", Role: "Cajero", BranchCode: "SUC002", Phone: "555-1003", Salary: decimal.NewFromInt(8000)},
	}
	for _, e := range employees {
		e.ID = uuid.New().String()
		e.TenantID = tenantID
		e.Active = true
		e.CreatedAt = now
		e.UpdatedAt = now
		if err := p.employeeRepo.Create(e); err != nil {
			return err
		}
	}
	return nil
}

func (p *Provisioner) seedSuppliers(tenantID string) error {
	count, err := p.supplierRepo.CountByTenant(tenantID)
	if err != nil || count > 0 {
		return err
	}
	now := time.Now()
	suppliers := []*entity.Supplier{
		{Code: "PROV001", Name: "Distribuidora del Norte", Contact: "Luis Ramirez", Phone: "555-2001", Email: "norte@dist.com"},
		{Code: "PROV002", Name: "Abarrotes Mayoreo SA", Contact: "Ana Torres", Phone: "555-2002", Email: "mayoreo@abr.com"},
	}
	for _, s := range suppliers {
		s.ID = uuid.New().String()
		s.TenantID = tenantID
		s.Active = true
		s.CreatedAt = now
		s.UpdatedAt = now
		if err := p.supplierRepo.Create(s); err != nil {
			return err
		}
	}
	return nil
}
