package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/domain"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo de productos.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	stockRepo    repository.StockRepository
	categoryRepo repository.CategoryRepository
	branchRepo   repository.BranchRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	categoryRepo repository.CategoryRepository,
	branchRepo repository.BranchRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		stockRepo:    stockRepo,
		categoryRepo: categoryRepo,
		branchRepo:   branchRepo,
	}
}

// Create da de alta un producto y, si InitialStock > 0, inicializa su stock
// en todas las sucursales activas del tenant.
func (uc *ProductUseCase) Create(tenantID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.SalePrice.IsNegative() || in.PurchasePrice.IsNegative() || in.InitialStock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetByTenantAndCode(tenantID, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		Code:          in.Code,
		Name:          in.Name,
		CategoryCode:  in.CategoryCode,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		MinStock:      in.MinStock,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}

	if in.InitialStock > 0 {
		branches, err := uc.branchRepo.ListActiveByTenant(tenantID)
		if err != nil {
			return nil, err
		}
		for _, b := range branches {
			err := uc.stockRepo.Upsert(&entity.BranchStock{
				TenantID:   tenantID,
				ProductID:  product.ID,
				BranchCode: b.Code,
				Quantity:   in.InitialStock,
				UpdatedAt:  now,
			})
			if err != nil {
				return nil, err
			}
		}
	}

	resp := uc.toResponse(tenantID, product, "")
	resp.Stock = in.InitialStock
	return resp, nil
}

// List devuelve los productos activos del tenant con el stock de la sucursal
// indicada y el nombre de categoría resuelto.
func (uc *ProductUseCase) List(tenantID, branchCode string) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListActiveByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categoryNames(tenantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		stock, err := uc.stockRepo.Get(tenantID, p.ID, branchCode)
		if err != nil {
			return nil, err
		}
		items = append(items, dto.ProductResponse{
			ID:            p.ID,
			Code:          p.Code,
			Name:          p.Name,
			Category:      categories[p.CategoryCode],
			CategoryCode:  p.CategoryCode,
			PurchasePrice: p.PurchasePrice,
			SalePrice:     p.SalePrice,
			Stock:         stock.Quantity,
			MinStock:      p.MinStock,
		})
	}
	return items, nil
}

// GetByCode obtiene un producto por código con su stock en la sucursal.
func (uc *ProductUseCase) GetByCode(tenantID, code, branchCode string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByTenantAndCode(tenantID, code)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, nil
	}
	stock, err := uc.stockRepo.Get(tenantID, product.ID, branchCode)
	if err != nil {
		return nil, err
	}
	resp := uc.toResponse(tenantID, product, "")
	resp.Stock = stock.Quantity
	return resp, nil
}

// Update modifica nombre, categoría, precios o stock mínimo. El stock por
// sucursal no se edita aquí.
func (uc *ProductUseCase) Update(tenantID, code string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByTenantAndCode(tenantID, code)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.CategoryCode != nil {
		product.CategoryCode = *in.CategoryCode
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(tenantID, product, ""), nil
}

// Deactivate borra lógicamente un producto; su historial de ventas, compras
// y movimientos se conserva.
func (uc *ProductUseCase) Deactivate(tenantID, code string) error {
	product, err := uc.productRepo.GetByTenantAndCode(tenantID, code)
	if err != nil {
		return err
	}
	if product == nil || !product.Active {
		return domain.ErrNotFound
	}
	return uc.productRepo.Deactivate(tenantID, code)
}

func (uc *ProductUseCase) categoryNames(tenantID string) (map[string]string, error) {
	categories, err := uc.categoryRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.Code] = c.Name
	}
	return names, nil
}

func (uc *ProductUseCase) toResponse(tenantID string, p *entity.Product, categoryName string) *dto.ProductResponse {
	if categoryName == "" && p.CategoryCode != "" {
		if names, err := uc.categoryNames(tenantID); err == nil {
			categoryName = names[p.CategoryCode]
		}
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Category:      categoryName,
		CategoryCode:  p.CategoryCode,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Stock:         0,
		MinStock:      p.MinStock,
	}
}
