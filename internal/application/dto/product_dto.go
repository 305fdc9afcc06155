package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. InitialStock se aplica
// a todas las sucursales activas del tenant.
type CreateProductRequest struct {
	Code          string          `json:"codigo" validate:"required,min=1,max=50"`
	Name          string          `json:"nombre" validate:"required,min=1,max=200"`
	CategoryCode  string          `json:"categoria_codigo"`
	PurchasePrice decimal.Decimal `json:"precio_compra"`
	SalePrice     decimal.Decimal `json:"precio_venta"`
	InitialStock  int64           `json:"stock_inicial"`
	MinStock      int64           `json:"stock_minimo"`
}

// UpdateProductRequest entrada para actualizar un producto. El stock no se
// edita aquí: cambia solo vía compras y ventas.
type UpdateProductRequest struct {
	Name          *string          `json:"nombre"`
	CategoryCode  *string          `json:"categoria_codigo"`
	PurchasePrice *decimal.Decimal `json:"precio_compra"`
	SalePrice     *decimal.Decimal `json:"precio_venta"`
	MinStock      *int64           `json:"stock_minimo"`
}

// ProductResponse producto proyectado para una sucursal: Stock es la
// existencia en la sucursal consultada y Category el nombre resuelto.
type ProductResponse struct {
	ID            string          `json:"_id"`
	Code          string          `json:"codigo"`
	Name          string          `json:"nombre"`
	Category      string          `json:"categoria"`
	CategoryCode  string          `json:"categoria_codigo"`
	PurchasePrice decimal.Decimal `json:"precio_compra"`
	SalePrice     decimal.Decimal `json:"precio_venta"`
	Stock         int64           `json:"stock"`
	MinStock      int64           `json:"stock_minimo"`
}
