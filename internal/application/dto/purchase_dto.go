package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest línea solicitada en una compra.
type PurchaseItemRequest struct {
	ProductCode string          `json:"codigo" validate:"required"`
	Quantity    int64           `json:"cantidad" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"precio_compra"`
}

// CreatePurchaseRequest entrada para registrar una compra a proveedor.
type CreatePurchaseRequest struct {
	BranchCode   string                `json:"sucursal_codigo" validate:"required"`
	SupplierCode string                `json:"proveedor_codigo" validate:"required"`
	Items        []PurchaseItemRequest `json:"items" validate:"required,min=1"`
}

// CreatePurchaseResponse confirmación de la compra registrada.
type CreatePurchaseResponse struct {
	Success    bool            `json:"success"`
	PurchaseID string          `json:"compra_id"`
	Total      decimal.Decimal `json:"total"`
}

// PurchaseResponse cabecera de compra en listados.
type PurchaseResponse struct {
	ID           string          `json:"_id"`
	Date         time.Time       `json:"fecha"`
	Total        decimal.Decimal `json:"total"`
	ItemsCount   int             `json:"items_count"`
	SupplierCode string          `json:"proveedor_codigo"`
	SupplierName string          `json:"proveedor_nombre"`
	BranchCode   string          `json:"sucursal_codigo"`
}

// PurchaseItemResponse línea de compra en el detalle.
type PurchaseItemResponse struct {
	ProductCode string          `json:"producto_codigo"`
	ProductName string          `json:"producto_nombre"`
	Quantity    int64           `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// PurchaseDetailResponse compra con sus líneas.
type PurchaseDetailResponse struct {
	ID           string                 `json:"_id"`
	Date         time.Time              `json:"fecha"`
	Total        decimal.Decimal        `json:"total"`
	ItemsCount   int                    `json:"items_count"`
	BranchCode   string                 `json:"sucursal_codigo"`
	SupplierCode string                 `json:"proveedor_codigo"`
	SupplierName string                 `json:"proveedor_nombre"`
	Operator     string                 `json:"usuario"`
	Items        []PurchaseItemResponse `json:"detalles"`
}
