package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea solicitada en una venta.
type SaleItemRequest struct {
	ProductCode string          `json:"codigo" validate:"required"`
	Quantity    int64           `json:"cantidad" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"precio_venta"`
}

// CreateSaleRequest entrada para procesar una venta. EmployeeCode y
// EmployeePIN solo se exigen cuando la autorización está configurada.
type CreateSaleRequest struct {
	BranchCode   string            `json:"sucursal_codigo" validate:"required"`
	EmployeeCode string            `json:"empleado_codigo"`
	EmployeePIN  string            `json:"empleado_pin"`
	Items        []SaleItemRequest `json:"items" validate:"required,min=1"`
}

// CreateSaleResponse confirmación de la venta procesada.
type CreateSaleResponse struct {
	Success bool            `json:"success"`
	SaleID  string          `json:"venta_id"`
	Total   decimal.Decimal `json:"total"`
}

// SaleResponse cabecera de venta en listados.
type SaleResponse struct {
	ID         string          `json:"_id"`
	Date       time.Time       `json:"fecha"`
	Total      decimal.Decimal `json:"total"`
	ItemsCount int             `json:"items_count"`
	BranchCode string          `json:"sucursal_codigo"`
}

// SaleItemResponse línea de venta en el detalle.
type SaleItemResponse struct {
	ProductCode string          `json:"producto_codigo"`
	ProductName string          `json:"producto_nombre"`
	Quantity    int64           `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleDetailResponse venta con sus líneas.
type SaleDetailResponse struct {
	ID           string             `json:"_id"`
	Date         time.Time          `json:"fecha"`
	Total        decimal.Decimal    `json:"total"`
	ItemsCount   int                `json:"items_count"`
	BranchCode   string             `json:"sucursal_codigo"`
	Operator     string             `json:"usuario"`
	EmployeeCode string             `json:"empleado_codigo,omitempty"`
	EmployeeName string             `json:"empleado_nombre,omitempty"`
	Items        []SaleItemResponse `json:"detalles"`
}
