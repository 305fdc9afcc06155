package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase cabecera de una compra a proveedor. Inmutable después de creada.
type Purchase struct {
	ID           string
	TenantID     string
	BranchCode   string
	SupplierCode string
	SupplierName string
	Date         time.Time
	Total        decimal.Decimal
	ItemsCount   int
	Operator     string
}

// PurchaseItem línea de compra con snapshot del producto y del precio. Inmutable.
type PurchaseItem struct {
	ID          string
	TenantID    string
	PurchaseID  string
	ProductCode string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
