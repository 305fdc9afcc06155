package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale cabecera de una venta. Inmutable después de creada.
// EmployeeCode/EmployeeName quedan en blanco si la venta no requirió
// autorización de empleado.
type Sale struct {
	ID           string
	TenantID     string
	BranchCode   string
	Date         time.Time
	Total        decimal.Decimal
	ItemsCount   int
	Operator     string // username de la sesión
	EmployeeCode string
	EmployeeName string
}

// SaleItem línea de venta con snapshot del producto y del precio. Inmutable.
type SaleItem struct {
	ID          string
	TenantID    string
	SaleID      string
	ProductCode string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
