package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeEntrada = "ENTRADA" // incrementa stock
	MovementTypeSalida  = "SALIDA"  // decrementa stock
)

// Motivos de movimiento.
const (
	MovementReasonCompra = "COMPRA"
	MovementReasonVenta  = "VENTA"
)

// InventoryMovement registro de auditoría de cada cambio de stock.
// Solo se inserta; nunca se actualiza ni se borra.
type InventoryMovement struct {
	ID          string
	TenantID    string
	ProductCode string
	ProductName string
	BranchCode  string
	Type        string // ENTRADA | SALIDA
	Reason      string // COMPRA | VENTA
	Quantity    int64
	Date        time.Time
	ReferenceID string // ID de la venta o compra que originó el movimiento
	Operator    string
}
