package dto

import "time"

// MovementResponse movimiento de inventario en listados.
type MovementResponse struct {
	ID          string    `json:"_id"`
	ProductCode string    `json:"producto_codigo"`
	ProductName string    `json:"producto_nombre"`
	BranchCode  string    `json:"sucursal_codigo"`
	Type        string    `json:"tipo"`
	Reason      string    `json:"motivo"`
	Quantity    int64     `json:"cantidad"`
	Date        time.Time `json:"fecha"`
	ReferenceID string    `json:"referencia_id"`
	Operator    string    `json:"usuario"`
}

// LowStockResponse producto con stock bajo para el dashboard.
type LowStockResponse struct {
	Code     string `json:"codigo"`
	Name     string `json:"nombre"`
	Stock    int64  `json:"stock"`
	MinStock int64  `json:"minimo"`
}
