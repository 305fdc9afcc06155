package dto

import "github.com/shopspring/decimal"

// DashboardResponse agregado del dashboard para una sucursal.
type DashboardResponse struct {
	TotalProducts  int64              `json:"totalProductos"`
	TotalEmployees int64              `json:"totalEmpleados"`
	StockTotal     int64              `json:"stockTotal"`
	LowStock       []LowStockResponse `json:"bajoStock"`
	SalesToday     int64              `json:"ventasHoy"`
	RevenueToday   decimal.Decimal    `json:"totalVendidoHoy"`
	LastSales      []SaleResponse     `json:"ultimasVentas"`
}
