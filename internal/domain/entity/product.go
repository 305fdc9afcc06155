package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda (multi-sucursal).
// Code es único por tenant. El stock se mantiene por sucursal en BranchStock.
// Nunca se borra físicamente: Active=false es el borrado lógico.
type Product struct {
	ID            string
	TenantID      string
	Code          string // PROD001, PROD002...
	Name          string
	CategoryCode  string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	MinStock      int64
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BranchStock existencias de un producto en una sucursal (entero no negativo).
type BranchStock struct {
	TenantID   string
	ProductID  string
	BranchCode string
	Quantity   int64
	UpdatedAt  time.Time
}
