package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee empleado de la tienda. PINHash (bcrypt) habilita la autorización
// secundaria de ventas; vacío significa que el empleado no puede autorizar.
// Borrado lógico con Active=false.
type Employee struct {
	ID         string
	TenantID   string
	Code       string // EMP001, EMP002...
	Name       string
	Role       string // Cajero, Gerente...
	BranchCode string
	Phone      string
	Salary     decimal.Decimal
	PINHash    string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
