package entity

import "time"

// Branch representa una sucursal física con su propio stock.
type Branch struct {
	ID        string
	TenantID  string
	Code      string // SUC001, SUC002...
	Name      string
	Address   string
	Phone     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
