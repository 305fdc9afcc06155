package entity

import "time"

// Category categoría de productos (Bebidas, Lácteos, Abarrotes...).
type Category struct {
	ID          string
	TenantID    string
	Code        string // CAT001, CAT002...
	Name        string
	Description string
	CreatedAt   time.Time
}
