package entity

import "time"

// Supplier proveedor de mercancía. Borrado lógico con Active=false.
type Supplier struct {
	ID        string
	TenantID  string
	Code      string // PROV001, PROV002...
	Name      string
	Contact   string
	Phone     string
	Email     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
