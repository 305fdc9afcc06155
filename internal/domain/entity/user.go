package entity

import "time"

// User cuenta registrada de dueño de tienda. Cada usuario tiene su propio
// tenant (partición lógica de datos) identificado por TenantID; StoreName es
// el nombre derivado del username (tienda_<usuario>).
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Email        string
	Phone        string
	TenantID     string
	StoreName    string
	Active       bool
	CreatedAt    time.Time
}
