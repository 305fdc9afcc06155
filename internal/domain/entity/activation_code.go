package entity

import "time"

// ActivationCode token de un solo uso requerido para completar el registro.
type ActivationCode struct {
	ID     string
	Code   string
	Used   bool
	UsedBy string
	UsedAt *time.Time
}
