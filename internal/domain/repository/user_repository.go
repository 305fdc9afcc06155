package repository

import "github.com/tiendashellx/pos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para las cuentas registradas (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	// GetByUsername busca sin distinguir mayúsculas/minúsculas.
	GetByUsername(username string) (*entity.User, error)
}
