package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrUsernameTaken         = errors.New("el usuario ya existe")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrInvalidActivationCode = errors.New("código de activación inválido o ya utilizado")
	ErrEmployeeNotFound      = errors.New("empleado no encontrado o inactivo")
	ErrEmployeeNoPIN         = errors.New("el empleado no tiene PIN de autorización configurado")
	ErrInvalidPIN            = errors.New("PIN de empleado incorrecto")
)

// InsufficientStockError stock insuficiente para una línea de venta.
// Lleva las cifras que la respuesta de error debe reportar.
type InsufficientStockError struct {
	ProductCode string
	ProductName string
	Available   int64
	Requested   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stock insuficiente para %s. Disponible: %d, Solicitado: %d",
		e.ProductName, e.Available, e.Requested)
}

// IsInsufficientStock indica si err (o su cadena) es un InsufficientStockError.
func IsInsufficientStock(err error) bool {
	var se *InsufficientStockError
	return errors.As(err, &se)
}
