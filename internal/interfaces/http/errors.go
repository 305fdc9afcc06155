package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/domain"
)

// respondError traduce errores de dominio al cuerpo { "error": "<mensaje>" }
// con el status HTTP que corresponde.
func respondError(c *fiber.Ctx, err error) error {
	if domain.IsInsufficientStock(err) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Datos inválidos"})
	case errors.Is(err, domain.ErrInvalidActivationCode):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Código de activación inválido o ya usado"})
	case errors.Is(err, domain.ErrUsernameTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "El nombre de usuario ya existe"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "El código ya existe"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No encontrado"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Usuario o contraseña incorrectos"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "No autorizado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Cuenta deshabilitada"})
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Empleado no encontrado o inactivo"})
	case errors.Is(err, domain.ErrEmployeeNoPIN):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "El empleado no tiene PIN registrado"})
	case errors.Is(err, domain.ErrInvalidPIN):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "PIN incorrecto"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
}
