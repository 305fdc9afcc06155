package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/pkg/session"
)

// Locals keys de la sesión en Fiber.
const (
	LocalUsername  = "username"
	LocalTenantID  = "tenant_id"
	LocalStoreName = "store_name"
	LocalEmail     = "email"
)

// SessionMiddleware valida la cookie de sesión firmada y expone el payload
// en c.Locals. Sin cookie válida no hay acceso: toda ruta protegida queda
// particionada por el tenant de la sesión.
func SessionMiddleware(secret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "No autenticado"})
		}
		payload, err := session.Parse(secret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Sesión inválida o expirada"})
		}
		c.Locals(LocalUsername, payload.Username)
		c.Locals(LocalTenantID, payload.TenantID)
		c.Locals(LocalStoreName, payload.StoreName)
		c.Locals(LocalEmail, payload.Email)
		return c.Next()
	}
}

// GetUsername devuelve el username de la sesión (después del middleware).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// GetTenantID devuelve el tenant de la sesión (después del middleware).
func GetTenantID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalTenantID).(string)
	return s
}

// GetStoreName devuelve el nombre de la tienda de la sesión.
func GetStoreName(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalStoreName).(string)
	return s
}

// GetEmail devuelve el email de la sesión.
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}
