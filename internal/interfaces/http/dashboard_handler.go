package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tiendashellx/pos-api/internal/application/analytics"
)

// DashboardHandler métricas agregadas de la tienda.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Produce      json
// @Param        sucursal  query  string  false  "Código de sucursal"  default(SUC001)
// @Success      200  {object}  dto.DashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetTenantID(c), c.Query("sucursal"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
