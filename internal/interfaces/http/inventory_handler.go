package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/application/inventory"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
)

// InventoryHandler consultas del historial de movimientos y stock bajo.
type InventoryHandler struct {
	uc *inventory.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// ListMovements godoc
// @Summary      Movimientos de inventario recientes
// @Tags         inventario
// @Produce      json
// @Param        sucursal  query  string  false  "Código de sucursal"  default(SUC001)
// @Param        tipo      query  string  false  "ENTRADA o SALIDA"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventario [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	movementType := strings.ToUpper(c.Query("tipo"))
	if movementType != "" && movementType != entity.MovementTypeEntrada && movementType != entity.MovementTypeSalida {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Tipo de movimiento inválido"})
	}
	out, err := h.uc.ListMovements(GetTenantID(c), c.Query("sucursal"), movementType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos con stock en o bajo el mínimo
// @Tags         inventario
// @Produce      json
// @Param        sucursal  query  string  false  "Código de sucursal"  default(SUC001)
// @Success      200  {array}  dto.LowStockResponse
// @Router       /api/inventario/bajo-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context(), GetTenantID(c), c.Query("sucursal"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
