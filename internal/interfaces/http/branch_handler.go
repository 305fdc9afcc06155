package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/application/usecase"
)

// BranchHandler maneja las peticiones HTTP de sucursales.
type BranchHandler struct {
	uc *usecase.BranchUseCase
}

// NewBranchHandler construye el handler.
func NewBranchHandler(uc *usecase.BranchUseCase) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// List godoc
// @Summary      Listar sucursales
// @Tags         sucursales
// @Produce      json
// @Success      200  {array}  dto.BranchResponse
// @Router       /api/sucursales [get]
func (h *BranchHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetTenantID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear sucursal
// @Tags         sucursales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBranchRequest  true  "Datos de la sucursal"
// @Success      201   {object}  dto.BranchResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sucursales [post]
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	out, err := h.uc.Create(GetTenantID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar sucursal
// @Tags         sucursales
// @Accept       json
// @Produce      json
// @Param        codigo  path  string  true  "Código de la sucursal"
// @Param        body    body  dto.UpdateBranchRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.BranchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sucursales/{codigo} [put]
func (h *BranchHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	out, err := h.uc.Update(GetTenantID(c), c.Params("codigo"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Sucursal no encontrada"})
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar sucursal
// @Tags         sucursales
// @Produce      json
// @Param        codigo  path  string  true  "Código de la sucursal"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sucursales/{codigo} [delete]
func (h *BranchHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(GetTenantID(c), c.Params("codigo")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "Sucursal desactivada"})
}
