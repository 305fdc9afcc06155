package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/application/purchases"
)

// PurchaseHandler maneja las peticiones HTTP de compras a proveedor.
type PurchaseHandler struct {
	createUC      *purchases.CreatePurchaseUseCase
	queryUC       *purchases.QueryUseCase
	defaultBranch string
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(createUC *purchases.CreatePurchaseUseCase, queryUC *purchases.QueryUseCase, defaultBranch string) *PurchaseHandler {
	return &PurchaseHandler{createUC: createUC, queryUC: queryUC, defaultBranch: defaultBranch}
}

// Create godoc
// @Summary      Registrar compra a proveedor
// @Description  Incrementa stock por sucursal y registra movimientos ENTRADA/COMPRA de forma atómica.
// @Tags         compras
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "Compra a registrar"
// @Success      201   {object}  dto.CreatePurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/compras [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	if in.BranchCode == "" {
		in.BranchCode = h.defaultBranch
	}
	out, err := h.createUC.Execute(c.Context(), GetTenantID(c), GetUsername(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar compras de una sucursal
// @Tags         compras
// @Produce      json
// @Param        sucursal  query  string  false  "Código de sucursal"  default(SUC001)
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/compras [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	branchCode := c.Query("sucursal", h.defaultBranch)
	out, err := h.queryUC.ListByBranch(GetTenantID(c), branchCode)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetDetail godoc
// @Summary      Detalle de una compra con sus líneas
// @Tags         compras
// @Produce      json
// @Param        id  path  string  true  "ID de la compra"
// @Success      200  {object}  dto.PurchaseDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/{id} [get]
func (h *PurchaseHandler) GetDetail(c *fiber.Ctx) error {
	out, err := h.queryUC.GetDetail(GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Compra no encontrada"})
	}
	return c.JSON(out)
}
