package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/application/sales"
)

// SaleHandler maneja las peticiones HTTP de ventas.
type SaleHandler struct {
	createUC      *sales.CreateSaleUseCase
	queryUC       *sales.QueryUseCase
	pdfUC         *sales.PDFUseCase
	defaultBranch string
}

// NewSaleHandler construye el handler.
func NewSaleHandler(createUC *sales.CreateSaleUseCase, queryUC *sales.QueryUseCase, pdfUC *sales.PDFUseCase, defaultBranch string) *SaleHandler {
	return &SaleHandler{createUC: createUC, queryUC: queryUC, pdfUC: pdfUC, defaultBranch: defaultBranch}
}

// Create godoc
// @Summary      Procesar venta
// @Description  Descuenta stock por sucursal y registra movimientos SALIDA/VENTA de forma atómica.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venta a procesar"
// @Success      201   {object}  dto.CreateSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
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
// @Summary      Listar ventas de una sucursal
// @Tags         ventas
// @Produce      json
// @Param        sucursal  query  string  false  "Código de sucursal"  default(SUC001)
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	branchCode := c.Query("sucursal", h.defaultBranch)
	out, err := h.queryUC.ListByBranch(GetTenantID(c), branchCode)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetDetail godoc
// @Summary      Detalle de una venta con sus líneas
// @Tags         ventas
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *SaleHandler) GetDetail(c *fiber.Ctx) error {
	out, err := h.queryUC.GetDetail(GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Venta no encontrada"})
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Ticket PDF de una venta
// @Tags         ventas
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/pdf [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.pdfUC.GenerateReceipt(c.Context(), GetTenantID(c), c.Params("id"), GetStoreName(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="ticket-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}
