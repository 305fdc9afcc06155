// Package pdf implementa la generación del ticket de venta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  N° Venta + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUCURSAL + Operador + Empleado que autorizó                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tiendashellx/pos-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa sales.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceipt genera el ticket de la venta y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(
	_ context.Context,
	sale *entity.Sale,
	items []*entity.SaleItem,
	storeName string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ticket de Venta", true).
		WithAuthor(storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale, storeName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(saleInfoRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, item := range items {
		m.AddRows(tableItemRow(item))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y N° de venta + fecha (der).
func headerRow(sale *entity.Sale, storeName string) core.Row {
	fecha := sale.Date.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("TICKET DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Venta: "+sale.ID, props.Text{
				Size: 8, Align: align.Right, Top: 8,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// saleInfoRow: sucursal, operador y empleado que autorizó (si aplica).
func saleInfoRow(sale *entity.Sale) core.Row {
	authorized := "Sin autorización de empleado"
	if sale.EmployeeCode != "" {
		authorized = fmt.Sprintf("Autorizó: %s (%s)", sale.EmployeeName, sale.EmployeeCode)
	}
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Sucursal: "+sale.BranchCode, props.Text{Size: 9, Top: 1}),
			text.New("Atendió: "+sale.Operator, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
		col.New(6).Add(
			text.New(authorized, props.Text{Size: 8, Top: 1, Align: align.Right, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(7).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		col.New(1).Add(text.New("Cant", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1.5, Align: align.Center})),
		col.New(6).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1.5})),
		col.New(2).Add(text.New("P.Unit", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1.5, Align: align.Right})),
		col.New(3).Add(text.New("Subtotal", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1.5, Align: align.Right})),
	)
}

func tableItemRow(item *entity.SaleItem) core.Row {
	name := item.ProductName
	if name == "" {
		name = item.ProductCode
	}
	return row.New(6).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 8, Top: 1, Align: align.Center})),
		col.New(6).Add(text.New(name, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New("$"+item.UnitPrice.StringFixed(2), props.Text{Size: 8, Top: 1, Align: align.Right})),
		col.New(3).Add(text.New("$"+item.Subtotal.StringFixed(2), props.Text{Size: 8, Top: 1, Align: align.Right})),
	)
}

func totalRow(sale *entity.Sale) core.Row {
	return row.New(10).Add(
		col.New(9).Add(
			text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary}),
		),
		col.New(3).Add(
			text.New("$"+sale.Total.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2}),
		),
	)
}
