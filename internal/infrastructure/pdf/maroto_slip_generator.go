// Package pdf genera el comprobante imprimible de una orden ("order slip").
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Tienda + leyenda │ N° orden + fecha  │
//	│  ───────────────────────────────────────────  │
//	│  CLIENTE: nombre / email / sesión             │
//	│  ───────────────────────────────────────────  │
//	│  TABLA: Producto | Cant | Precio | Subtotal   │
//	│  ───────────────────────────────────────────  │
//	│  TOTAL                                        │
//	│  ───────────────────────────────────────────  │
//	│  QR (ID de la orden) + huella + instrucciones │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/campus-store/internal/application/slip"
	"github.com/jhoicas/campus-store/internal/domain/entity"
	"github.com/jhoicas/campus-store/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorPending = &props.Color{Red: 190, Green: 120, Blue: 0}
	colorDone    = &props.Color{Red: 0, Green: 130, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ slip.PDFGenerator = (*MarotoSlipGenerator)(nil)

// MarotoSlipGenerator implementa slip.PDFGenerator usando Maroto v2.
type MarotoSlipGenerator struct {
	storeName string
}

// NewMarotoSlipGenerator construye el generador. storeName aparece en el encabezado.
func NewMarotoSlipGenerator(storeName string) *MarotoSlipGenerator {
	if storeName == "" {
		storeName = "Polytechnic Campus Store"
	}
	return &MarotoSlipGenerator{storeName: storeName}
}

// GenerateSlipPDF genera el PDF y devuelve sus bytes.
func (g *MarotoSlipGenerator) GenerateSlipPDF(ctx context.Context, order entity.Order, fingerprint string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Order Slip "+order.ID, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(order.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(order, fingerprint)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoSlipGenerator) headerRow(o entity.Order) core.Row {
	created := o.CreatedAt()
	date, clock := "-", "-"
	if !created.IsZero() {
		date = created.Format("02 Jan 2006")
		clock = created.Format("15:04 MST")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("ORDER SLIP - present at the store counter", props.Text{
				Size: 7, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(o.ID, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1,
			}),
			text.New("Date: "+date, props.Text{
				Size: 7, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Time: "+clock, props.Text{
				Size: 7, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

func customerRow(o entity.Order) core.Row {
	account := "Guest checkout"
	if o.IsSignedIn {
		account = "Signed-in customer"
	}
	statusColor := colorPending
	if o.IsCompleted() {
		statusColor = colorDone
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("CUSTOMER", props.Text{
				Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1,
			}),
			text.New(o.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 5,
			}),
			text.New(fmt.Sprintf("Email: %s   |   %s", nonEmpty(o.CustomerEmail, "-"), account), props.Text{
				Size: 7, Top: 11, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("STATUS", props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(o.Status, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 5, Color: statusColor,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Item", 6, align.Left),
		h("Qty", 1, align.Center),
		h("Price", 2, align.Right),
		h("Subtotal", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// itemRows: una fila por línea de la orden.
func itemRows(items []entity.CartLineItem) []core.Row {
	if len(items) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("No items", props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
		))}
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.Itoa(it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(money.FormatCode(it.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(money.FormatCode(it.Subtotal()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func totalRow(o entity.Order) core.Row {
	return row.New(9).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(money.FormatCode(o.Total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// footerRows: QR con el ID de la orden, huella e instrucciones.
func footerRows(o entity.Order, fingerprint string) []core.Row {
	return []core.Row{
		row.New(36).Add(
			col.New(4).Add(code.NewQr(o.ID, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Verification code", props.Text{
					Style: fontstyle.Bold, Size: 8, Top: 3, Left: 3, Color: colorPrimary,
				}),
				text.New(nonEmpty(fingerprint, "-"), props.Text{
					Style: fontstyle.Bold, Size: 11, Top: 8, Left: 3,
				}),
				text.New("Staff scan the QR code or enter the order ID\nto verify this slip before handing over the items.", props.Text{
					Size: 7, Top: 17, Left: 3, Color: colorGray,
				}),
			),
		),
		row.New(8).Add(col.New(12).Add(
			text.New("This slip is not a payment receipt. Payment is made at the store.", props.Text{
				Size: 6.5, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
