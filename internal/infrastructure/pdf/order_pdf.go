// Package pdf genera la versión PDF del pedido de artículos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  Artikelbestellung                       Datum: 03.06.2024  │
//	│  Kunde                                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Article_No | Description | Menge                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Total Positionen                                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

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

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/order"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/clock"
)

// FileName nombre del PDF del pedido.
const FileName = "Article_Order.pdf"

// cantidad fija por posición, la misma que anuncia el correo
const unitsPerLine = 100

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ order.DocumentWriter = (*OrderPDFWriter)(nil)

// OrderPDFWriter implementa order.DocumentWriter usando Maroto v2.
type OrderPDFWriter struct {
	dir      string
	customer string
	clock    clock.Clock
}

// NewOrderPDFWriter construye el writer; el PDF se guarda en dir.
func NewOrderPDFWriter(dir, customer string, clk clock.Clock) *OrderPDFWriter {
	return &OrderPDFWriter{dir: dir, customer: customer, clock: clk}
}

// Write genera el PDF y lo guarda en dir/Article_Order.pdf.
func (w *OrderPDFWriter) Write(ctx context.Context, lines []order.Line) (string, error) {
	data, err := w.Render(ctx, lines)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("pdf: crear directorio: %w", err)
	}
	path := filepath.Join(w.dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("pdf: guardar archivo: %w", err)
	}
	return path, nil
}

// Render genera el PDF y devuelve sus bytes.
func (w *OrderPDFWriter) Render(_ context.Context, lines []order.Line) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(order.Subject, true).
		WithAuthor(w.customer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(w.headerRow())
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(len(lines)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (w *OrderPDFWriter) headerRow() core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(order.Subject, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(w.customer, props.Text{Size: 9, Top: 10, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Datum: "+w.clock.Now().Format("02.01.2006"), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Article_No", 2, align.Left),
		h("Description", 8, align.Left),
		h("Menge", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableRows(lines []order.Line) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(strconv.FormatInt(l.ArticleID, 10),
				props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(8).Add(text.New(l.Description,
				props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(unitsPerLine),
				props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalRow(n int) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(4).Add(text.New(fmt.Sprintf("Positionen: %d", n), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}
