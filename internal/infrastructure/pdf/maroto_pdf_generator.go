// Package pdf genera el reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  INVENTARIO                      NICKLCSDEV - LITE THINKING │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPRESA          │ FECHA DE EMISIÓN │ TOTAL ITEMS          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Características | Precios       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Generado Automaticamente                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/nicklcsdev/inventario-api/internal/application/reporte"
	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
)

var _ reporte.InventarioPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorDark   = &props.Color{Red: 13, Green: 13, Blue: 13}
	colorAccent = &props.Color{Red: 26, Green: 26, Blue: 26}
	colorYellow = &props.Color{Red: 230, Green: 194, Blue: 0}
	colorMuted  = &props.Color{Red: 136, Green: 136, Blue: 136}
	colorText   = &props.Color{Red: 102, Green: 102, Blue: 102}
	colorRule   = &props.Color{Red: 229, Green: 229, Blue: 229}
)

// MaxCaracteristicas longitud visible de la columna de características.
const MaxCaracteristicas = 40

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa reporte.InventarioPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerarInventarioPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerarInventarioPDF(_ context.Context, inv reporte.Inventario) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor("NicklcsDev - Lite Thinking", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(2, props.Line{Color: colorYellow, Thickness: 1}))
	m.AddRows(infoRows(inv)...)
	m.AddRows(line.NewRow(8))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(inv.Productos)...)

	m.AddRows(line.NewRow(10))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Generado Automaticamente", props.Text{Size: 8, Align: align.Center, Color: colorMuted}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New("INVENTARIO", props.Text{Style: fontstyle.Bold, Size: 22, Color: colorDark, Top: 2}),
		),
		col.New(5).Add(
			text.New("NICKLCSDEV - LITE THINKING", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorYellow, Top: 8,
			}),
		),
	)
}

// infoRows: etiquetas y valores del encabezado (empresa, fecha, total).
func infoRows(inv reporte.Inventario) []core.Row {
	label := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Color: colorMuted, Top: 3}))
	}
	value := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Style: fontstyle.Bold, Size: 12, Top: 1}))
	}
	return []core.Row{
		row.New(8).Add(
			label("EMPRESA", 6),
			label(LimpiarTexto("FECHA DE EMISIÓN"), 3),
			label("TOTAL ITEMS", 3),
		),
		row.New(8).Add(
			value(LimpiarTexto(inv.Empresa), 6),
			value(inv.Fecha.Format("2006-01-02"), 3),
			value(fmt.Sprintf("%d", len(inv.Productos)), 3),
		),
	}
}

// tableHeaderRow: cabecera de la tabla con fondo oscuro.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(LimpiarTexto(label), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorYellow, Top: 3, Left: 2, Right: 2,
		}))
	}
	return row.New(10).Add(
		h("CÓDIGO", 2, align.Left),
		h("PRODUCTO", 4, align.Left),
		h("CARACTERÍSTICAS", 3, align.Left),
		h("PRECIOS", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorAccent})
}

// tableRows: una fila por producto más una línea separadora.
func tableRows(productos []*entity.Producto) []core.Row {
	result := make([]core.Row, 0, len(productos)*2)
	for _, p := range productos {
		result = append(result,
			row.New(9).Add(
				col.New(2).Add(text.New(LimpiarTexto(p.Codigo), props.Text{Size: 9, Color: colorText, Top: 2, Left: 2})),
				col.New(4).Add(text.New(LimpiarTexto(p.Nombre), props.Text{Style: fontstyle.Bold, Size: 10, Top: 2, Left: 2})),
				col.New(3).Add(text.New(Truncar(LimpiarTexto(p.Caracteristicas), MaxCaracteristicas), props.Text{Size: 9, Color: colorText, Top: 2, Left: 2})),
				col.New(3).Add(text.New(FormatPrecios(p), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Right: 2})),
			),
			line.NewRow(1, props.Line{Color: colorRule, Thickness: 0.3}),
		)
	}
	return result
}

// FormatPrecios "COP 15,000 / USD 3.75", "N/A" sin precios.
func FormatPrecios(p *entity.Producto) string {
	monedas := p.Monedas()
	if len(monedas) == 0 {
		return "N/A"
	}
	parts := make([]string, 0, len(monedas))
	for _, m := range monedas {
		parts = append(parts, m+" "+formatMonto(p.Precios[m].StringFixed(2)))
	}
	return strings.Join(parts, " / ")
}

// formatMonto agrupa miles con coma y omite ".00".
func formatMonto(fixed string) string {
	intPart, frac, _ := strings.Cut(fixed, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	if frac != "" && frac != "00" {
		out += "." + frac
	}
	return out
}
