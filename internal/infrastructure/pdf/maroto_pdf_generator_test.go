package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicklcsdev/inventario-api/internal/application/reporte"
	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
	"github.com/nicklcsdev/inventario-api/internal/infrastructure/pdf"
)

func producto(t *testing.T, codigo string, precios map[string]decimal.Decimal) *entity.Producto {
	t.Helper()
	p, err := entity.NewProducto(codigo, "Taladro Percutor 🔧", "Motor de 800W con velocidad variable y mandril de 13mm", "890900161-2", precios)
	require.NoError(t, err)
	return p
}

func TestGenerarInventarioPDF(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator()
	inv := reporte.Inventario{
		Empresa: "Ferretería Industrial SAS",
		Fecha:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Productos: []*entity.Producto{
			producto(t, "FER-001", map[string]decimal.Decimal{"COP": decimal.NewFromInt(350000)}),
			producto(t, "FER-002", map[string]decimal.Decimal{"USD": decimal.RequireFromString("89.90"), "COP": decimal.NewFromInt(360000)}),
		},
	}

	out, err := gen.GenerarInventarioPDF(context.Background(), inv)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerarInventarioPDF_SinProductos(t *testing.T) {
	out, err := pdf.NewMarotoPDFGenerator().GenerarInventarioPDF(context.Background(), reporte.Inventario{
		Empresa: "N/A",
		Fecha:   time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFormatPrecios(t *testing.T) {
	p := producto(t, "X-1", map[string]decimal.Decimal{
		"USD": decimal.RequireFromString("3.75"),
		"COP": decimal.NewFromInt(15000),
		"EUR": decimal.NewFromInt(1234567),
	})
	assert.Equal(t, "COP 15,000 / EUR 1,234,567 / USD 3.75", pdf.FormatPrecios(p))

	assert.Equal(t, "N/A", pdf.FormatPrecios(&entity.Producto{}))
}

func TestLimpiarTexto(t *testing.T) {
	assert.Equal(t, "Pollo Campesino ", pdf.LimpiarTexto("Pollo Campesino 🐔"))
	assert.Equal(t, "Ñandú características", pdf.LimpiarTexto("Ñandú características"))
}

func TestTruncar(t *testing.T) {
	assert.Equal(t, "corto", pdf.Truncar("corto", 40))
	assert.Equal(t, "abcde...", pdf.Truncar("abcdefgh", 5))
	assert.Equal(t, "ñáéíó...", pdf.Truncar("ñáéíóú", 5))
}
