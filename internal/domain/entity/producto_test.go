package entity_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
)

func precios(kv ...any) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		m[kv[i].(string)] = decimal.NewFromInt(int64(kv[i+1].(int)))
	}
	return m
}

func TestNewProducto_ObtenerPrecio(t *testing.T) {
	p, err := entity.NewProducto("P1", "Mouse", "x", "900123456-1", precios("USD", 10))
	require.NoError(t, err)
	assert.Zero(t, p.ID)

	usd, err := p.ObtenerPrecio("USD")
	require.NoError(t, err)
	assert.True(t, usd.Equal(decimal.NewFromInt(10)))

	// la búsqueda normaliza el código
	usd, err = p.ObtenerPrecio(" usd ")
	require.NoError(t, err)
	assert.True(t, usd.Equal(decimal.NewFromInt(10)))

	_, err = p.ObtenerPrecio("COP")
	var ve *entity.ValueError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Msg, "COP")

	// normalizar no inventa precios: una moneda ausente falla en cualquier grafía
	_, err = p.ObtenerPrecio("eur")
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Msg, "EUR")
}

func TestNewProducto_CodigoEnElLimite(t *testing.T) {
	p, err := entity.NewProducto(strings.Repeat("C", entity.CodigoMaxLen), "Mouse", "", "900", precios("USD", 1))
	require.NoError(t, err)
	assert.Len(t, p.Codigo, entity.CodigoMaxLen)
}

func TestNewProducto_NormalizaMonedasYCopiaMapa(t *testing.T) {
	in := precios("cop", 1000, "Usd", 1)
	p, err := entity.NewProducto("P1", "Mouse", "", "900123456-1", in)
	require.NoError(t, err)

	assert.Equal(t, []string{"COP", "USD"}, p.Monedas())
	assert.Empty(t, p.Caracteristicas)

	in["EUR"] = decimal.NewFromInt(5)
	assert.Len(t, p.Precios, 2, "el producto no comparte el mapa del llamador")
}

func TestNewProducto_PrecioCeroPermitido(t *testing.T) {
	_, err := entity.NewProducto("GRATIS", "Muestra", "Multi\nlínea", "1-1", precios("COP", 0))
	assert.NoError(t, err)
}

func TestNewProducto_Invalido(t *testing.T) {
	neg := map[string]decimal.Decimal{"USD": decimal.NewFromInt(-1)}
	dup := map[string]decimal.Decimal{"usd": decimal.NewFromInt(1), "USD": decimal.NewFromInt(2)}

	cases := []struct {
		name    string
		codigo  string
		nombre  string
		nit     string
		precios map[string]decimal.Decimal
		field   string
	}{
		{"código vacío", " ", "Mouse", "900", precios("USD", 1), "codigo"},
		{"nombre vacío", "P1", "", "900", precios("USD", 1), "nombre"},
		{"sin empresa", "P1", "Mouse", "  ", precios("USD", 1), "empresa_nit"},
		{"precios nil", "P1", "Mouse", "900", nil, "precios"},
		{"precios vacío", "P1", "Mouse", "900", map[string]decimal.Decimal{}, "precios"},
		{"moneda de 2 letras", "P1", "Mouse", "900", precios("US", 1), "precios"},
		{"moneda numérica", "P1", "Mouse", "900", precios("123", 1), "precios"},
		{"monto negativo", "P1", "Mouse", "900", neg, "precios"},
		{"moneda repetida", "P1", "Mouse", "900", dup, "precios"},
		{"código de 51 caracteres", strings.Repeat("C", 51), "Mouse", "900", precios("USD", 1), "codigo"},
		{"nombre de 256 caracteres", "P1", strings.Repeat("m", 256), "900", precios("USD", 1), "nombre"},
		{"nit de 21 caracteres", "P1", "Mouse", strings.Repeat("9", 21), precios("USD", 1), "empresa_nit"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := entity.NewProducto(tc.codigo, tc.nombre, "", tc.nit, tc.precios)
			require.Error(t, err)
			assert.Nil(t, p)

			var ve *entity.ValueError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestProducto_Clone(t *testing.T) {
	p, err := entity.NewProducto("P1", "Mouse", "x", "900", precios("USD", 10))
	require.NoError(t, err)
	p.ID = 7

	c := p.Clone()
	assert.Equal(t, p, c)
	c.Precios["USD"] = decimal.NewFromInt(99)
	assert.True(t, p.Precios["USD"].Equal(decimal.NewFromInt(10)))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "Visitante@test.com", entity.NormalizeEmail("  Visitante@TEST.com "))
	assert.Equal(t, "sin-arroba", entity.NormalizeEmail("sin-arroba"))
}

func TestUser_Role(t *testing.T) {
	assert.Equal(t, entity.RoleAdmin, (&entity.User{IsAdmin: true}).Role())
	assert.Equal(t, entity.RoleVisitante, (&entity.User{}).Role())
}
