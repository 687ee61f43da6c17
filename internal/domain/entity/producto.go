package entity

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var monedaPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// CodigoMaxLen longitud máxima del código de producto (columna productos.codigo).
const CodigoMaxLen = 50

// Producto es un ítem del catálogo de una empresa, identificado por su código único.
// Precios mapea código de moneda ISO-4217 (3 letras mayúsculas) a un monto no negativo.
// ID lo asigna el almacenamiento; 0 significa "aún no persistido".
type Producto struct {
	ID              int64
	Codigo          string
	Nombre          string
	Caracteristicas string
	EmpresaNIT      string
	Precios         map[string]decimal.Decimal
}

// NewProducto valida los invariantes y construye el producto. Los códigos de moneda se normalizan
// a mayúsculas; caracteristicas puede estar vacío. El mapa de precios se copia.
func NewProducto(codigo, nombre, caracteristicas, empresaNIT string, precios map[string]decimal.Decimal) (*Producto, error) {
	codigo = strings.TrimSpace(codigo)
	nombre = strings.TrimSpace(nombre)
	empresaNIT = strings.TrimSpace(empresaNIT)

	if codigo == "" {
		return nil, invalid("codigo", "el código del producto es obligatorio")
	}
	if err := maxLen("codigo", codigo, CodigoMaxLen); err != nil {
		return nil, err
	}
	if nombre == "" {
		return nil, invalid("nombre", "el nombre del producto es obligatorio")
	}
	if err := maxLen("nombre", nombre, NombreMaxLen); err != nil {
		return nil, err
	}
	if empresaNIT == "" {
		return nil, invalid("empresa_nit", "todo producto debe estar asociado a una empresa (NIT)")
	}
	if err := maxLen("empresa_nit", empresaNIT, NITMaxLen); err != nil {
		return nil, err
	}
	if len(precios) == 0 {
		return nil, invalid("precios", "el producto debe tener al menos un precio asignado")
	}

	normalizados := make(map[string]decimal.Decimal, len(precios))
	for moneda, monto := range precios {
		m := normalizarMoneda(moneda)
		if !monedaPattern.MatchString(m) {
			return nil, invalid("precios", fmt.Sprintf("código de moneda inválido: %q (se esperan 3 letras)", moneda))
		}
		if monto.IsNegative() {
			return nil, invalid("precios", fmt.Sprintf("el precio en %s no puede ser negativo", m))
		}
		if _, dup := normalizados[m]; dup {
			return nil, invalid("precios", fmt.Sprintf("moneda repetida: %s", m))
		}
		normalizados[m] = monto
	}

	return &Producto{
		Codigo:          codigo,
		Nombre:          nombre,
		Caracteristicas: caracteristicas,
		EmpresaNIT:      empresaNIT,
		Precios:         normalizados,
	}, nil
}

// ObtenerPrecio devuelve el monto configurado para la moneda. El código se recorta y pasa a mayúsculas
// igual que al construir el producto, así "usd" encuentra USD; una moneda sin precio es ValueError.
// No hay conversión implícita.
func (p *Producto) ObtenerPrecio(moneda string) (decimal.Decimal, error) {
	m := normalizarMoneda(moneda)
	precio, ok := p.Precios[m]
	if !ok {
		return decimal.Zero, invalid("precios", fmt.Sprintf("el producto no tiene precio configurado para %s", m))
	}
	return precio, nil
}

// Monedas devuelve los códigos de moneda ordenados alfabéticamente.
func (p *Producto) Monedas() []string {
	out := make([]string, 0, len(p.Precios))
	for m := range p.Precios {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Clone copia el producto, incluido el mapa de precios.
func (p *Producto) Clone() *Producto {
	c := *p
	c.Precios = make(map[string]decimal.Decimal, len(p.Precios))
	for k, v := range p.Precios {
		c.Precios[k] = v
	}
	return &c
}

func normalizarMoneda(m string) string {
	return strings.ToUpper(strings.TrimSpace(m))
}
