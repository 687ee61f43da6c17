package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nicklcsdev/inventario-api/internal/application/inventory"
)

// Tasas fijas con las que se derivan los precios en USD y EUR del precio en COP.
var (
	tasaUSD = decimal.NewFromInt(4150)
	tasaEUR = decimal.NewFromInt(4400)
)

type productoDemo struct {
	nombre          string
	caracteristicas string
	precioCOP       int64
}

type empresaDemo struct {
	nit       string
	nombre    string
	rubro     string
	direccion string
	telefono  string
	productos []productoDemo
}

var dataset = []empresaDemo{
	{
		nit:       "900847362-4",
		nombre:    "NicklcsDev S.A.S",
		rubro:     "Tecnología",
		direccion: "Calle 93 # 11-20, Bogotá",
		telefono:  "6013456789",
		productos: []productoDemo{
			{"iPhone 15 Pro Max", "256GB, Titanio Natural, Chip A17 Pro", 5600000},
			{"MacBook Air M2", "13 pulgadas, 8GB RAM, 256GB SSD, Gris Espacial", 4800000},
			{"Samsung Galaxy S24 Ultra", "AI Phone, 512GB, Titanium Grey", 5200000},
			{"Monitor Dell UltraSharp", "27 pulgadas, USB-C Hub, 4K UHD", 1850000},
			{"Mouse Logitech MX Master 3S", "Ergonómico, Silencioso, Bluetooth", 450000},
			{"Teclado Mecánico Keychron K2", "Wireless, Switch Brown, RGB", 520000},
			{"iPad Air 5ta Gen", "64GB, Wi-Fi, Chip M1, Azul", 2900000},
			{"Auriculares Sony WH-1000XM5", "Cancelación de ruido, 30h batería", 1400000},
			{"Servidor HP ProLiant DL380", "Gen10, Intel Xeon Silver, 32GB RAM", 12500000},
			{"Licencia Windows 11 Pro", "OEM, 64 bits, entrega digital", 650000},
		},
	},
	{
		nit:       "860002518-1",
		nombre:    "Avícola Santa Reyes S.A.",
		rubro:     "Alimentos",
		direccion: "Calle 45 # 27-20, Bucaramanga",
		telefono:  "6017654321",
		productos: []productoDemo{
			{"Huevo Rojo AA", "Cartón x 30 unidades, tamaño extra", 22000},
			{"Huevo Jumbo", "Bandeja x 12 unidades, doble yema", 14500},
			{"Gallina Campesina", "Canal entera, refrigerada, peso variable", 28000},
			{"Pollo Entero Gigante", "Sin vísceras, marinado, 4.5 lbs", 32000},
			{"Pechuga de Pollo", "Sin piel ni hueso, bandeja x 1kg", 24500},
			{"Muslos de Pollo", "Bandeja x 4 unidades, frescos", 16000},
			{"Alas de Pollo", "Corte tipo colombina, paquete x 500g", 14000},
			{"Nuggets de Pollo", "Precocidos, bolsa x 1kg", 21000},
			{"Salchicha de Pollo", "Paquete x 20 unidades, tipo manguera", 18000},
			{"Abono Orgánico Gallinaza", "Saco x 40kg, compostado", 25000},
		},
	},
	{
		nit:       "890900161-2",
		nombre:    "Ferretería Industrial SAS",
		rubro:     "Construcción",
		direccion: "Carrera 52 # 14-20, Medellín",
		telefono:  "6043219876",
		productos: []productoDemo{
			{"Cemento Gris Argos", "Saco 50kg, Uso General", 32500},
			{"Varilla Corrugada 1/2", "6 metros, Sismorresistente W60", 28000},
			{"Ladrillo Tolete Común", "Unidad, arcilla cocida", 1200},
			{"Taladro Percutor DeWalt", "1/2 pulgada, 700W, Industrial", 450000},
			{"Pulidora Black&Decker", "4-1/2 pulgadas, 820W", 190000},
			{"Juego Llaves Mixtas Stanley", "12 Piezas, Cromo Vanadio", 125000},
			{"Pintura Vinilo Tipo 1", "Cuñete 5 Galones, Blanco", 380000},
			{"Estuco Plástico", "Galón, Interior/Exterior", 45000},
			{"Tubo PVC Sanitario 4p", "Pavco, tramo x 6 metros", 85000},
			{"Casco de Seguridad", "Dielectrico, con rachet, blanco", 25000},
		},
	},
}

// catalogo convierte una empresa demo en la entrada del caso de uso de importación.
// Código: prefijo del rubro + últimos 4 caracteres del NIT + consecutivo (TEC-62-4-001).
func (e empresaDemo) catalogo() inventory.CatalogoInput {
	prefijo := strings.ToUpper(string([]rune(e.rubro)[:3]))
	sufijo := e.nit[len(e.nit)-4:]

	productos := make([]inventory.ProductoInput, 0, len(e.productos))
	for i, p := range e.productos {
		cop := decimal.NewFromInt(p.precioCOP)
		productos = append(productos, inventory.ProductoInput{
			Codigo:          fmt.Sprintf("%s-%s-%03d", prefijo, sufijo, i+1),
			Nombre:          p.nombre,
			Caracteristicas: p.caracteristicas,
			Precios: map[string]decimal.Decimal{
				"COP": cop,
				"USD": cop.Div(tasaUSD).Round(2),
				"EUR": cop.Div(tasaEUR).Round(2),
			},
		})
	}
	return inventory.CatalogoInput{
		Empresa: inventory.EmpresaInput{
			NIT:       e.nit,
			Nombre:    e.nombre,
			Direccion: e.direccion,
			Telefono:  e.telefono,
		},
		Productos: productos,
	}
}
