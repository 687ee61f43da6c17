package http

import (
	"github.com/nicklcsdev/inventario-api/internal/application/dto"
	"github.com/nicklcsdev/inventario-api/internal/application/inventory"
	"github.com/nicklcsdev/inventario-api/internal/application/usecase"
	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
)

func toEmpresaResponse(e *entity.Empresa) dto.EmpresaResponse {
	return dto.EmpresaResponse{
		NIT:       e.NIT,
		Nombre:    e.Nombre,
		Direccion: e.Direccion,
		Telefono:  e.Telefono,
	}
}

func toEmpresaList(list []*entity.Empresa) []dto.EmpresaResponse {
	out := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmpresaResponse(e))
	}
	return out
}

func toProductoResponse(p *entity.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:              p.ID,
		Codigo:          p.Codigo,
		Nombre:          p.Nombre,
		Caracteristicas: p.Caracteristicas,
		EmpresaNIT:      p.EmpresaNIT,
		Precios:         p.Precios,
	}
}

func toProductoList(list []*entity.Producto) []dto.ProductoResponse {
	out := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductoResponse(p))
	}
	return out
}

func toActualizarProductoInput(in dto.ActualizarProductoRequest) usecase.ActualizarProductoInput {
	return usecase.ActualizarProductoInput{
		Codigo:          in.Codigo,
		Nombre:          in.Nombre,
		Caracteristicas: in.Caracteristicas,
		EmpresaNIT:      in.EmpresaNIT,
		Precios:         in.Precios,
	}
}

func toCatalogoInput(in dto.CatalogoRequest) inventory.CatalogoInput {
	productos := make([]inventory.ProductoInput, 0, len(in.Productos))
	for _, p := range in.Productos {
		productos = append(productos, inventory.ProductoInput{
			Codigo:          p.Codigo,
			Nombre:          p.Nombre,
			Caracteristicas: p.Caracteristicas,
			Precios:         p.Precios,
		})
	}
	return inventory.CatalogoInput{
		Empresa: inventory.EmpresaInput{
			NIT:       in.Empresa.NIT,
			Nombre:    in.Empresa.Nombre,
			Direccion: in.Empresa.Direccion,
			Telefono:  in.Empresa.Telefono,
		},
		Productos: productos,
	}
}
