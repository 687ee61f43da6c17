package reporte

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nicklcsdev/inventario-api/internal/application/dto"
	"github.com/nicklcsdev/inventario-api/internal/application/usecase"
	"github.com/nicklcsdev/inventario-api/internal/domain"
	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
	"github.com/nicklcsdev/inventario-api/internal/domain/repository"
)

// Reporte PDF generado.
type Reporte struct {
	PDF     []byte
	Archivo string
	Items   int
}

// GenerarReporteUseCase arma el reporte de inventario en PDF, de todas las empresas o de una.
type GenerarReporteUseCase struct {
	empresas  repository.EmpresaRepository
	productos repository.ProductoRepository
	generator InventarioPDFGenerator
	now       func() time.Time
}

// NewGenerarReporteUseCase construye el caso de uso.
func NewGenerarReporteUseCase(
	empresas repository.EmpresaRepository,
	productos repository.ProductoRepository,
	generator InventarioPDFGenerator,
) *GenerarReporteUseCase {
	return &GenerarReporteUseCase{
		empresas:  empresas,
		productos: productos,
		generator: generator,
		now:       time.Now,
	}
}

// Execute con empresaNIT vacío incluye todos los productos y toma como encabezado la empresa del primero.
// Con empresaNIT falla con ResourceNotFoundError si la empresa no existe.
func (uc *GenerarReporteUseCase) Execute(ctx context.Context, empresaNIT string) (*Reporte, error) {
	inv, err := uc.inventario(ctx, strings.TrimSpace(empresaNIT))
	if err != nil {
		return nil, err
	}

	pdf, err := uc.generator.GenerarInventarioPDF(ctx, *inv)
	if err != nil {
		return nil, domain.NewInfrastructureError("error generando el reporte", err)
	}
	return &Reporte{PDF: pdf, Archivo: NombreArchivo, Items: len(inv.Productos)}, nil
}

func (uc *GenerarReporteUseCase) inventario(ctx context.Context, nit string) (*Inventario, error) {
	inv := &Inventario{Empresa: "N/A", Fecha: uc.now()}

	if nit != "" {
		empresa, err := uc.empresas.GetByNIT(ctx, nit)
		if err != nil {
			return nil, usecase.WrapError("error consultando empresa", err)
		}
		if empresa == nil {
			return nil, domain.NewNotFoundError(fmt.Sprintf("no existe una empresa con el NIT %s", nit))
		}
		inv.Empresa = empresa.Nombre
		if inv.Productos, err = uc.productos.ListByEmpresa(ctx, nit); err != nil {
			return nil, usecase.WrapError("error consultando productos", err)
		}
		return inv, nil
	}

	var err error
	if inv.Productos, err = uc.productos.ListAll(ctx); err != nil {
		return nil, usecase.WrapError("error consultando productos", err)
	}
	if len(inv.Productos) > 0 {
		empresa, err := uc.empresas.GetByNIT(ctx, inv.Productos[0].EmpresaNIT)
		if err != nil {
			return nil, usecase.WrapError("error consultando empresa", err)
		}
		if empresa != nil {
			inv.Empresa = empresa.Nombre
		}
	}
	if inv.Productos == nil {
		inv.Productos = []*entity.Producto{}
	}
	return inv, nil
}

// EnviarReporteEmailUseCase genera el reporte y lo envía como adjunto.
type EnviarReporteEmailUseCase struct {
	reporte *GenerarReporteUseCase
	sender  EmailSender
	now     func() time.Time
}

// NewEnviarReporteEmailUseCase construye el caso de uso. sender nil deja el envío deshabilitado.
func NewEnviarReporteEmailUseCase(reporte *GenerarReporteUseCase, sender EmailSender) *EnviarReporteEmailUseCase {
	return &EnviarReporteEmailUseCase{reporte: reporte, sender: sender, now: time.Now}
}

// Execute valida el destino antes de generar nada.
func (uc *EnviarReporteEmailUseCase) Execute(ctx context.Context, req dto.EnviarReporteRequest) (*dto.EnviarReporteResponse, error) {
	destino := strings.TrimSpace(req.Email)
	if destino == "" {
		return nil, domain.NewValidationError("el email es requerido", nil)
	}
	addr, err := mail.ParseAddress(destino)
	if err != nil {
		return nil, domain.NewValidationError("email inválido", err)
	}
	if uc.sender == nil {
		return nil, domain.NewInfrastructureError("el envío de correo no está configurado", nil)
	}

	rep, err := uc.reporte.Execute(ctx, req.Empresa)
	if err != nil {
		return nil, err
	}

	correo := Correo{
		ID:     uuid.NewString(),
		Para:   addr.Address,
		Asunto: "Reporte de Inventario - Lite Thinking",
		Fecha:  uc.now(),
		Adjunto: Adjunto{
			Nombre:      rep.Archivo,
			ContentType: "application/pdf",
			Contenido:   rep.PDF,
		},
	}
	if err := uc.sender.EnviarReporte(ctx, correo); err != nil {
		return nil, domain.NewInfrastructureError("error enviando el correo", err)
	}

	return &dto.EnviarReporteResponse{
		Message: fmt.Sprintf("Reporte enviado a %s", correo.Para),
		Destino: correo.Para,
		Archivo: rep.Archivo,
		Items:   rep.Items,
		EnvioID: correo.ID,
	}, nil
}
