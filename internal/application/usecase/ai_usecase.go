package usecase

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/nicklcsdev/inventario-api/internal/application/dto"
	"github.com/nicklcsdev/inventario-api/internal/application/ports"
	"github.com/nicklcsdev/inventario-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Timeouts de las llamadas externas. El dictado incluye transcripción más extracción.
const (
	descripcionTimeout = 10 * time.Second
	vozTimeout         = 30 * time.Second
)

// AIUseCase orquesta el asistente de IA: descripciones comerciales y alta de productos por voz.
// Ninguna operación persiste; el borrador por voz se confirma luego con CrearProducto.
type AIUseCase struct {
	llm ports.LLMService
	stt ports.Transcriber
}

// NewAIUseCase construye el caso de uso. stt puede ser nil si el proveedor no ofrece transcripción.
func NewAIUseCase(llm ports.LLMService, stt ports.Transcriber) *AIUseCase {
	return &AIUseCase{llm: llm, stt: stt}
}

// GenerarDescripcion valida la entrada y delega al LLM con un timeout de 10 s.
func (uc *AIUseCase) GenerarDescripcion(ctx context.Context, req dto.DescripcionRequest) (*dto.DescripcionResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, domain.NewValidationError("falta nombre del producto", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, descripcionTimeout)
	defer cancel()

	texto, err := uc.llm.GenerarDescripcion(ctx, nombre, strings.TrimSpace(req.Caracteristicas))
	if err != nil {
		return nil, domain.NewInfrastructureError("error al consultar IA", err)
	}
	return &dto.DescripcionResponse{Descripcion: strings.Trim(strings.TrimSpace(texto), `"`)}, nil
}

// ProductoDesdeVoz transcribe el audio y extrae un borrador de producto.
// Los códigos de moneda del borrador se normalizan a mayúsculas; no se valida el producto completo.
func (uc *AIUseCase) ProductoDesdeVoz(ctx context.Context, audio []byte, filename string) (*dto.VozResponse, error) {
	if len(audio) == 0 {
		return nil, domain.NewValidationError("el archivo de audio está vacío", nil)
	}
	if uc.stt == nil {
		return nil, domain.NewInfrastructureError("transcripción de voz no disponible con el proveedor configurado", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, vozTimeout)
	defer cancel()

	texto, err := uc.stt.Transcribir(ctx, bytes.NewReader(audio), filename)
	if err != nil {
		return nil, domain.NewInfrastructureError("error transcribiendo audio", err)
	}
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return nil, domain.NewValidationError("no se detectó voz en el audio", nil)
	}

	borrador, err := uc.llm.ExtraerProducto(ctx, texto)
	if err != nil {
		return nil, domain.NewInfrastructureError("error interpretando el dictado", err)
	}

	precios := make(map[string]decimal.Decimal, len(borrador.Precios))
	for moneda, monto := range borrador.Precios {
		precios[strings.ToUpper(strings.TrimSpace(moneda))] = monto
	}
	borrador.Precios = precios
	borrador.Codigo = strings.ToUpper(strings.TrimSpace(borrador.Codigo))

	return &dto.VozResponse{Transcripcion: texto, Producto: *borrador}, nil
}
