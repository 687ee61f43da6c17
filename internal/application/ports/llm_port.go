package ports

import (
	"context"
	"errors"
	"io"

	"github.com/nicklcsdev/inventario-api/internal/application/dto"
)

// ErrAINoConfigurada el proveedor de IA no tiene credenciales; los adaptadores la envuelven.
var ErrAINoConfigurada = errors.New("servicio de IA no configurado")

// DescripcionGenerator genera el texto comercial de un producto.
type DescripcionGenerator interface {
	GenerarDescripcion(ctx context.Context, nombre, caracteristicas string) (string, error)
}

// ProductoExtractor convierte un texto libre (ej. un dictado) en un borrador de producto.
type ProductoExtractor interface {
	ExtraerProducto(ctx context.Context, texto string) (*dto.ProductoBorrador, error)
}

// LLMService define el puerto de salida para los modelos de lenguaje.
// Cualquier adaptador (Groq, Anthropic, mock) debe implementarlo; el contexto debe llevar timeout.
type LLMService interface {
	DescripcionGenerator
	ProductoExtractor
}

// Transcriber convierte audio a texto (speech-to-text).
type Transcriber interface {
	Transcribir(ctx context.Context, audio io.Reader, filename string) (string, error)
}
