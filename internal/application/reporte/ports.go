package reporte

import (
	"context"
	"time"

	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
)

// NombreArchivo nombre con el que se descarga y se adjunta el reporte.
const NombreArchivo = "inventario.pdf"

// Inventario datos que se vuelcan en el PDF.
type Inventario struct {
	Empresa   string // nombre de la empresa, "N/A" si no se puede determinar
	Fecha     time.Time
	Productos []*entity.Producto
}

// InventarioPDFGenerator puerto de salida para renderizar el reporte.
type InventarioPDFGenerator interface {
	GenerarInventarioPDF(ctx context.Context, inv Inventario) ([]byte, error)
}

// Adjunto archivo adjunto de un correo.
type Adjunto struct {
	Nombre      string
	ContentType string
	Contenido   []byte
}

// Correo mensaje con el reporte. El cuerpo lo arma el adaptador a partir de estos datos.
type Correo struct {
	ID      string
	Para    string
	Asunto  string
	Fecha   time.Time
	Adjunto Adjunto
}

// EmailSender puerto de salida para el envío transaccional de correo.
type EmailSender interface {
	EnviarReporte(ctx context.Context, c Correo) error
}
