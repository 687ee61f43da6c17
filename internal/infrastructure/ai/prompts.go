package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/nicklcsdev/inventario-api/internal/application/dto"
	"github.com/shopspring/decimal"
)

const descripcionPrompt = `Actúa como un experto en copywriting para e-commerce.
Crea una descripción corta, persuasiva y emocionante (máximo 40 palabras) para vender este producto:
Nombre: %s
Características: %s

IMPORTANTE: Responde SOLO con el texto plano. NO uses comillas en tu respuesta.`

const extraccionSystemPrompt = `Eres un asistente de inventario. Recibes el dictado de un usuario que describe un producto.
Devuelve ÚNICAMENTE un objeto JSON válido (sin markdown) con esta estructura exacta:
{
  "codigo": "<código del producto en mayúsculas, vacío si no se menciona>",
  "nombre": "<nombre corto del producto>",
  "caracteristicas": "<características mencionadas, separadas por coma>",
  "precios": {"<código ISO-4217 de 3 letras>": <monto numérico sin separadores de miles>}
}

Reglas:
- Si dicen "pesos" sin más, la moneda es COP. "Dólares" es USD.
- "250 mil" significa 250000.
- No inventes datos: deja el campo vacío ("" o {}) si no se menciona.`

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo envuelva en markdown.
// Captura desde el primer '{' hasta el último '}'.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON extrae el primer objeto JSON de un texto libre.
// Primero quita los bloques de código markdown y luego recurre a la regex.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}

// borradorPayload los montos pueden venir como número o string según el modelo.
type borradorPayload struct {
	Codigo          string                     `json:"codigo"`
	Nombre          string                     `json:"nombre"`
	Caracteristicas string                     `json:"caracteristicas"`
	Precios         map[string]decimal.Decimal `json:"precios"`
}

// parseBorrador interpreta la respuesta del modelo como borrador de producto.
func parseBorrador(raw string) (*dto.ProductoBorrador, error) {
	clean := extractJSON(raw)
	if clean == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", raw)
	}
	var p borradorPayload
	if err := json.Unmarshal([]byte(clean), &p); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON del borrador: %w (JSON extraído: %s)", err, clean)
	}
	if p.Precios == nil {
		p.Precios = map[string]decimal.Decimal{}
	}
	return &dto.ProductoBorrador{
		Codigo:          p.Codigo,
		Nombre:          p.Nombre,
		Caracteristicas: p.Caracteristicas,
		Precios:         p.Precios,
	}, nil
}
