package pdf

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// LimpiarTexto elimina los caracteres que no existen en Latin-1 (emojis, CJK),
// que las fuentes estándar del PDF no pueden dibujar. Conserva tildes y ñ.
func LimpiarTexto(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, ok := charmap.ISO8859_1.EncodeRune(r); ok {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncar corta a max runas y agrega "..." si hubo corte.
func Truncar(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
