package ai

import (
	"context"
	"strings"
	"time"

	"github.com/nicklcsdev/inventario-api/internal/application/dto"
	"github.com/nicklcsdev/inventario-api/internal/application/ports"
	gocache "github.com/patrickmn/go-cache"
)

var _ ports.LLMService = (*CachedLLM)(nil)

// CachedLLM decora un LLMService guardando las descripciones generadas por (nombre, caracteristicas).
// La extracción de dictados no se cachea.
type CachedLLM struct {
	next  ports.LLMService
	cache *gocache.Cache
}

// NewCachedLLM envuelve next con una caché en memoria de duración ttl.
func NewCachedLLM(next ports.LLMService, ttl time.Duration) *CachedLLM {
	return &CachedLLM{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *CachedLLM) GenerarDescripcion(ctx context.Context, nombre, caracteristicas string) (string, error) {
	key := strings.ToLower(nombre) + "\x00" + strings.ToLower(caracteristicas)
	if v, ok := c.cache.Get(key); ok {
		return v.(string), nil
	}
	texto, err := c.next.GenerarDescripcion(ctx, nombre, caracteristicas)
	if err != nil {
		return "", err
	}
	c.cache.SetDefault(key, texto)
	return texto, nil
}

func (c *CachedLLM) ExtraerProducto(ctx context.Context, texto string) (*dto.ProductoBorrador, error) {
	return c.next.ExtraerProducto(ctx, texto)
}
