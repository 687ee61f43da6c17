package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicklcsdev/inventario-api/internal/application/dto"
)

type countingLLM struct{ calls int }

func (c *countingLLM) GenerarDescripcion(context.Context, string, string) (string, error) {
	c.calls++
	return "descripción", nil
}

func (c *countingLLM) ExtraerProducto(context.Context, string) (*dto.ProductoBorrador, error) {
	c.calls++
	return &dto.ProductoBorrador{}, nil
}

func TestCachedLLM(t *testing.T) {
	inner := &countingLLM{}
	c := NewCachedLLM(inner, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d, err := c.GenerarDescripcion(ctx, "Mouse", "USB")
		require.NoError(t, err)
		assert.Equal(t, "descripción", d)
	}
	assert.Equal(t, 1, inner.calls)

	_, _ = c.GenerarDescripcion(ctx, "Mouse", "Bluetooth")
	assert.Equal(t, 2, inner.calls)

	_, _ = c.ExtraerProducto(ctx, "x")
	_, _ = c.ExtraerProducto(ctx, "x")
	assert.Equal(t, 4, inner.calls)
}
