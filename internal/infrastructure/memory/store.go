// Package memory implementa los puertos de persistencia en RAM. Se usa como doble de pruebas
// y con DB_ENGINE=memory. Los repositorios que comparten un Store ven los mismos datos,
// lo que permite el borrado en cascada empresa → productos.
package memory

import (
	"sync"

	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
)

// Store datos compartidos entre los repositorios en memoria.
type Store struct {
	mu        sync.RWMutex
	empresas  map[string]entity.Empresa
	productos map[int64]*entity.Producto
	users     map[string]entity.User
	nextID    int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		empresas:  make(map[string]entity.Empresa),
		productos: make(map[int64]*entity.Producto),
		users:     make(map[string]entity.User),
	}
}

// productoByCodigo debe llamarse con el lock tomado.
func (s *Store) productoByCodigo(codigo string) *entity.Producto {
	for _, p := range s.productos {
		if p.Codigo == codigo {
			return p
		}
	}
	return nil
}
