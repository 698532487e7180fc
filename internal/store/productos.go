package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/JunLarU/super-journey/internal/model"
)

// ProductoStore owns the product catalog including each product's
// nested ingredient associations and size variants, which are persisted
// only as part of the product's own serialization.
type ProductoStore interface {
	Agregar(p *model.Producto)
	Actualizar(p model.Producto)
	Eliminar(id int)
	PorID(id int) *model.Producto
	PorNombre(nombre string) *model.Producto
	PorCategoria(categoria string) []model.Producto
	Disponibles() []model.Producto
	Categorias() []string
	Todos() []model.Producto
	Estadisticas() string
}

type productoStore struct {
	mu     sync.RWMutex
	path   string
	items  []model.Producto
	nextID int
	log    zerolog.Logger
}

func NewProductoStore(path string, log zerolog.Logger) ProductoStore {
	s := &productoStore{path: path, nextID: 1, log: log.With().Str("store", "productos").Logger()}
	items, err := cargarSnapshot[model.Producto](path)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("snapshot load failed, starting empty")
		return s
	}
	s.items = items
	for _, p := range items {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

func (s *productoStore) persistir() {
	if err := guardarSnapshot(s.path, s.items); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("snapshot save failed")
	}
}

func (s *productoStore) Agregar(p *model.Producto) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		p.ID = s.nextID
		s.nextID++
	}
	s.items = append(s.items, p.Clon())
	s.persistir()
}

func (s *productoStore) Actualizar(p model.Producto) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx := range s.items {
		if s.items[idx].ID == p.ID {
			s.items[idx] = p.Clon()
			break
		}
	}
	s.persistir()
}

func (s *productoStore) Eliminar(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtrados := s.items[:0]
	for _, p := range s.items {
		if p.ID != id {
			filtrados = append(filtrados, p)
		}
	}
	s.items = filtrados
	s.persistir()
}

func (s *productoStore) PorID(id int) *model.Producto {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.items {
		if p.ID == id {
			copia := p.Clon()
			return &copia
		}
	}
	return nil
}

func (s *productoStore) PorNombre(nombre string) *model.Producto {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.items {
		if strings.EqualFold(p.Nombre, nombre) {
			copia := p.Clon()
			return &copia
		}
	}
	return nil
}

func (s *productoStore) PorCategoria(categoria string) []model.Producto {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var resultado []model.Producto
	for _, p := range s.items {
		if p.Categoria != nil && strings.EqualFold(*p.Categoria, categoria) {
			resultado = append(resultado, p.Clon())
		}
	}
	return resultado
}

func (s *productoStore) Disponibles() []model.Producto {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var resultado []model.Producto
	for _, p := range s.items {
		if p.Disponible {
			resultado = append(resultado, p.Clon())
		}
	}
	return resultado
}

// Categorias returns the distinct non-blank categories, sorted.
func (s *productoStore) Categorias() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vistas := make(map[string]bool)
	var categorias []string
	for _, p := range s.items {
		if p.Categoria == nil || strings.TrimSpace(*p.Categoria) == "" {
			continue
		}
		if !vistas[*p.Categoria] {
			vistas[*p.Categoria] = true
			categorias = append(categorias, *p.Categoria)
		}
	}
	sort.Strings(categorias)
	return categorias
}

func (s *productoStore) Todos() []model.Producto {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resultado := make([]model.Producto, 0, len(s.items))
	for _, p := range s.items {
		resultado = append(resultado, p.Clon())
	}
	return resultado
}

func (s *productoStore) Estadisticas() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	disponibles := 0
	categorias := make(map[string]bool)
	for _, p := range s.items {
		if p.Disponible {
			disponibles++
		}
		if p.Categoria != nil && strings.TrimSpace(*p.Categoria) != "" {
			categorias[*p.Categoria] = true
		}
	}
	return fmt.Sprintf("Total: %d productos | Disponibles: %d | Categorías: %d", len(s.items), disponibles, len(categorias))
}
