package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/JunLarU/super-journey/internal/model"
)

// IngredienteStore is the sole authority over the ingredient catalog,
// in memory and on disk. It performs no uniqueness checks; callers
// pre-check name collisions.
type IngredienteStore interface {
	Agregar(i *model.Ingrediente)
	Actualizar(i model.Ingrediente)
	Eliminar(id int)
	PorID(id int) *model.Ingrediente
	PorNombre(nombre string) *model.Ingrediente
	Todos() []model.Ingrediente
	Estadisticas() string
}

type ingredienteStore struct {
	mu     sync.RWMutex
	path   string
	items  []model.Ingrediente
	nextID int
	log    zerolog.Logger
}

// NewIngredienteStore loads the snapshot at path. A parse failure is
// logged and the store starts empty; the allocator resumes at
// max(existing ids)+1.
func NewIngredienteStore(path string, log zerolog.Logger) IngredienteStore {
	s := &ingredienteStore{path: path, nextID: 1, log: log.With().Str("store", "ingredientes").Logger()}
	items, err := cargarSnapshot[model.Ingrediente](path)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("snapshot load failed, starting empty")
		return s
	}
	s.items = items
	for _, it := range items {
		if it.ID >= s.nextID {
			s.nextID = it.ID + 1
		}
	}
	return s
}

func (s *ingredienteStore) persistir() {
	if err := guardarSnapshot(s.path, s.items); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("snapshot save failed")
	}
}

func (s *ingredienteStore) Agregar(i *model.Ingrediente) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i.ID == 0 {
		i.ID = s.nextID
		s.nextID++
	}
	s.items = append(s.items, *i)
	s.persistir()
}

func (s *ingredienteStore) Actualizar(i model.Ingrediente) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx := range s.items {
		if s.items[idx].ID == i.ID {
			s.items[idx] = i
			break
		}
	}
	s.persistir()
}

func (s *ingredienteStore) Eliminar(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtrados := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			filtrados = append(filtrados, it)
		}
	}
	s.items = filtrados
	s.persistir()
}

func (s *ingredienteStore) PorID(id int) *model.Ingrediente {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			copia := it
			return &copia
		}
	}
	return nil
}

func (s *ingredienteStore) PorNombre(nombre string) *model.Ingrediente {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if strings.EqualFold(it.Nombre, nombre) {
			copia := it
			return &copia
		}
	}
	return nil
}

func (s *ingredienteStore) Todos() []model.Ingrediente {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Ingrediente{}, s.items...)
}

func (s *ingredienteStore) Estadisticas() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	alergenos := 0
	for _, it := range s.items {
		if it.Alergenico {
			alergenos++
		}
	}
	return fmt.Sprintf("Total: %d ingredientes | Alergenos: %d", len(s.items), alergenos)
}
