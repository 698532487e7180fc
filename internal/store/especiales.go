package store

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/JunLarU/super-journey/internal/model"
)

// EspecialStore manages time-boxed special price overrides.
type EspecialStore interface {
	Agregar(pe *model.ProductoEspecial)
	Actualizar(pe model.ProductoEspecial)
	Eliminar(id int)
	PorID(id int) *model.ProductoEspecial
	PorProducto(idProducto int) []model.ProductoEspecial
	ParaFecha(fechaHora model.FechaHora) []model.ProductoEspecial
	Vigentes() []model.ProductoEspecial
	Activos() []model.ProductoEspecial
	EspecialParaProductoYFecha(idProducto int, fechaHora model.FechaHora) *model.ProductoEspecial
	TienePrecioEspecial(idProducto int, fechaHora model.FechaHora) bool
	PrecioEspecial(idProducto int, fechaHora model.FechaHora) (decimal.Decimal, bool)
	Todos() []model.ProductoEspecial
	LimpiarExpirados() int
	Estadisticas() string
}

type especialStore struct {
	mu     sync.RWMutex
	path   string
	items  []model.ProductoEspecial
	nextID int
	log    zerolog.Logger
}

func NewEspecialStore(path string, log zerolog.Logger) EspecialStore {
	s := &especialStore{path: path, nextID: 1, log: log.With().Str("store", "especiales").Logger()}
	items, err := cargarSnapshot[model.ProductoEspecial](path)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("snapshot load failed, starting empty")
		return s
	}
	s.items = items
	for _, pe := range items {
		if pe.ID >= s.nextID {
			s.nextID = pe.ID + 1
		}
	}
	return s
}

func (s *especialStore) persistir() {
	if err := guardarSnapshot(s.path, s.items); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("snapshot save failed")
	}
}

func (s *especialStore) Agregar(pe *model.ProductoEspecial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pe.ID == 0 {
		pe.ID = s.nextID
		s.nextID++
	}
	s.items = append(s.items, *pe)
	s.persistir()
}

func (s *especialStore) Actualizar(pe model.ProductoEspecial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx := range s.items {
		if s.items[idx].ID == pe.ID {
			s.items[idx] = pe
			break
		}
	}
	s.persistir()
}

func (s *especialStore) Eliminar(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtrados := s.items[:0]
	for _, pe := range s.items {
		if pe.ID != id {
			filtrados = append(filtrados, pe)
		}
	}
	s.items = filtrados
	s.persistir()
}

func (s *especialStore) PorID(id int) *model.ProductoEspecial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, pe := range s.items {
		if pe.ID == id {
			copia := pe
			return &copia
		}
	}
	return nil
}

func (s *especialStore) PorProducto(idProducto int) []model.ProductoEspecial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var resultado []model.ProductoEspecial
	for _, pe := range s.items {
		if pe.IDProducto == idProducto {
			resultado = append(resultado, pe)
		}
	}
	return resultado
}

func (s *especialStore) ParaFecha(fechaHora model.FechaHora) []model.ProductoEspecial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var resultado []model.ProductoEspecial
	for _, pe := range s.items {
		if pe.ActivoEn(fechaHora) {
			resultado = append(resultado, pe)
		}
	}
	return resultado
}

func (s *especialStore) Vigentes() []model.ProductoEspecial {
	return s.ParaFecha(model.Ahora())
}

func (s *especialStore) Activos() []model.ProductoEspecial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var resultado []model.ProductoEspecial
	for _, pe := range s.items {
		if pe.Activo {
			resultado = append(resultado, pe)
		}
	}
	return resultado
}

func (s *especialStore) EspecialParaProductoYFecha(idProducto int, fechaHora model.FechaHora) *model.ProductoEspecial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, pe := range s.items {
		if pe.IDProducto == idProducto && pe.ActivoEn(fechaHora) {
			copia := pe
			return &copia
		}
	}
	return nil
}

func (s *especialStore) TienePrecioEspecial(idProducto int, fechaHora model.FechaHora) bool {
	return s.EspecialParaProductoYFecha(idProducto, fechaHora) != nil
}

// PrecioEspecial returns the override price valid for the product at
// the given instant; ok is false when no override applies.
func (s *especialStore) PrecioEspecial(idProducto int, fechaHora model.FechaHora) (decimal.Decimal, bool) {
	pe := s.EspecialParaProductoYFecha(idProducto, fechaHora)
	if pe == nil {
		return decimal.Decimal{}, false
	}
	return pe.PrecioEspecial, true
}

func (s *especialStore) Todos() []model.ProductoEspecial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ProductoEspecial{}, s.items...)
}

// LimpiarExpirados removes overrides whose window ended more than 30
// days ago and reports how many were dropped. It persists only when
// something was actually removed. Callers invoke it explicitly; it is
// never scheduled.
func (s *especialStore) LimpiarExpirados() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	limite := model.Ahora().AgregarDias(-30)
	filtrados := s.items[:0]
	removidos := 0
	for _, pe := range s.items {
		if pe.FechaFin.Before(limite.Time) {
			removidos++
			continue
		}
		filtrados = append(filtrados, pe)
	}
	s.items = filtrados
	if removidos > 0 {
		s.persistir()
		s.log.Info().Int("removidos", removidos).Msg("expired specials purged")
	}
	return removidos
}

func (s *especialStore) Estadisticas() string {
	s.mu.RLock()
	activos := 0
	for _, pe := range s.items {
		if pe.Activo {
			activos++
		}
	}
	total := len(s.items)
	s.mu.RUnlock()
	vigentes := len(s.Vigentes())
	return fmt.Sprintf("Total: %d especiales | Activos: %d | Vigentes: %d", total, activos, vigentes)
}
