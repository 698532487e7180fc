package store

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/JunLarU/super-journey/internal/model"
)

// AvisoStore manages announcements.
type AvisoStore interface {
	Agregar(a *model.Aviso)
	Actualizar(a model.Aviso)
	Eliminar(id int)
	PorID(id int) *model.Aviso
	PorEstablecimiento(e model.Establecimiento) []model.Aviso
	PorTipo(t model.TipoAviso) []model.Aviso
	ParaFecha(fechaHora model.FechaHora) []model.Aviso
	Vigentes() []model.Aviso
	VigentesPorEstablecimiento(e model.Establecimiento) []model.Aviso
	Activos() []model.Aviso
	Importantes() []model.Aviso
	PorRango(inicio, fin model.FechaHora) []model.Aviso
	Todos() []model.Aviso
	LimpiarExpirados() int
	Estadisticas() string
}

type avisoStore struct {
	mu     sync.RWMutex
	path   string
	items  []model.Aviso
	nextID int
	log    zerolog.Logger
}

func NewAvisoStore(path string, log zerolog.Logger) AvisoStore {
	s := &avisoStore{path: path, nextID: 1, log: log.With().Str("store", "avisos").Logger()}
	items, err := cargarSnapshot[model.Aviso](path)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("snapshot load failed, starting empty")
		return s
	}
	s.items = items
	for _, a := range items {
		if a.ID >= s.nextID {
			s.nextID = a.ID + 1
		}
	}
	return s
}

func (s *avisoStore) persistir() {
	if err := guardarSnapshot(s.path, s.items); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("snapshot save failed")
	}
}

func (s *avisoStore) Agregar(a *model.Aviso) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == 0 {
		a.ID = s.nextID
		s.nextID++
	}
	s.items = append(s.items, *a)
	s.persistir()
}

func (s *avisoStore) Actualizar(a model.Aviso) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx := range s.items {
		if s.items[idx].ID == a.ID {
			s.items[idx] = a
			break
		}
	}
	s.persistir()
}

func (s *avisoStore) Eliminar(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtrados := s.items[:0]
	for _, a := range s.items {
		if a.ID != id {
			filtrados = append(filtrados, a)
		}
	}
	s.items = filtrados
	s.persistir()
}

func (s *avisoStore) PorID(id int) *model.Aviso {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.items {
		if a.ID == id {
			copia := a
			return &copia
		}
	}
	return nil
}

// PorEstablecimiento matches the given venue; notices marked Ambos
// apply to every venue.
func (s *avisoStore) PorEstablecimiento(e model.Establecimiento) []model.Aviso {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var resultado []model.Aviso
	for _, a := range s.items {
		if a.Establecimiento == e || a.Establecimiento == model.EstablecimientoAmbos {
			resultado = append(resultado, a)
		}
	}
	return resultado
}

func (s *avisoStore) PorTipo(t model.TipoAviso) []model.Aviso {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var resultado []model.Aviso
	for _, a := range s.items {
		if a.TipoAviso == t {
			resultado = append(resultado, a)
		}
	}
	return resultado
}

func (s *avisoStore) ParaFecha(fechaHora model.FechaHora) []model.Aviso {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var resultado []model.Aviso
	for _, a := range s.items {
		if a.ActivoEn(fechaHora) {
			resultado = append(resultado, a)
		}
	}
	return resultado
}

func (s *avisoStore) Vigentes() []model.Aviso {
	return s.ParaFecha(model.Ahora())
}

func (s *avisoStore) VigentesPorEstablecimiento(e model.Establecimiento) []model.Aviso {
	ahora := model.Ahora()
	s.mu.RLock()
	defer s.mu.RUnlock()
	var resultado []model.Aviso
	for _, a := range s.items {
		if a.ActivoEn(ahora) && (a.Establecimiento == e || a.Establecimiento == model.EstablecimientoAmbos) {
			resultado = append(resultado, a)
		}
	}
	return resultado
}

func (s *avisoStore) Activos() []model.Aviso {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var resultado []model.Aviso
	for _, a := range s.items {
		if a.Activo {
			resultado = append(resultado, a)
		}
	}
	return resultado
}

func (s *avisoStore) Importantes() []model.Aviso {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var resultado []model.Aviso
	for _, a := range s.items {
		if a.Prioridad == model.PrioridadImportante && a.Activo {
			resultado = append(resultado, a)
		}
	}
	return resultado
}

// PorRango returns notices whose validity window overlaps [inicio, fin].
func (s *avisoStore) PorRango(inicio, fin model.FechaHora) []model.Aviso {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var resultado []model.Aviso
	for _, a := range s.items {
		if !a.FechaInicio.After(fin.Time) && !a.FechaFin.Before(inicio.Time) {
			resultado = append(resultado, a)
		}
	}
	return resultado
}

func (s *avisoStore) Todos() []model.Aviso {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Aviso{}, s.items...)
}

// LimpiarExpirados removes notices whose window ended more than 30 days
// ago. Persists only when something was removed; never scheduled.
func (s *avisoStore) LimpiarExpirados() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	limite := model.Ahora().AgregarDias(-30)
	filtrados := s.items[:0]
	removidos := 0
	for _, a := range s.items {
		if a.FechaFin.Before(limite.Time) {
			removidos++
			continue
		}
		filtrados = append(filtrados, a)
	}
	s.items = filtrados
	if removidos > 0 {
		s.persistir()
		s.log.Info().Int("removidos", removidos).Msg("expired notices purged")
	}
	return removidos
}

func (s *avisoStore) Estadisticas() string {
	s.mu.RLock()
	total := len(s.items)
	activos, importantes := 0, 0
	for _, a := range s.items {
		if a.Activo {
			activos++
		}
		if a.Activo && a.Prioridad == model.PrioridadImportante {
			importantes++
		}
	}
	s.mu.RUnlock()
	vigentes := len(s.Vigentes())
	return fmt.Sprintf("Total: %d avisos | Activos: %d | Vigentes: %d | Importantes: %d", total, activos, vigentes, importantes)
}
