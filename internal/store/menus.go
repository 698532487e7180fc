package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/JunLarU/super-journey/internal/model"
)

// MenuStore co-manages two collections behind one lock: weekly menu
// slots and the reusable section definitions they reference. Each
// collection has its own backing file and its own id allocator; every
// mutation rewrites both snapshots, mirroring how the original system
// persisted them together.
type MenuStore interface {
	AgregarMenu(m *model.Menu)
	ActualizarMenu(m model.Menu)
	EliminarMenu(id int)
	MenuPorID(id int) *model.Menu
	MenusPorFecha(fecha model.Fecha) []model.Menu
	MenusPorSemana(numeroSemana, anio int) []model.Menu
	MenuPorFechaYHorario(fecha model.Fecha, horario model.Horario) *model.Menu
	MenusActivos() []model.Menu
	TodosMenus() []model.Menu
	GenerarMenusSemana(fechaInicio model.Fecha, idUsuarioCreador int) []model.Menu

	AgregarSeccion(s *model.SeccionMenu)
	ActualizarSeccion(s model.SeccionMenu)
	EliminarSeccion(id int)
	SeccionPorID(id int) *model.SeccionMenu
	SeccionPorNombre(nombre string) *model.SeccionMenu
	SeccionesActivas() []model.SeccionMenu
	TodasSecciones() []model.SeccionMenu

	Estadisticas() string
}

type menuStore struct {
	mu            sync.RWMutex
	menusPath     string
	seccionesPath string
	menus         []model.Menu
	secciones     []model.SeccionMenu
	nextMenuID    int
	nextSeccionID int
	log           zerolog.Logger
}

func NewMenuStore(menusPath, seccionesPath string, log zerolog.Logger) MenuStore {
	s := &menuStore{
		menusPath:     menusPath,
		seccionesPath: seccionesPath,
		nextMenuID:    1,
		nextSeccionID: 1,
		log:           log.With().Str("store", "menus").Logger(),
	}
	menus, err := cargarSnapshot[model.Menu](menusPath)
	if err != nil {
		s.log.Error().Err(err).Str("path", menusPath).Msg("menu snapshot load failed, starting empty")
	} else {
		s.menus = menus
		for _, m := range menus {
			if m.ID >= s.nextMenuID {
				s.nextMenuID = m.ID + 1
			}
		}
	}
	secciones, err := cargarSnapshot[model.SeccionMenu](seccionesPath)
	if err != nil {
		s.log.Error().Err(err).Str("path", seccionesPath).Msg("section snapshot load failed, starting empty")
	} else {
		s.secciones = secciones
		for _, sec := range secciones {
			if sec.ID >= s.nextSeccionID {
				s.nextSeccionID = sec.ID + 1
			}
		}
	}
	return s
}

func (s *menuStore) persistir() {
	if err := guardarSnapshot(s.menusPath, s.menus); err != nil {
		s.log.Error().Err(err).Str("path", s.menusPath).Msg("menu snapshot save failed")
	}
	if err := guardarSnapshot(s.seccionesPath, s.secciones); err != nil {
		s.log.Error().Err(err).Str("path", s.seccionesPath).Msg("section snapshot save failed")
	}
}

// ── Menus ───────────────────────────────────────────────────────────

func (s *menuStore) agregarMenuLocked(m *model.Menu) {
	if m.ID == 0 {
		m.ID = s.nextMenuID
		s.nextMenuID++
	}
	s.menus = append(s.menus, m.Clon())
}

func (s *menuStore) AgregarMenu(m *model.Menu) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agregarMenuLocked(m)
	s.persistir()
}

func (s *menuStore) ActualizarMenu(m model.Menu) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx := range s.menus {
		if s.menus[idx].ID == m.ID {
			s.menus[idx] = m.Clon()
			break
		}
	}
	s.persistir()
}

func (s *menuStore) EliminarMenu(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtrados := s.menus[:0]
	for _, m := range s.menus {
		if m.ID != id {
			filtrados = append(filtrados, m)
		}
	}
	s.menus = filtrados
	s.persistir()
}

func (s *menuStore) MenuPorID(id int) *model.Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.menus {
		if m.ID == id {
			copia := m.Clon()
			return &copia
		}
	}
	return nil
}

func (s *menuStore) MenusPorFecha(fecha model.Fecha) []model.Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var resultado []model.Menu
	for _, m := range s.menus {
		if m.Fecha.Igual(fecha) {
			resultado = append(resultado, m.Clon())
		}
	}
	return resultado
}

func (s *menuStore) MenusPorSemana(numeroSemana, anio int) []model.Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var resultado []model.Menu
	for _, m := range s.menus {
		if m.NumeroSemana == numeroSemana && m.Anio == anio {
			resultado = append(resultado, m.Clon())
		}
	}
	return resultado
}

func (s *menuStore) MenuPorFechaYHorario(fecha model.Fecha, horario model.Horario) *model.Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.menus {
		if m.Fecha.Igual(fecha) && strings.EqualFold(string(m.Horario), string(horario)) {
			copia := m.Clon()
			return &copia
		}
	}
	return nil
}

func (s *menuStore) MenusActivos() []model.Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var resultado []model.Menu
	for _, m := range s.menus {
		if m.Activo {
			resultado = append(resultado, m.Clon())
		}
	}
	return resultado
}

func (s *menuStore) TodosMenus() []model.Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resultado := make([]model.Menu, 0, len(s.menus))
	for _, m := range s.menus {
		resultado = append(resultado, m.Clon())
	}
	return resultado
}

// GenerarMenusSemana creates one Desayuno and one Comida slot for each
// of the 7 days starting at fechaInicio, all active and empty of
// sections, with the ISO week number and the calendar year of each
// date. Returns the created menus with their assigned ids.
func (s *menuStore) GenerarMenusSemana(fechaInicio model.Fecha, idUsuarioCreador int) []model.Menu {
	s.mu.Lock()
	defer s.mu.Unlock()
	fechaCreacion := model.FechaHoy().String()
	creados := make([]model.Menu, 0, 14)
	fecha := fechaInicio
	for dia := 0; dia < 7; dia++ {
		_, semana := fecha.ISOWeek()
		for _, horario := range []model.Horario{model.HorarioDesayuno, model.HorarioComida} {
			menu := model.Menu{
				Fecha:            fecha,
				DiaSemana:        model.DiaSemanaEspanol(fecha.Weekday()),
				Horario:          horario,
				NumeroSemana:     semana,
				Anio:             fecha.Year(),
				FechaCreacion:    fechaCreacion,
				Activo:           true,
				IDUsuarioCreador: idUsuarioCreador,
				Secciones:        []model.MenuSeccion{},
			}
			s.agregarMenuLocked(&menu)
			creados = append(creados, menu)
		}
		fecha = fecha.AgregarDias(1)
	}
	s.persistir()
	return creados
}

// ── Secciones ───────────────────────────────────────────────────────

func (s *menuStore) AgregarSeccion(sec *model.SeccionMenu) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sec.ID == 0 {
		sec.ID = s.nextSeccionID
		s.nextSeccionID++
	}
	s.secciones = append(s.secciones, sec.Clon())
	s.persistir()
}

func (s *menuStore) ActualizarSeccion(sec model.SeccionMenu) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx := range s.secciones {
		if s.secciones[idx].ID == sec.ID {
			s.secciones[idx] = sec.Clon()
			break
		}
	}
	s.persistir()
}

func (s *menuStore) EliminarSeccion(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtradas := s.secciones[:0]
	for _, sec := range s.secciones {
		if sec.ID != id {
			filtradas = append(filtradas, sec)
		}
	}
	s.secciones = filtradas
	s.persistir()
}

func (s *menuStore) SeccionPorID(id int) *model.SeccionMenu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sec := range s.secciones {
		if sec.ID == id {
			copia := sec.Clon()
			return &copia
		}
	}
	return nil
}

func (s *menuStore) SeccionPorNombre(nombre string) *model.SeccionMenu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sec := range s.secciones {
		if strings.EqualFold(sec.Nombre, nombre) {
			copia := sec.Clon()
			return &copia
		}
	}
	return nil
}

func (s *menuStore) SeccionesActivas() []model.SeccionMenu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var resultado []model.SeccionMenu
	for _, sec := range s.secciones {
		if sec.Activo {
			resultado = append(resultado, sec.Clon())
		}
	}
	return resultado
}

func (s *menuStore) TodasSecciones() []model.SeccionMenu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resultado := make([]model.SeccionMenu, 0, len(s.secciones))
	for _, sec := range s.secciones {
		resultado = append(resultado, sec.Clon())
	}
	return resultado
}

func (s *menuStore) Estadisticas() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	menusActivos, seccionesActivas := 0, 0
	for _, m := range s.menus {
		if m.Activo {
			menusActivos++
		}
	}
	for _, sec := range s.secciones {
		if sec.Activo {
			seccionesActivas++
		}
	}
	return fmt.Sprintf("Menús: %d total (%d activos) | Secciones: %d total (%d activas)",
		len(s.menus), menusActivos, len(s.secciones), seccionesActivas)
}
