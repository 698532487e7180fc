package service

import (
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/JunLarU/super-journey/internal/model"
	"github.com/JunLarU/super-journey/internal/session"
	"github.com/JunLarU/super-journey/internal/store"
)

// SeccionResuelta is one section assignment of a menu with its section
// definition and product references resolved against the live catalog.
// Dangling references are skipped, never reported.
type SeccionResuelta struct {
	Asignacion model.MenuSeccion
	Seccion    model.SeccionMenu
	Productos  []ProductoResuelto
}

// ProductoResuelto pairs a section's product reference with the live
// catalog product, so price or availability edits show up without
// re-saving the menu or the section.
type ProductoResuelto struct {
	Referencia model.SeccionProducto
	Producto   model.Producto
}

// MenuService drives the weekly menu subsystem: week generation,
// section administration, section-to-menu assignment with audit
// stamping, and the two-level resolution used to render a menu.
type MenuService interface {
	GenerarSemana(fechaInicio model.Fecha, idUsuario int) ([]model.Menu, error)
	ExisteMenuPara(fecha model.Fecha, horario model.Horario) bool
	EliminarMenu(id int) error

	CrearSeccion(sec model.SeccionMenu) (*model.SeccionMenu, error)
	ActualizarSeccion(sec model.SeccionMenu) error
	EliminarSeccion(id int) error

	AsignarSeccion(idMenu, idSeccion, orden, idUsuario int) error
	QuitarSeccion(idMenu, idSeccion, idUsuario int) error

	ResolverMenu(idMenu int) ([]SeccionResuelta, error)
}

type menuService struct {
	menus     store.MenuStore
	productos store.ProductoStore
	sesion    *session.Contexto
	validate  *validator.Validate
}

func NewMenuService(menus store.MenuStore, productos store.ProductoStore, sesion *session.Contexto) MenuService {
	return &menuService{
		menus:     menus,
		productos: productos,
		sesion:    sesion,
		validate:  validator.New(),
	}
}

func (s *menuService) GenerarSemana(fechaInicio model.Fecha, idUsuario int) ([]model.Menu, error) {
	if !s.sesion.EsAdmin() {
		return nil, ErrNoAutorizado
	}
	return s.menus.GenerarMenusSemana(fechaInicio, idUsuario), nil
}

// ExisteMenuPara lets callers pre-check the (fecha, horario) slot
// before creating a menu; the store itself never enforces uniqueness.
func (s *menuService) ExisteMenuPara(fecha model.Fecha, horario model.Horario) bool {
	return s.menus.MenuPorFechaYHorario(fecha, horario) != nil
}

func (s *menuService) EliminarMenu(id int) error {
	if !s.sesion.EsAdmin() {
		return ErrNoAutorizado
	}
	s.menus.EliminarMenu(id)
	return nil
}

func (s *menuService) CrearSeccion(sec model.SeccionMenu) (*model.SeccionMenu, error) {
	if !s.sesion.EsAdmin() {
		return nil, ErrNoAutorizado
	}
	if err := s.validate.Struct(sec); err != nil {
		return nil, err
	}
	if s.menus.SeccionPorNombre(sec.Nombre) != nil {
		return nil, ErrNombreDuplicado
	}
	if sec.FechaCreacion == "" {
		sec.FechaCreacion = model.FechaHoy().String()
	}
	s.menus.AgregarSeccion(&sec)
	return &sec, nil
}

func (s *menuService) ActualizarSeccion(sec model.SeccionMenu) error {
	if !s.sesion.EsAdmin() {
		return ErrNoAutorizado
	}
	if err := s.validate.Struct(sec); err != nil {
		return err
	}
	if existente := s.menus.SeccionPorNombre(sec.Nombre); existente != nil && existente.ID != sec.ID {
		return ErrNombreDuplicado
	}
	s.menus.ActualizarSeccion(sec)
	return nil
}

func (s *menuService) EliminarSeccion(id int) error {
	if !s.sesion.EsAdmin() {
		return ErrNoAutorizado
	}
	// Menus referencing the section keep their assignment; resolution
	// will skip it once the lookup misses.
	s.menus.EliminarSeccion(id)
	return nil
}

// AsignarSeccion appends a section assignment to a menu, caching the
// section name and stamping the assigning user and date, then rewrites
// the menu.
func (s *menuService) AsignarSeccion(idMenu, idSeccion, orden, idUsuario int) error {
	if !s.sesion.EsAdmin() {
		return ErrNoAutorizado
	}
	menu := s.menus.MenuPorID(idMenu)
	if menu == nil {
		return ErrNoEncontrado
	}
	sec := s.menus.SeccionPorID(idSeccion)
	if sec == nil {
		return ErrNoEncontrado
	}
	menu.AgregarSeccion(model.MenuSeccion{
		IDMenu:          menu.ID,
		IDSeccion:       sec.ID,
		NombreSeccion:   sec.Nombre,
		Orden:           orden,
		IDUsuarioAsigno: idUsuario,
		FechaAsignacion: model.FechaHoy().String(),
	})
	menu.RegistrarModificacion(idUsuario)
	s.menus.ActualizarMenu(*menu)
	return nil
}

func (s *menuService) QuitarSeccion(idMenu, idSeccion, idUsuario int) error {
	if !s.sesion.EsAdmin() {
		return ErrNoAutorizado
	}
	menu := s.menus.MenuPorID(idMenu)
	if menu == nil {
		return ErrNoEncontrado
	}
	menu.EliminarSeccion(idSeccion)
	menu.RegistrarModificacion(idUsuario)
	s.menus.ActualizarMenu(*menu)
	return nil
}

// ResolverMenu performs the two-level resolve that renders a menu:
// menu → ordered section assignments → section definitions → ordered
// product references → live products. Assignments or references whose
// target no longer exists are omitted.
func (s *menuService) ResolverMenu(idMenu int) ([]SeccionResuelta, error) {
	menu := s.menus.MenuPorID(idMenu)
	if menu == nil {
		return nil, ErrNoEncontrado
	}
	asignaciones := append([]model.MenuSeccion{}, menu.Secciones...)
	sort.SliceStable(asignaciones, func(i, j int) bool {
		return asignaciones[i].Orden < asignaciones[j].Orden
	})

	var resultado []SeccionResuelta
	for _, asignacion := range asignaciones {
		sec := s.menus.SeccionPorID(asignacion.IDSeccion)
		if sec == nil {
			continue
		}
		referencias := append([]model.SeccionProducto{}, sec.Productos...)
		sort.SliceStable(referencias, func(i, j int) bool {
			return referencias[i].Orden < referencias[j].Orden
		})
		resuelta := SeccionResuelta{Asignacion: asignacion, Seccion: *sec}
		for _, ref := range referencias {
			producto := s.productos.PorID(ref.IDProducto)
			if producto == nil {
				continue
			}
			resuelta.Productos = append(resuelta.Productos, ProductoResuelto{
				Referencia: ref,
				Producto:   *producto,
			})
		}
		resultado = append(resultado, resuelta)
	}
	return resultado, nil
}
