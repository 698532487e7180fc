package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/JunLarU/super-journey/internal/model"
	"github.com/JunLarU/super-journey/internal/session"
	"github.com/JunLarU/super-journey/internal/store"
)

// AvisoService gates announcement and special-price administration
// behind an admin session and stamps publication metadata. Read-side
// queries (vigentes, importantes, per-venue) go to the stores directly.
type AvisoService interface {
	CrearAviso(a model.Aviso) (*model.Aviso, error)
	ActualizarAviso(a model.Aviso) error
	EliminarAviso(id int) error

	CrearEspecial(pe model.ProductoEspecial) (*model.ProductoEspecial, error)
	ActualizarEspecial(pe model.ProductoEspecial) error
	EliminarEspecial(id int) error

	PrecioVigente(idProducto int) (decimal.Decimal, error)
}

type avisoService struct {
	avisos     store.AvisoStore
	especiales store.EspecialStore
	productos  store.ProductoStore
	sesion     *session.Contexto
	validate   *validator.Validate
}

func NewAvisoService(avisos store.AvisoStore, especiales store.EspecialStore, productos store.ProductoStore, sesion *session.Contexto) AvisoService {
	return &avisoService{
		avisos:     avisos,
		especiales: especiales,
		productos:  productos,
		sesion:     sesion,
		validate:   validator.New(),
	}
}

// CrearAviso publishes a notice. The publication timestamp and creator
// clave are stamped from the session when the caller left them blank.
func (s *avisoService) CrearAviso(a model.Aviso) (*model.Aviso, error) {
	if !s.sesion.EsAdmin() {
		return nil, ErrNoAutorizado
	}
	if err := s.validate.Struct(a); err != nil {
		return nil, err
	}
	if a.FechaInicio.After(a.FechaFin.Time) {
		return nil, ErrRangoFechas
	}
	if a.FechaPublicacion.IsZero() {
		a.FechaPublicacion = model.Ahora()
	}
	if a.IDUsuarioCreador == "" {
		if actual := s.sesion.UsuarioActual(); actual != nil {
			a.IDUsuarioCreador = actual.Clave
		}
	}
	s.avisos.Agregar(&a)
	return &a, nil
}

func (s *avisoService) ActualizarAviso(a model.Aviso) error {
	if !s.sesion.EsAdmin() {
		return ErrNoAutorizado
	}
	if err := s.validate.Struct(a); err != nil {
		return err
	}
	if a.FechaInicio.After(a.FechaFin.Time) {
		return ErrRangoFechas
	}
	s.avisos.Actualizar(a)
	return nil
}

func (s *avisoService) EliminarAviso(id int) error {
	if !s.sesion.EsAdmin() {
		return ErrNoAutorizado
	}
	s.avisos.Eliminar(id)
	return nil
}

// CrearEspecial registers a special price for a product. The product
// reference is not validated against the catalog beyond a nil check at
// resolution time; the price must be positive.
func (s *avisoService) CrearEspecial(pe model.ProductoEspecial) (*model.ProductoEspecial, error) {
	if !s.sesion.EsAdmin() {
		return nil, ErrNoAutorizado
	}
	if err := s.validate.Struct(pe); err != nil {
		return nil, err
	}
	if !pe.PrecioEspecial.IsPositive() {
		return nil, ErrPrecioInvalido
	}
	if pe.FechaInicio.After(pe.FechaFin.Time) {
		return nil, ErrRangoFechas
	}
	s.especiales.Agregar(&pe)
	return &pe, nil
}

func (s *avisoService) ActualizarEspecial(pe model.ProductoEspecial) error {
	if !s.sesion.EsAdmin() {
		return ErrNoAutorizado
	}
	if err := s.validate.Struct(pe); err != nil {
		return err
	}
	if !pe.PrecioEspecial.IsPositive() {
		return ErrPrecioInvalido
	}
	if pe.FechaInicio.After(pe.FechaFin.Time) {
		return ErrRangoFechas
	}
	s.especiales.Actualizar(pe)
	return nil
}

func (s *avisoService) EliminarEspecial(id int) error {
	if !s.sesion.EsAdmin() {
		return ErrNoAutorizado
	}
	s.especiales.Eliminar(id)
	return nil
}

// PrecioVigente returns the price to charge for a product right now:
// its special price when a special is vigente, its base price
// otherwise.
func (s *avisoService) PrecioVigente(idProducto int) (decimal.Decimal, error) {
	p := s.productos.PorID(idProducto)
	if p == nil {
		return decimal.Zero, ErrNoEncontrado
	}
	if precio, ok := s.especiales.PrecioEspecial(idProducto, model.Ahora()); ok {
		return precio, nil
	}
	return p.PrecioBase, nil
}
