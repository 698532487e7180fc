package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/JunLarU/super-journey/internal/model"
	"github.com/JunLarU/super-journey/internal/session"
	"github.com/JunLarU/super-journey/internal/store"
)

// CatalogoService gates mutations of the ingredient and product
// catalogs behind an admin session and performs the duplicate-name and
// price checks the stores deliberately leave to callers. Reads go to
// the stores directly.
type CatalogoService interface {
	CrearIngrediente(i model.Ingrediente) (*model.Ingrediente, error)
	ActualizarIngrediente(i model.Ingrediente) error
	EliminarIngrediente(id int) error

	CrearProducto(p model.Producto) (*model.Producto, error)
	ActualizarProducto(p model.Producto) error
	EliminarProducto(id int) error
}

type catalogoService struct {
	ingredientes store.IngredienteStore
	productos    store.ProductoStore
	sesion       *session.Contexto
	validate     *validator.Validate
}

func NewCatalogoService(ingredientes store.IngredienteStore, productos store.ProductoStore, sesion *session.Contexto) CatalogoService {
	return &catalogoService{
		ingredientes: ingredientes,
		productos:    productos,
		sesion:       sesion,
		validate:     validator.New(),
	}
}

func (s *catalogoService) CrearIngrediente(i model.Ingrediente) (*model.Ingrediente, error) {
	if !s.sesion.EsAdmin() {
		return nil, ErrNoAutorizado
	}
	if err := s.validate.Struct(i); err != nil {
		return nil, err
	}
	if s.ingredientes.PorNombre(i.Nombre) != nil {
		return nil, ErrNombreDuplicado
	}
	s.ingredientes.Agregar(&i)
	return &i, nil
}

func (s *catalogoService) ActualizarIngrediente(i model.Ingrediente) error {
	if !s.sesion.EsAdmin() {
		return ErrNoAutorizado
	}
	if err := s.validate.Struct(i); err != nil {
		return err
	}
	if existente := s.ingredientes.PorNombre(i.Nombre); existente != nil && existente.ID != i.ID {
		return ErrNombreDuplicado
	}
	s.ingredientes.Actualizar(i)
	return nil
}

func (s *catalogoService) EliminarIngrediente(id int) error {
	if !s.sesion.EsAdmin() {
		return ErrNoAutorizado
	}
	// No cascade: products referencing this ingredient keep their
	// reference; resolving it later yields a miss that callers skip.
	s.ingredientes.Eliminar(id)
	return nil
}

func (s *catalogoService) CrearProducto(p model.Producto) (*model.Producto, error) {
	if !s.sesion.EsAdmin() {
		return nil, ErrNoAutorizado
	}
	if err := s.validarProducto(p); err != nil {
		return nil, err
	}
	if s.productos.PorNombre(p.Nombre) != nil {
		return nil, ErrNombreDuplicado
	}
	s.productos.Agregar(&p)
	return &p, nil
}

func (s *catalogoService) ActualizarProducto(p model.Producto) error {
	if !s.sesion.EsAdmin() {
		return ErrNoAutorizado
	}
	if err := s.validarProducto(p); err != nil {
		return err
	}
	if existente := s.productos.PorNombre(p.Nombre); existente != nil && existente.ID != p.ID {
		return ErrNombreDuplicado
	}
	s.productos.Actualizar(p)
	return nil
}

func (s *catalogoService) EliminarProducto(id int) error {
	if !s.sesion.EsAdmin() {
		return ErrNoAutorizado
	}
	// No cascade into sections or specials that reference the product.
	s.productos.Eliminar(id)
	return nil
}

func (s *catalogoService) validarProducto(p model.Producto) error {
	if err := s.validate.Struct(p); err != nil {
		return err
	}
	if !p.PrecioBase.IsPositive() {
		return ErrPrecioInvalido
	}
	for _, t := range p.Tamanos {
		if !t.Precio.IsPositive() {
			return ErrPrecioInvalido
		}
	}
	for _, pi := range p.Ingredientes {
		for _, sus := range pi.Sustitutos {
			if sus.CostoExtra.IsNegative() {
				return ErrPrecioInvalido
			}
		}
	}
	return nil
}
