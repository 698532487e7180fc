package service

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/JunLarU/super-journey/internal/model"
	"github.com/JunLarU/super-journey/internal/session"
	"github.com/JunLarU/super-journey/internal/store"
)

// AuthService handles login, registration and account administration.
type AuthService interface {
	Login(clave, password string) (*model.Usuario, error)
	Logout()
	Registrar(u model.Usuario) error
	ActualizarUsuario(u model.Usuario) error
	EliminarUsuario(clave string) error
	ListarUsuarios() ([]model.Usuario, error)
}

type authService struct {
	usuarios store.UsuarioStore
	sesion   *session.Contexto
	validate *validator.Validate
}

func NewAuthService(usuarios store.UsuarioStore, sesion *session.Contexto) AuthService {
	return &authService{
		usuarios: usuarios,
		sesion:   sesion,
		validate: validator.New(),
	}
}

// Login validates the clave/password pair (plain-text compare) and
// opens the session on success.
func (s *authService) Login(clave, password string) (*model.Usuario, error) {
	if !s.usuarios.ValidarCredenciales(clave, password) {
		return nil, ErrCredenciales
	}
	u := s.usuarios.PorClave(clave)
	if u == nil {
		return nil, ErrCredenciales
	}
	s.sesion.IniciarSesion(*u)
	return u, nil
}

func (s *authService) Logout() {
	s.sesion.CerrarSesion()
}

// Registrar creates an account after pre-checking the clave and
// username for collisions; the store itself stays permissive. Creating
// an admin account requires an admin session, plain self-registration
// does not.
func (s *authService) Registrar(u model.Usuario) error {
	if err := s.validate.Struct(u); err != nil {
		return err
	}
	if u.EsAdmin && !s.sesion.EsAdmin() {
		return ErrNoAutorizado
	}
	if s.usuarios.PorClave(u.Clave) != nil {
		return ErrClaveDuplicada
	}
	if s.usuarios.PorUsername(u.Username) != nil {
		return ErrUsernameDuplicado
	}
	s.usuarios.Agregar(u)
	return nil
}

func (s *authService) ActualizarUsuario(u model.Usuario) error {
	if !s.sesion.EsAdmin() {
		return ErrNoAutorizado
	}
	if err := s.validate.Struct(u); err != nil {
		return err
	}
	if s.usuarios.PorClave(u.Clave) == nil {
		return ErrUsuarioNoEncontrado
	}
	s.usuarios.Actualizar(u)
	return nil
}

// EliminarUsuario removes an account. The authenticated user can never
// remove themself.
func (s *authService) EliminarUsuario(clave string) error {
	if !s.sesion.EsAdmin() {
		return ErrNoAutorizado
	}
	actual := s.sesion.UsuarioActual()
	if actual != nil && strings.EqualFold(actual.Clave, clave) {
		return ErrAutoEliminacion
	}
	if s.usuarios.PorClave(clave) == nil {
		return ErrUsuarioNoEncontrado
	}
	s.usuarios.Eliminar(clave)
	return nil
}

func (s *authService) ListarUsuarios() ([]model.Usuario, error) {
	if !s.sesion.EsAdmin() {
		return nil, ErrNoAutorizado
	}
	return s.usuarios.Todos(), nil
}
