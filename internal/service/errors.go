// Package service implements the caller-side rules the stores leave
// out on purpose: admin gating against the current session, natural-key
// duplicate pre-checks, field validation, audit stamping and the
// cross-store resolution of menu references.
package service

import "errors"

var (
	ErrNoAutorizado        = errors.New("operacion reservada a administradores")
	ErrCredenciales        = errors.New("credenciales invalidas")
	ErrClaveDuplicada      = errors.New("la clave ya esta registrada")
	ErrUsernameDuplicado   = errors.New("el nombre de usuario ya esta registrado")
	ErrAutoEliminacion     = errors.New("no puedes eliminar tu propia cuenta")
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
	ErrNombreDuplicado     = errors.New("ya existe un registro con ese nombre")
	ErrPrecioInvalido      = errors.New("el precio debe ser mayor que cero")
	ErrRangoFechas         = errors.New("la fecha de inicio debe ser anterior o igual a la de fin")
	ErrNoEncontrado        = errors.New("registro no encontrado")
)
