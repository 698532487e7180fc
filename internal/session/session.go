// Package session tracks the authenticated user for the running
// desktop process. There is exactly one session at a time; it is
// constructed at startup and handed to whatever needs to gate
// admin-only operations.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/JunLarU/super-journey/internal/model"
)

// Contexto is the current-session state.
type Contexto struct {
	mu      sync.RWMutex
	usuario *model.Usuario
	token   uuid.UUID
}

func NewContexto() *Contexto {
	return &Contexto{}
}

// IniciarSesion records the authenticated user and returns the token
// identifying this login.
func (c *Contexto) IniciarSesion(u model.Usuario) uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	copia := u
	c.usuario = &copia
	c.token = uuid.New()
	return c.token
}

func (c *Contexto) CerrarSesion() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.usuario = nil
	c.token = uuid.Nil
}

// UsuarioActual returns a copy of the authenticated user, or nil.
func (c *Contexto) UsuarioActual() *model.Usuario {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.usuario == nil {
		return nil
	}
	copia := *c.usuario
	return &copia
}

func (c *Contexto) Token() uuid.UUID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Contexto) Autenticado() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.usuario != nil
}

func (c *Contexto) EsAdmin() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.usuario != nil && c.usuario.EsAdmin
}
