package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/JunLarU/super-journey/internal/model"
)

// UsuarioStore manages accounts. Users carry no numeric id: the clave
// is the identifying key and lookups on it are case-insensitive.
type UsuarioStore interface {
	Agregar(u model.Usuario)
	Actualizar(u model.Usuario)
	Eliminar(clave string)
	PorClave(clave string) *model.Usuario
	PorUsername(username string) *model.Usuario
	PorEmail(email string) *model.Usuario
	ValidarCredenciales(clave, password string) bool
	Todos() []model.Usuario
	Estadisticas() string
}

type usuarioStore struct {
	mu    sync.RWMutex
	path  string
	items []model.Usuario
	log   zerolog.Logger
}

// NewUsuarioStore loads the snapshot at path. When the loaded
// collection is empty and adminInicial is non-nil, that account is
// seeded and persisted — the bootstrap behavior unique to this store.
func NewUsuarioStore(path string, adminInicial *model.Usuario, log zerolog.Logger) UsuarioStore {
	s := &usuarioStore{path: path, log: log.With().Str("store", "usuarios").Logger()}
	items, err := cargarSnapshot[model.Usuario](path)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("snapshot load failed, starting empty")
	} else {
		s.items = items
	}
	if len(s.items) == 0 && adminInicial != nil {
		s.items = append(s.items, *adminInicial)
		s.persistir()
		s.log.Info().Str("clave", adminInicial.Clave).Msg("seeded initial admin account")
	}
	return s
}

func (s *usuarioStore) persistir() {
	if err := guardarSnapshot(s.path, s.items); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("snapshot save failed")
	}
}

func (s *usuarioStore) Agregar(u model.Usuario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, u)
	s.persistir()
}

func (s *usuarioStore) Actualizar(u model.Usuario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx := range s.items {
		if strings.EqualFold(s.items[idx].Clave, u.Clave) {
			s.items[idx] = u
			break
		}
	}
	s.persistir()
}

func (s *usuarioStore) Eliminar(clave string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtrados := s.items[:0]
	for _, u := range s.items {
		if !strings.EqualFold(u.Clave, clave) {
			filtrados = append(filtrados, u)
		}
	}
	s.items = filtrados
	s.persistir()
}

func (s *usuarioStore) PorClave(clave string) *model.Usuario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.items {
		if strings.EqualFold(u.Clave, clave) {
			copia := u
			return &copia
		}
	}
	return nil
}

func (s *usuarioStore) PorUsername(username string) *model.Usuario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.items {
		if strings.EqualFold(u.Username, username) {
			copia := u
			return &copia
		}
	}
	return nil
}

func (s *usuarioStore) PorEmail(email string) *model.Usuario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.items {
		if u.Email != "" && strings.EqualFold(u.Email, email) {
			copia := u
			return &copia
		}
	}
	return nil
}

// ValidarCredenciales compares the stored password verbatim; this
// system keeps passwords in plain text on purpose.
func (s *usuarioStore) ValidarCredenciales(clave, password string) bool {
	u := s.PorClave(clave)
	return u != nil && u.Password == password
}

func (s *usuarioStore) Todos() []model.Usuario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Usuario{}, s.items...)
}

func (s *usuarioStore) Estadisticas() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	admins := 0
	for _, u := range s.items {
		if u.EsAdmin {
			admins++
		}
	}
	return fmt.Sprintf("Total: %d usuarios | Administradores: %d", len(s.items), admins)
}
