package store

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunLarU/super-journey/internal/model"
)

func adminDePrueba() *model.Usuario {
	return &model.Usuario{
		Clave:           "U001",
		Username:        "admin",
		Password:        "admin",
		EsAdmin:         true,
		Nombre:          "Administrador",
		ApellidoPaterno: "CAFI",
	}
}

func TestUsuarioSiembraAdminInicial(t *testing.T) {
	ruta := rutaTemporal(t, "users.json")
	s := NewUsuarioStore(ruta, adminDePrueba(), zerolog.Nop())

	todos := s.Todos()
	require.Len(t, todos, 1)
	assert.True(t, todos[0].EsAdmin)

	// A second load does not seed again
	recargado := NewUsuarioStore(ruta, adminDePrueba(), zerolog.Nop())
	assert.Len(t, recargado.Todos(), 1)
}

func TestUsuarioBusquedasInsensiblesAMayusculas(t *testing.T) {
	s := NewUsuarioStore(rutaTemporal(t, "users.json"), nil, zerolog.Nop())
	s.Agregar(model.Usuario{
		Clave: "U002", Username: "jlarios", Password: "secreta",
		Nombre: "Juan", ApellidoPaterno: "Larios", Email: "juan@example.com",
	})

	require.NotNil(t, s.PorClave("u002"))
	require.NotNil(t, s.PorUsername("JLARIOS"))
	require.NotNil(t, s.PorEmail("JUAN@example.com"))
	assert.Nil(t, s.PorClave("U404"))
	assert.Nil(t, s.PorEmail(""))
}

func TestUsuarioValidarCredencialesTextoPlano(t *testing.T) {
	s := NewUsuarioStore(rutaTemporal(t, "users.json"), adminDePrueba(), zerolog.Nop())

	assert.True(t, s.ValidarCredenciales("U001", "admin"))
	assert.False(t, s.ValidarCredenciales("U001", "otra"))
	assert.False(t, s.ValidarCredenciales("U404", "admin"))
}

func TestUsuarioActualizarYEliminarPorClave(t *testing.T) {
	ruta := rutaTemporal(t, "users.json")
	s := NewUsuarioStore(ruta, adminDePrueba(), zerolog.Nop())

	u := *s.PorClave("U001")
	u.Telefono = "5551234567"
	s.Actualizar(u)
	assert.Equal(t, "5551234567", s.PorClave("U001").Telefono)

	s.Eliminar("u001")
	assert.Nil(t, s.PorClave("U001"))
}
