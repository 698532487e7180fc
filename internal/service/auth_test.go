package service

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunLarU/super-journey/internal/model"
	"github.com/JunLarU/super-journey/internal/session"
	"github.com/JunLarU/super-journey/internal/store"
)

func entornoAuth(t *testing.T) (AuthService, *session.Contexto) {
	admin := &model.Usuario{
		Clave: "U001", Username: "admin", Password: "admin",
		EsAdmin: true, Nombre: "Administrador",
	}
	usuarios := store.NewUsuarioStore(filepath.Join(t.TempDir(), "users.json"), admin, zerolog.Nop())
	sesion := session.NewContexto()
	return NewAuthService(usuarios, sesion), sesion
}

func TestLoginYLogout(t *testing.T) {
	svc, sesion := entornoAuth(t)

	_, err := svc.Login("U001", "incorrecta")
	assert.ErrorIs(t, err, ErrCredenciales)
	assert.False(t, sesion.Autenticado())

	u, err := svc.Login("U001", "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
	assert.True(t, sesion.EsAdmin())
	assert.NotEqual(t, sesion.Token().String(), "00000000-0000-0000-0000-000000000000")

	svc.Logout()
	assert.False(t, sesion.Autenticado())
	assert.False(t, sesion.EsAdmin())
}

func TestRegistrarRechazaDuplicados(t *testing.T) {
	svc, _ := entornoAuth(t)

	nuevo := model.Usuario{
		Clave: "U002", Username: "jlarios", Password: "secreta", Nombre: "Juan", ApellidoPaterno: "Larios",
	}
	require.NoError(t, svc.Registrar(nuevo))

	repetida := nuevo
	repetida.Username = "otro"
	assert.ErrorIs(t, svc.Registrar(repetida), ErrClaveDuplicada)

	repetido := nuevo
	repetido.Clave = "U003"
	assert.ErrorIs(t, svc.Registrar(repetido), ErrUsernameDuplicado)

	assert.Error(t, svc.Registrar(model.Usuario{Clave: "U004"}))
}

func TestRegistrarAdminRequiereSesionAdmin(t *testing.T) {
	svc, _ := entornoAuth(t)

	otroAdmin := model.Usuario{
		Clave: "U005", Username: "admin2", Password: "secreta",
		Nombre: "Segundo", ApellidoPaterno: "Admin", EsAdmin: true,
	}
	assert.ErrorIs(t, svc.Registrar(otroAdmin), ErrNoAutorizado)

	_, err := svc.Login("U001", "admin")
	require.NoError(t, err)
	assert.NoError(t, svc.Registrar(otroAdmin))
}

func TestEliminarUsuarioProtegeLaSesion(t *testing.T) {
	svc, _ := entornoAuth(t)

	assert.ErrorIs(t, svc.EliminarUsuario("U001"), ErrNoAutorizado)

	_, err := svc.Login("U001", "admin")
	require.NoError(t, err)

	require.NoError(t, svc.Registrar(model.Usuario{
		Clave: "U002", Username: "jlarios", Password: "secreta", Nombre: "Juan", ApellidoPaterno: "Larios",
	}))

	// Nadie puede eliminarse a sí mismo, ni con otra capitalización
	assert.ErrorIs(t, svc.EliminarUsuario("u001"), ErrAutoEliminacion)
	assert.ErrorIs(t, svc.EliminarUsuario("U404"), ErrUsuarioNoEncontrado)
	assert.NoError(t, svc.EliminarUsuario("U002"))

	lista, err := svc.ListarUsuarios()
	require.NoError(t, err)
	assert.Len(t, lista, 1)
}

func TestActualizarUsuarioRequiereAdmin(t *testing.T) {
	svc, sesion := entornoAuth(t)

	require.NoError(t, svc.Registrar(model.Usuario{
		Clave: "U002", Username: "jlarios", Password: "secreta", Nombre: "Juan", ApellidoPaterno: "Larios",
	}))

	cambio := model.Usuario{
		Clave: "U002", Username: "jlarios", Password: "secreta",
		Nombre: "Juan", ApellidoPaterno: "Larios", Telefono: "5551234567",
	}
	assert.ErrorIs(t, svc.ActualizarUsuario(cambio), ErrNoAutorizado)

	sesion.IniciarSesion(model.Usuario{Clave: "U001", Username: "admin", EsAdmin: true})
	require.NoError(t, svc.ActualizarUsuario(cambio))

	inexistente := cambio
	inexistente.Clave = "U404"
	assert.ErrorIs(t, svc.ActualizarUsuario(inexistente), ErrUsuarioNoEncontrado)
}
