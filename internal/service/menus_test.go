package service

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunLarU/super-journey/internal/model"
	"github.com/JunLarU/super-journey/internal/session"
	"github.com/JunLarU/super-journey/internal/store"
)

func entornoMenus(t *testing.T) (MenuService, store.MenuStore, store.ProductoStore, *session.Contexto) {
	dir := t.TempDir()
	menus := store.NewMenuStore(
		filepath.Join(dir, "menus.json"),
		filepath.Join(dir, "secciones_menu.json"),
		zerolog.Nop(),
	)
	productos := store.NewProductoStore(filepath.Join(dir, "productos.json"), zerolog.Nop())
	sesion := session.NewContexto()
	sesion.IniciarSesion(model.Usuario{Clave: "U001", Username: "admin", EsAdmin: true})
	return NewMenuService(menus, productos, sesion), menus, productos, sesion
}

func TestGenerarSemanaRequiereAdmin(t *testing.T) {
	svc, _, _, sesion := entornoMenus(t)

	sesion.CerrarSesion()
	_, err := svc.GenerarSemana(model.NuevaFecha(2024, 6, 3), 1)
	assert.ErrorIs(t, err, ErrNoAutorizado)

	sesion.IniciarSesion(model.Usuario{Clave: "U002", Username: "cliente"})
	_, err = svc.GenerarSemana(model.NuevaFecha(2024, 6, 3), 2)
	assert.ErrorIs(t, err, ErrNoAutorizado)

	sesion.IniciarSesion(model.Usuario{Clave: "U001", Username: "admin", EsAdmin: true})
	creados, err := svc.GenerarSemana(model.NuevaFecha(2024, 6, 3), 1)
	require.NoError(t, err)
	assert.Len(t, creados, 14)
	assert.True(t, svc.ExisteMenuPara(model.NuevaFecha(2024, 6, 3), model.HorarioDesayuno))
}

func TestCrearSeccionRechazaNombreDuplicado(t *testing.T) {
	svc, _, _, _ := entornoMenus(t)

	creada, err := svc.CrearSeccion(model.SeccionMenu{Nombre: "Guisados", Color: "#AA5500", Activo: true})
	require.NoError(t, err)
	assert.NotZero(t, creada.ID)
	assert.NotEmpty(t, creada.FechaCreacion)

	_, err = svc.CrearSeccion(model.SeccionMenu{Nombre: "guisados"})
	assert.ErrorIs(t, err, ErrNombreDuplicado)

	// La misma sección puede actualizarse conservando su nombre
	creada.Descripcion = "Platillos calientes"
	assert.NoError(t, svc.ActualizarSeccion(*creada))

	_, err = svc.CrearSeccion(model.SeccionMenu{Nombre: "Postres", Color: "no-es-color"})
	assert.Error(t, err)
}

func TestAsignarSeccionEstampaAuditoria(t *testing.T) {
	svc, menus, _, _ := entornoMenus(t)

	creados, err := svc.GenerarSemana(model.NuevaFecha(2024, 6, 3), 1)
	require.NoError(t, err)
	idMenu := creados[0].ID

	sec, err := svc.CrearSeccion(model.SeccionMenu{Nombre: "Guisados", Activo: true})
	require.NoError(t, err)

	require.NoError(t, svc.AsignarSeccion(idMenu, sec.ID, 1, 5))

	menu := menus.MenuPorID(idMenu)
	require.Len(t, menu.Secciones, 1)
	asignacion := menu.Secciones[0]
	assert.Equal(t, sec.Nombre, asignacion.NombreSeccion)
	assert.Equal(t, 5, asignacion.IDUsuarioAsigno)
	assert.NotEmpty(t, asignacion.FechaAsignacion)
	assert.Equal(t, 5, menu.IDUsuarioModificador)
	assert.NotEmpty(t, menu.FechaModificacion)

	assert.ErrorIs(t, svc.AsignarSeccion(999, sec.ID, 1, 5), ErrNoEncontrado)
	assert.ErrorIs(t, svc.AsignarSeccion(idMenu, 999, 1, 5), ErrNoEncontrado)

	require.NoError(t, svc.QuitarSeccion(idMenu, sec.ID, 5))
	assert.Empty(t, menus.MenuPorID(idMenu).Secciones)
}

func TestResolverMenuDosNiveles(t *testing.T) {
	svc, _, productos, _ := entornoMenus(t)

	p1 := model.Producto{Nombre: "Enchiladas", PrecioBase: decimal.RequireFromString("55.00"), Disponible: true}
	p2 := model.Producto{Nombre: "Chilaquiles", PrecioBase: decimal.RequireFromString("48.00"), Disponible: true}
	productos.Agregar(&p1)
	productos.Agregar(&p2)

	sec, err := svc.CrearSeccion(model.SeccionMenu{Nombre: "Guisados", Activo: true})
	require.NoError(t, err)

	// P2 va primero aunque se agregó después: manda el campo Orden
	sec.AgregarProducto(model.SeccionProducto{IDSeccion: sec.ID, IDProducto: p1.ID, NombreProducto: p1.Nombre, Orden: 2})
	sec.AgregarProducto(model.SeccionProducto{IDSeccion: sec.ID, IDProducto: p2.ID, NombreProducto: p2.Nombre, Orden: 1})
	require.NoError(t, svc.ActualizarSeccion(*sec))

	creados, err := svc.GenerarSemana(model.NuevaFecha(2024, 6, 3), 1)
	require.NoError(t, err)
	idMenu := creados[0].ID
	require.NoError(t, svc.AsignarSeccion(idMenu, sec.ID, 1, 1))

	resueltas, err := svc.ResolverMenu(idMenu)
	require.NoError(t, err)
	require.Len(t, resueltas, 1)
	require.Len(t, resueltas[0].Productos, 2)
	assert.Equal(t, "Chilaquiles", resueltas[0].Productos[0].Producto.Nombre)
	assert.Equal(t, "Enchiladas", resueltas[0].Productos[1].Producto.Nombre)

	// Un cambio de precio en el catálogo se refleja sin tocar menú ni sección
	p1.PrecioBase = decimal.RequireFromString("60.00")
	productos.Actualizar(p1)
	resueltas, err = svc.ResolverMenu(idMenu)
	require.NoError(t, err)
	assert.True(t, resueltas[0].Productos[1].Producto.PrecioBase.Equal(decimal.RequireFromString("60.00")))
}

func TestResolverMenuOmiteReferenciasColgantes(t *testing.T) {
	svc, _, productos, _ := entornoMenus(t)

	p := model.Producto{Nombre: "Tamal", PrecioBase: decimal.RequireFromString("20.00"), Disponible: true}
	productos.Agregar(&p)

	sec, err := svc.CrearSeccion(model.SeccionMenu{Nombre: "Antojitos", Activo: true})
	require.NoError(t, err)
	sec.AgregarProducto(model.SeccionProducto{IDSeccion: sec.ID, IDProducto: p.ID, Orden: 1})
	sec.AgregarProducto(model.SeccionProducto{IDSeccion: sec.ID, IDProducto: 999, Orden: 2})
	require.NoError(t, svc.ActualizarSeccion(*sec))

	otra, err := svc.CrearSeccion(model.SeccionMenu{Nombre: "Temporal", Activo: true})
	require.NoError(t, err)

	creados, err := svc.GenerarSemana(model.NuevaFecha(2024, 6, 3), 1)
	require.NoError(t, err)
	idMenu := creados[0].ID
	require.NoError(t, svc.AsignarSeccion(idMenu, sec.ID, 1, 1))
	require.NoError(t, svc.AsignarSeccion(idMenu, otra.ID, 2, 1))

	// La sección eliminada y el producto inexistente desaparecen del resultado
	require.NoError(t, svc.EliminarSeccion(otra.ID))

	resueltas, err := svc.ResolverMenu(idMenu)
	require.NoError(t, err)
	require.Len(t, resueltas, 1)
	assert.Equal(t, "Antojitos", resueltas[0].Seccion.Nombre)
	require.Len(t, resueltas[0].Productos, 1)
	assert.Equal(t, "Tamal", resueltas[0].Productos[0].Producto.Nombre)

	_, err = svc.ResolverMenu(12345)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}
