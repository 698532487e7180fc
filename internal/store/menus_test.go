package store

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunLarU/super-journey/internal/model"
)

func nuevoMenuStore(t *testing.T) (MenuStore, string, string) {
	menus := rutaTemporal(t, "menus.json")
	secciones := rutaTemporal(t, "secciones_menu.json")
	return NewMenuStore(menus, secciones, zerolog.Nop()), menus, secciones
}

func TestGenerarMenusSemanaCompleta(t *testing.T) {
	s, _, _ := nuevoMenuStore(t)

	// 2024-06-03 es lunes de la semana ISO 23
	creados := s.GenerarMenusSemana(model.NuevaFecha(2024, 6, 3), 1)
	require.Len(t, creados, 14)

	for _, m := range creados {
		assert.True(t, m.Activo)
		assert.Equal(t, 23, m.NumeroSemana)
		assert.Equal(t, 2024, m.Anio)
		assert.Equal(t, 1, m.IDUsuarioCreador)
		require.NotNil(t, m.Secciones)
		assert.Empty(t, m.Secciones)
	}

	assert.Equal(t, "Lunes", creados[0].DiaSemana)
	assert.Equal(t, model.HorarioDesayuno, creados[0].Horario)
	assert.Equal(t, model.HorarioComida, creados[1].Horario)
	assert.Equal(t, "Domingo", creados[13].DiaSemana)

	assert.Len(t, s.MenusPorSemana(23, 2024), 14)
	assert.Len(t, s.MenusPorFecha(model.NuevaFecha(2024, 6, 5)), 2)
}

func TestMenuPorFechaYHorario(t *testing.T) {
	s, _, _ := nuevoMenuStore(t)
	s.GenerarMenusSemana(model.NuevaFecha(2024, 6, 3), 1)

	m := s.MenuPorFechaYHorario(model.NuevaFecha(2024, 6, 4), model.HorarioComida)
	require.NotNil(t, m)
	assert.Equal(t, "Martes", m.DiaSemana)

	assert.Nil(t, s.MenuPorFechaYHorario(model.NuevaFecha(2024, 6, 10), model.HorarioComida))
}

func TestMenuIDsIndependientesTrasRecarga(t *testing.T) {
	rutaMenus := rutaTemporal(t, "menus.json")
	rutaSecciones := rutaTemporal(t, "secciones_menu.json")
	s := NewMenuStore(rutaMenus, rutaSecciones, zerolog.Nop())

	menu := model.Menu{
		Fecha:   model.NuevaFecha(2024, 6, 3),
		Horario: model.HorarioDesayuno,
		Activo:  true,
	}
	s.AgregarMenu(&menu)
	assert.Equal(t, 1, menu.ID)

	seccion := model.SeccionMenu{Nombre: "Guisados", Activo: true}
	s.AgregarSeccion(&seccion)
	assert.Equal(t, 1, seccion.ID)

	// Cada colección lleva su propio consecutivo y lo retoma al recargar
	recargado := NewMenuStore(rutaMenus, rutaSecciones, zerolog.Nop())
	otroMenu := model.Menu{Fecha: model.NuevaFecha(2024, 6, 4), Horario: model.HorarioComida}
	recargado.AgregarMenu(&otroMenu)
	assert.Equal(t, 2, otroMenu.ID)

	otraSeccion := model.SeccionMenu{Nombre: "Bebidas"}
	recargado.AgregarSeccion(&otraSeccion)
	assert.Equal(t, 2, otraSeccion.ID)
}

func TestSeccionBusquedaYActivas(t *testing.T) {
	s, _, _ := nuevoMenuStore(t)
	s.AgregarSeccion(&model.SeccionMenu{Nombre: "Guisados", Activo: true})
	s.AgregarSeccion(&model.SeccionMenu{Nombre: "Postres", Activo: false})

	require.NotNil(t, s.SeccionPorNombre("guisados"))
	assert.Nil(t, s.SeccionPorNombre("Ensaladas"))
	assert.Len(t, s.SeccionesActivas(), 1)
	assert.Len(t, s.TodasSecciones(), 2)
}

func TestMenuActualizarYEliminar(t *testing.T) {
	s, _, _ := nuevoMenuStore(t)
	s.GenerarMenusSemana(model.NuevaFecha(2024, 6, 3), 1)

	m := s.MenuPorFechaYHorario(model.NuevaFecha(2024, 6, 3), model.HorarioDesayuno)
	require.NotNil(t, m)
	m.Activo = false
	s.ActualizarMenu(*m)
	assert.False(t, s.MenuPorID(m.ID).Activo)
	assert.Len(t, s.MenusActivos(), 13)

	s.EliminarMenu(m.ID)
	assert.Nil(t, s.MenuPorID(m.ID))
	assert.Len(t, s.TodosMenus(), 13)
}
