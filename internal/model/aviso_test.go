package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvisoVentanaCerrada(t *testing.T) {
	inicio := NuevaFechaHora(2024, 6, 1, 8, 0, 0)
	fin := NuevaFechaHora(2024, 6, 1, 20, 0, 0)
	aviso := Aviso{
		Titulo:      "Horario especial",
		Contenido:   "Cerramos temprano",
		FechaInicio: inicio,
		FechaFin:    fin,
		Activo:      true,
	}

	// Both interval ends are inclusive
	assert.True(t, aviso.ActivoEn(inicio))
	assert.True(t, aviso.ActivoEn(fin))
	assert.True(t, aviso.ActivoEn(NuevaFechaHora(2024, 6, 1, 12, 0, 0)))

	assert.False(t, aviso.ActivoEn(inicio.AgregarSegundos(-1)))
	assert.False(t, aviso.ActivoEn(fin.AgregarSegundos(1)))

	// The manual flag overrides the window entirely
	aviso.Activo = false
	assert.False(t, aviso.ActivoEn(inicio))
	assert.False(t, aviso.ActivoEn(fin))
	assert.False(t, aviso.ActivoEn(NuevaFechaHora(2024, 6, 1, 12, 0, 0)))
}

func TestEnumsRechazanValoresDesconocidos(t *testing.T) {
	var e Establecimiento
	require.NoError(t, json.Unmarshal([]byte(`"Ambos"`), &e))
	assert.Equal(t, EstablecimientoAmbos, e)
	assert.Error(t, json.Unmarshal([]byte(`"Sucursal"`), &e))

	var tipo TipoAviso
	require.NoError(t, json.Unmarshal([]byte(`"NoLaboral"`), &tipo))
	assert.Error(t, json.Unmarshal([]byte(`"Promocion"`), &tipo))

	var p Prioridad
	require.NoError(t, json.Unmarshal([]byte(`"Importante"`), &p))
	assert.Error(t, json.Unmarshal([]byte(`"Urgente"`), &p))

	var h Horario
	require.NoError(t, json.Unmarshal([]byte(`"Desayuno"`), &h))
	assert.Error(t, json.Unmarshal([]byte(`"Cena"`), &h))
}

func TestFechaHoraRoundTrip(t *testing.T) {
	original := NuevaFechaHora(2024, 6, 1, 8, 30, 15)
	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-01T08:30:15"`, string(data))

	var leida FechaHora
	require.NoError(t, json.Unmarshal(data, &leida))
	assert.True(t, leida.Igual(original))

	// Minute-precision input is accepted too
	var corta FechaHora
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-01T08:30"`), &corta))
	assert.True(t, corta.Igual(NuevaFechaHora(2024, 6, 1, 8, 30, 0)))

	var fecha Fecha
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-01"`), &fecha))
	out, err := json.Marshal(fecha)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-01"`, string(out))
}
