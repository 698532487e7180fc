package model

import (
	"encoding/json"
	"fmt"
)

// Horario is the meal period of a menu slot. Unrecognized values are
// rejected when a snapshot is decoded.
type Horario string

const (
	HorarioDesayuno Horario = "Desayuno"
	HorarioComida   Horario = "Comida"
)

func (h *Horario) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch Horario(s) {
	case HorarioDesayuno, HorarioComida:
		*h = Horario(s)
		return nil
	}
	return fmt.Errorf("horario desconocido: %q", s)
}

// Menu is one (date, meal period) slot of the weekly menu. It owns an
// ordered list of section assignments; the section definitions
// themselves live in their own collection and are resolved by id.
type Menu struct {
	ID                   int           `json:"ID"`
	Fecha                Fecha         `json:"Fecha"`
	DiaSemana            string        `json:"DiaSemana"`
	Horario              Horario       `json:"Horario"`
	NumeroSemana         int           `json:"NumeroSemana"`
	Anio                 int           `json:"Anio"`
	FechaCreacion        string        `json:"FechaCreacion"`
	Activo               bool          `json:"Activo"`
	IDUsuarioCreador     int           `json:"IDUsuarioCreador"`
	IDUsuarioModificador int           `json:"IDUsuarioModificador"`
	FechaModificacion    string        `json:"FechaModificacion,omitempty"`
	Secciones            []MenuSeccion `json:"Secciones"`
}

// MenuSeccion assigns a section to a menu slot, recording display order
// and audit metadata. NombreSeccion is a denormalized cache.
type MenuSeccion struct {
	ID              int    `json:"ID"`
	IDMenu          int    `json:"IDMenu"`
	IDSeccion       int    `json:"IDSeccion"`
	NombreSeccion   string `json:"NombreSeccion"`
	Orden           int    `json:"Orden"`
	IDUsuarioAsigno int    `json:"IDUsuarioAsigno"`
	FechaAsignacion string `json:"FechaAsignacion"`
}

func (m *Menu) AgregarSeccion(s MenuSeccion) {
	m.Secciones = append(m.Secciones, s)
}

func (m *Menu) EliminarSeccion(idSeccion int) {
	filtradas := m.Secciones[:0]
	for _, s := range m.Secciones {
		if s.IDSeccion != idSeccion {
			filtradas = append(filtradas, s)
		}
	}
	m.Secciones = filtradas
}

func (m *Menu) Seccion(idSeccion int) *MenuSeccion {
	for i := range m.Secciones {
		if m.Secciones[i].IDSeccion == idSeccion {
			return &m.Secciones[i]
		}
	}
	return nil
}

// RegistrarModificacion stamps the modifying user and today's date.
func (m *Menu) RegistrarModificacion(idUsuario int) {
	m.IDUsuarioModificador = idUsuario
	m.FechaModificacion = FechaHoy().String()
}

// Clon returns a deep copy including the owned section assignments.
func (m Menu) Clon() Menu {
	copia := m
	copia.Secciones = append([]MenuSeccion{}, m.Secciones...)
	return copia
}
