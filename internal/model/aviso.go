package model

import (
	"encoding/json"
	"fmt"
)

// Establecimiento: which venue an announcement applies to.
type Establecimiento string

const (
	EstablecimientoCafeteria Establecimiento = "Cafeteria"
	EstablecimientoCafecito  Establecimiento = "Cafecito"
	EstablecimientoAmbos     Establecimiento = "Ambos"
)

func (e *Establecimiento) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch Establecimiento(s) {
	case EstablecimientoCafeteria, EstablecimientoCafecito, EstablecimientoAmbos:
		*e = Establecimiento(s)
		return nil
	}
	return fmt.Errorf("establecimiento desconocido: %q", s)
}

// TipoAviso classifies an announcement.
type TipoAviso string

const (
	TipoAvisoGeneral   TipoAviso = "General"
	TipoAvisoHorario   TipoAviso = "Horario"
	TipoAvisoNoLaboral TipoAviso = "NoLaboral"
	TipoAvisoOferta    TipoAviso = "Oferta"
	TipoAvisoEvento    TipoAviso = "Evento"
)

func (t *TipoAviso) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch TipoAviso(s) {
	case TipoAvisoGeneral, TipoAvisoHorario, TipoAvisoNoLaboral, TipoAvisoOferta, TipoAvisoEvento:
		*t = TipoAviso(s)
		return nil
	}
	return fmt.Errorf("tipo de aviso desconocido: %q", s)
}

// Prioridad of an announcement.
type Prioridad string

const (
	PrioridadNormal     Prioridad = "Normal"
	PrioridadImportante Prioridad = "Importante"
)

func (p *Prioridad) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch Prioridad(s) {
	case PrioridadNormal, PrioridadImportante:
		*p = Prioridad(s)
		return nil
	}
	return fmt.Errorf("prioridad desconocida: %q", s)
}

// Aviso is a time-boxed notice shown on the user dashboard. Validity is
// the manual Activo flag AND the closed interval [FechaInicio, FechaFin];
// a past FechaFin never clears the flag by itself.
type Aviso struct {
	ID               int             `json:"ID"`
	Titulo           string          `json:"Titulo" validate:"required"`
	Contenido        string          `json:"Contenido" validate:"required"`
	Establecimiento  Establecimiento `json:"Establecimiento"`
	TipoAviso        TipoAviso       `json:"TipoAviso"`
	Prioridad        Prioridad       `json:"Prioridad"`
	FechaPublicacion FechaHora       `json:"FechaPublicacion"`
	FechaInicio      FechaHora       `json:"FechaInicio"`
	FechaFin         FechaHora       `json:"FechaFin"`
	IDUsuarioCreador string          `json:"IDUsuarioCreador"`
	Activo           bool            `json:"Activo"`
}

// ActivoEn reports whether the notice is enabled and the instant falls
// inside its validity window, both ends inclusive.
func (a Aviso) ActivoEn(fechaHora FechaHora) bool {
	return a.Activo &&
		!fechaHora.Before(a.FechaInicio.Time) &&
		!fechaHora.After(a.FechaFin.Time)
}

// Vigente reports whether the notice is valid right now.
func (a Aviso) Vigente() bool {
	return a.ActivoEn(Ahora())
}
