package model

import "github.com/shopspring/decimal"

// ProductoEspecial is a time-boxed special price override for one
// product. It shares the Aviso validity pattern: the Activo flag AND
// the closed interval [FechaInicio, FechaFin].
type ProductoEspecial struct {
	ID             int             `json:"ID"`
	IDProducto     int             `json:"IDProducto" validate:"required"`
	FechaInicio    FechaHora       `json:"FechaInicio"`
	FechaFin       FechaHora       `json:"FechaFin"`
	Descripcion    string          `json:"Descripcion"`
	PrecioEspecial decimal.Decimal `json:"PrecioEspecial"`
	Activo         bool            `json:"Activo"`
}

// ActivoEn reports whether the override is enabled and the instant
// falls inside its validity window, both ends inclusive.
func (pe ProductoEspecial) ActivoEn(fechaHora FechaHora) bool {
	return pe.Activo &&
		!fechaHora.Before(pe.FechaInicio.Time) &&
		!fechaHora.After(pe.FechaFin.Time)
}

// Vigente reports whether the override is valid right now.
func (pe ProductoEspecial) Vigente() bool {
	return pe.ActivoEn(Ahora())
}
