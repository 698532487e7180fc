package model

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	formatoFecha          = "2006-01-02"
	formatoFechaHora      = "2006-01-02T15:04:05"
	formatoFechaHoraCorto = "2006-01-02T15:04"
)

// Fecha es una fecha de calendario sin componente horario.
// Se serializa como "2006-01-02".
type Fecha struct {
	time.Time
}

func NuevaFecha(anio int, mes time.Month, dia int) Fecha {
	return Fecha{time.Date(anio, mes, dia, 0, 0, 0, 0, time.Local)}
}

func FechaHoy() Fecha {
	ahora := time.Now()
	return NuevaFecha(ahora.Year(), ahora.Month(), ahora.Day())
}

func (f Fecha) AgregarDias(dias int) Fecha {
	t := f.AddDate(0, 0, dias)
	return NuevaFecha(t.Year(), t.Month(), t.Day())
}

func (f Fecha) Igual(otra Fecha) bool {
	return f.Year() == otra.Year() && f.YearDay() == otra.YearDay()
}

func (f Fecha) String() string {
	return f.Format(formatoFecha)
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.ParseInLocation(formatoFecha, s, time.Local)
	if err != nil {
		return errors.New("fecha inválida: " + s)
	}
	f.Time = t
	return nil
}

// FechaHora es un instante con precisión de segundos, sin zona horaria
// en el JSON. Se serializa como "2006-01-02T15:04:05" y al leer acepta
// también valores con precisión de minutos.
type FechaHora struct {
	time.Time
}

func NuevaFechaHora(anio int, mes time.Month, dia, hora, minuto, segundo int) FechaHora {
	return FechaHora{time.Date(anio, mes, dia, hora, minuto, segundo, 0, time.Local)}
}

func Ahora() FechaHora {
	ahora := time.Now()
	return NuevaFechaHora(ahora.Year(), ahora.Month(), ahora.Day(), ahora.Hour(), ahora.Minute(), ahora.Second())
}

func (fh FechaHora) AgregarDias(dias int) FechaHora {
	return FechaHora{fh.AddDate(0, 0, dias)}
}

func (fh FechaHora) AgregarSegundos(segundos int) FechaHora {
	return FechaHora{fh.Add(time.Duration(segundos) * time.Second)}
}

func (fh FechaHora) Igual(otra FechaHora) bool {
	return fh.Time.Equal(otra.Time)
}

func (fh FechaHora) String() string {
	return fh.Format(formatoFechaHora)
}

func (fh FechaHora) MarshalJSON() ([]byte, error) {
	return json.Marshal(fh.String())
}

func (fh *FechaHora) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.ParseInLocation(formatoFechaHora, s, time.Local)
	if err != nil {
		t, err = time.ParseInLocation(formatoFechaHoraCorto, s, time.Local)
	}
	if err != nil {
		return errors.New("fecha y hora inválidas: " + s)
	}
	fh.Time = t
	return nil
}

var diasSemana = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// DiaSemanaEspanol devuelve el nombre en español del día de la semana.
func DiaSemanaEspanol(dia time.Weekday) string {
	return diasSemana[dia]
}
