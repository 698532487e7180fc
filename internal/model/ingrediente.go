package model

// Ingrediente is a catalog ingredient. Nombre acts as a secondary
// natural key: callers check for duplicates before inserting, the
// store itself does not enforce uniqueness.
type Ingrediente struct {
	ID          int     `json:"ID"`
	Nombre      string  `json:"Nombre" validate:"required"`
	Categoria   *string `json:"categoria"`
	Descripcion string  `json:"Descripcion"`
	Calorias    float64 `json:"Calorias" validate:"gte=0"`
	Alergenico  bool    `json:"Alergeno"`
}
