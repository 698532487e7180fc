package model

import "github.com/shopspring/decimal"

// Producto is a cafeteria product. It exclusively owns its ordered
// ingredient associations (with nested substitutes) and size variants;
// those nested records exist only inside the product's serialization.
type Producto struct {
	ID           int                   `json:"ID"`
	Nombre       string                `json:"Nombre" validate:"required"`
	Descripcion  string                `json:"Descripcion"`
	PrecioBase   decimal.Decimal       `json:"PrecioBase"`
	Categoria    *string               `json:"Categoria"`
	Gramaje      float64               `json:"Gramaje"`
	Calorias     float64               `json:"Calorias" validate:"gte=0"`
	URLFoto      *string               `json:"URLFoto"`
	Disponible   bool                  `json:"Disponible"`
	Ingredientes []ProductoIngrediente `json:"Ingredientes"`
	Tamanos      []TamanoProducto      `json:"Tamanos"`
}

// ProductoIngrediente links a catalog ingredient into a product,
// caching the display name so the UI never needs a second lookup.
type ProductoIngrediente struct {
	IDIngrediente     int         `json:"IDIngrediente"`
	NombreIngrediente string      `json:"NombreIngrediente"`
	Cantidad          float64     `json:"Cantidad"`
	Eliminable        bool        `json:"Eliminable"`
	Sustituible       bool        `json:"Sustituible"`
	Orden             int         `json:"Orden"`
	Sustitutos        []Sustituto `json:"Sustitutos"`
}

// Sustituto is an alternate ingredient offered in place of a product's
// default ingredient, at an optional extra cost.
type Sustituto struct {
	IDIngrediente     int             `json:"IDIngrediente"`
	NombreIngrediente string          `json:"NombreIngrediente"`
	CostoExtra        decimal.Decimal `json:"CostoExtra"`
	Disponible        bool            `json:"Disponible"`
}

// TamanoProducto is a purchasable size variant with its own price.
// Its ID is local to the owning product.
type TamanoProducto struct {
	ID          int             `json:"ID"`
	Nombre      string          `json:"Nombre" validate:"required"`
	Descripcion string          `json:"Descripcion"`
	Capacidad   float64         `json:"Capacidad"`
	Gramaje     float64         `json:"Gramaje"`
	Piezas      int             `json:"Piezas"`
	Precio      decimal.Decimal `json:"Precio"`
	Orden       int             `json:"Orden"`
	Disponible  bool            `json:"Disponible"`
}

func (p *Producto) AgregarIngrediente(pi ProductoIngrediente) {
	p.Ingredientes = append(p.Ingredientes, pi)
}

func (p *Producto) EliminarIngrediente(idIngrediente int) {
	filtrados := p.Ingredientes[:0]
	for _, pi := range p.Ingredientes {
		if pi.IDIngrediente != idIngrediente {
			filtrados = append(filtrados, pi)
		}
	}
	p.Ingredientes = filtrados
}

func (p *Producto) Ingrediente(idIngrediente int) *ProductoIngrediente {
	for i := range p.Ingredientes {
		if p.Ingredientes[i].IDIngrediente == idIngrediente {
			return &p.Ingredientes[i]
		}
	}
	return nil
}

func (p *Producto) AgregarTamano(t TamanoProducto) {
	p.Tamanos = append(p.Tamanos, t)
}

func (p *Producto) EliminarTamano(id int) {
	filtrados := p.Tamanos[:0]
	for _, t := range p.Tamanos {
		if t.ID != id {
			filtrados = append(filtrados, t)
		}
	}
	p.Tamanos = filtrados
}

func (p *Producto) Tamano(id int) *TamanoProducto {
	for i := range p.Tamanos {
		if p.Tamanos[i].ID == id {
			return &p.Tamanos[i]
		}
	}
	return nil
}

func (pi *ProductoIngrediente) AgregarSustituto(s Sustituto) {
	pi.Sustitutos = append(pi.Sustitutos, s)
}

func (pi *ProductoIngrediente) EliminarSustituto(idIngrediente int) {
	filtrados := pi.Sustitutos[:0]
	for _, s := range pi.Sustitutos {
		if s.IDIngrediente != idIngrediente {
			filtrados = append(filtrados, s)
		}
	}
	pi.Sustitutos = filtrados
}

// Clon returns a deep copy, nested lists included, so store state can
// never be mutated from outside the store's own methods.
func (p Producto) Clon() Producto {
	copia := p
	copia.Ingredientes = make([]ProductoIngrediente, len(p.Ingredientes))
	for i, pi := range p.Ingredientes {
		copia.Ingredientes[i] = pi
		copia.Ingredientes[i].Sustitutos = append([]Sustituto(nil), pi.Sustitutos...)
		if copia.Ingredientes[i].Sustitutos == nil {
			copia.Ingredientes[i].Sustitutos = []Sustituto{}
		}
	}
	copia.Tamanos = append([]TamanoProducto{}, p.Tamanos...)
	return copia
}
