package model

// SeccionMenu is a reusable, named, colored grouping of products that
// can be attached to any number of weekly menu slots. It owns its
// ordered product references.
type SeccionMenu struct {
	ID            int               `json:"ID"`
	Nombre        string            `json:"Nombre" validate:"required"`
	Descripcion   string            `json:"Descripcion"`
	URLFoto       string            `json:"URLFoto"`
	Color         string            `json:"Color" validate:"omitempty,hexcolor"`
	Activo        bool              `json:"Activo"`
	FechaCreacion string            `json:"FechaCreacion"`
	Productos     []SeccionProducto `json:"Productos"`
}

// SeccionProducto is a product reference inside a section, with display
// order and a featured flag. NombreProducto is a denormalized cache; it
// is not kept in sync with the product catalog.
type SeccionProducto struct {
	ID             int    `json:"ID"`
	IDSeccion      int    `json:"IDSeccion"`
	IDProducto     int    `json:"IDProducto"`
	NombreProducto string `json:"NombreProducto"`
	Orden          int    `json:"Orden"`
	Destacado      bool   `json:"Destacado"`
}

func (s *SeccionMenu) AgregarProducto(p SeccionProducto) {
	s.Productos = append(s.Productos, p)
}

func (s *SeccionMenu) EliminarProducto(idProducto int) {
	filtrados := s.Productos[:0]
	for _, p := range s.Productos {
		if p.IDProducto != idProducto {
			filtrados = append(filtrados, p)
		}
	}
	s.Productos = filtrados
}

func (s *SeccionMenu) Producto(idProducto int) *SeccionProducto {
	for i := range s.Productos {
		if s.Productos[i].IDProducto == idProducto {
			return &s.Productos[i]
		}
	}
	return nil
}

// Clon returns a deep copy including the owned product list.
func (s SeccionMenu) Clon() SeccionMenu {
	copia := s
	copia.Productos = append([]SeccionProducto{}, s.Productos...)
	return copia
}
