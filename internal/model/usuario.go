package model

// Usuario stores cafeteria accounts (regular users and admins).
// Clave is the business-facing key used for login and admin lookup;
// passwords are stored and compared in plain text by design.
type Usuario struct {
	Clave           string `json:"clave" validate:"required"`
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required"`
	EsAdmin         bool   `json:"isAdmin"`
	Nombre          string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"omitempty,email"`
	Telefono        string `json:"phone"`
	ApellidoPaterno string `json:"apellidoPaterno" validate:"required"`
	ApellidoMaterno string `json:"apellidoMaterno"`
}

// NombreCompleto joins the display name with both surnames; the
// maternal surname is optional.
func (u Usuario) NombreCompleto() string {
	nombre := u.Nombre + " " + u.ApellidoPaterno
	if u.ApellidoMaterno != "" {
		nombre += " " + u.ApellidoMaterno
	}
	return nombre
}
