package dto

type CrearClienteRequest struct {
	Nombre    string  `json:"nombre" validate:"required,min=2,max=120"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Correo    *string `json:"correo" validate:"omitempty,email"`
}

type ActualizarClienteRequest struct {
	Nombre    string  `json:"nombre" validate:"required,min=2,max=120"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Correo    *string `json:"correo" validate:"omitempty,email"`
}

type ClienteResponse struct {
	ID        uint    `json:"id"`
	Nombre    string  `json:"nombre"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Correo    *string `json:"correo"`
}
