package dto

type CrearCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=80"`
}

type CrearSubcategoriaRequest struct {
	Nombre      string `json:"nombre"       validate:"required,min=2,max=80"`
	CategoriaID uint   `json:"categoria_id" validate:"required"`
}

type CrearPresentacionRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=80"`
}

type OpcionResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

type SubcategoriaResponse struct {
	ID          uint   `json:"id"`
	Nombre      string `json:"nombre"`
	CategoriaID uint   `json:"categoria_id"`
}

// SelectOptionsResponse feeds the product form's three dropdowns in one call.
type SelectOptionsResponse struct {
	Categorias     []OpcionResponse       `json:"categorias"`
	Subcategorias  []SubcategoriaResponse `json:"subcategorias"`
	Presentaciones []OpcionResponse       `json:"presentaciones"`
}
