package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"nombre" validate:"required,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   int64  `json:"categoria_id"`
	Name string `json:"nombre"`
}

// CreateCategoryResponse salida de la creación.
type CreateCategoryResponse struct {
	Message    string `json:"message"`
	CategoryID int64  `json:"categoria_id"`
}
