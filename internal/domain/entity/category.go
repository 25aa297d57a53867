package entity

// Category representa una categoría de productos.
// Eliminar una categoría no elimina en cascada sus productos.
type Category struct {
	ID   int64
	Name string
}
