package ports

import "context"

// AssetStore contrato del almacén de binarios (imágenes de producto).
// Put sube el contenido bajo key y devuelve la referencia estable (URL)
// que se guarda tal cual en el registro del producto.
type AssetStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}
