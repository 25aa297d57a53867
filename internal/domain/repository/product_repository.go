package repository

import "github.com/Dumstain/GPSBackendFarmacia/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// La clave es el código de barras; las lecturas llegan con la categoría joineada.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByBarcode(barcode int64) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(barcode int64) error
}
