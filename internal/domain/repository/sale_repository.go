package repository

import "github.com/Dumstain/GPSBackendFarmacia/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
// Create y CreateDetail se invocan dentro de una transacción (ver TxRunner):
// la cabecera y todas sus líneas se confirman o se revierten juntas.
type SaleRepository interface {
	// Create persiste la cabecera y asigna sale.ID.
	Create(sale *entity.Sale) error
	// CreateDetail persiste una línea ya estampada con su SaleID.
	CreateDetail(detail *entity.SaleDetail) error
	// GetByID devuelve la cabecera con el nombre del usuario joineado; (nil, nil) si no existe.
	GetByID(id int64) (*entity.Sale, error)
	// List devuelve todas las ventas (join usuario) ordenadas por fecha descendente.
	List() ([]*entity.Sale, error)
	// Update reemplaza usuario, total y status de la cabecera.
	Update(sale *entity.Sale) error
	// Delete elimina solo la cabecera; las líneas quedan a cargo del FK del store.
	Delete(id int64) error
	// GetDetailsBySaleID devuelve las líneas de una venta en orden de inserción,
	// cada una con el nombre del producto joineado.
	GetDetailsBySaleID(saleID int64) ([]*entity.SaleDetail, error)
	// ListDetails devuelve todas las líneas (join producto) por detalle_id descendente.
	ListDetails() ([]*entity.SaleDetail, error)
	// GetDetailByID devuelve una línea por id; (nil, nil) si no existe.
	GetDetailByID(id int64) (*entity.SaleDetail, error)
}
