package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. La creación siempre persiste COMPLETED;
// PENDING y CANCELLED solo aparecen vía actualización.
const (
	SalePending   = "PENDING"
	SaleCompleted = "COMPLETED"
	SaleCancelled = "CANCELLED"
)

// ValidSaleStatus indica si el estado pertenece al conjunto permitido.
func ValidSaleStatus(s string) bool {
	return s == SalePending || s == SaleCompleted || s == SaleCancelled
}

// Sale representa la cabecera de una venta: dueña exclusiva de sus líneas.
// Total es la suma de los subtotales de las líneas persistidas con ella.
type Sale struct {
	ID          int64
	UserID      int64
	Date        time.Time
	Total       decimal.Decimal
	Status      string
	UserName    string // solo lectura (join con users); vacío si el usuario fue eliminado
	UserSurname string // solo lectura (join con users)
	Details     []*SaleDetail
}

// SaleDetail representa una línea de venta. SaleID se estampa al crear la venta,
// nunca lo aporta el cliente. Subtotal llega del cliente y no se recalcula.
type SaleDetail struct {
	ID          int64
	SaleID      int64
	Barcode     int64
	Quantity    int
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	Subtotal    decimal.Decimal
	ProductName string // solo lectura (join con products)
}
