package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un producto en el catálogo.
const (
	ProductActivated   = "ACTIVATED"
	ProductDeactivated = "DEACTIVATED"
)

// Product representa un producto del catálogo, identificado por su código de barras.
// CategoryID es FK opcional; CategoryName se llena en lecturas con join.
type Product struct {
	Barcode      int64 // código de barras numérico, único
	Name         string
	CategoryID   *int64
	CategoryName string // solo lectura (join con categories)
	Units        int
	Price        decimal.Decimal
	Discount     decimal.Decimal
	Date         time.Time
	Status       string // ACTIVATED | DEACTIVATED
	ImageURL     string // referencia opaca devuelta por el almacén de binarios
}
