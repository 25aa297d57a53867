package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineInput línea de venta tal como la envía el cliente.
// El subtotal llega calculado; el sistema lo suma pero no lo recalcula.
type SaleLineInput struct {
	Barcode   int64           `json:"codigo_barras" validate:"required,gt=0"`
	Quantity  int             `json:"cantidad" validate:"required,gte=1"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Discount  decimal.Decimal `json:"descuento_aplicado"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CreateSaleRequest cabecera + líneas; lines debe ser un arreglo no vacío.
type CreateSaleRequest struct {
	UserID int64           `json:"userId" validate:"required,gt=0"`
	Lines  []SaleLineInput `json:"lines" validate:"required,min=1,dive"`
}

// CreateSaleResponse salida de la creación.
type CreateSaleResponse struct {
	Message string `json:"message"`
	SaleID  int64  `json:"saleId"`
}

// UpdateSaleRequest reemplazo completo de los tres campos de la cabecera.
// A diferencia de usuarios y productos, lo omitido NO se conserva.
type UpdateSaleRequest struct {
	UserID int64           `json:"userId" validate:"required,gt=0"`
	Total  decimal.Decimal `json:"total"`
	Status string          `json:"status" validate:"required,oneof=PENDING COMPLETED CANCELLED"`
}

// SaleLineResponse línea de venta enriquecida con el nombre del producto.
type SaleLineResponse struct {
	ID          int64           `json:"detalle_id"`
	SaleID      int64           `json:"venta_id"`
	Barcode     int64           `json:"codigo_barras"`
	Quantity    int             `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Discount    decimal.Decimal `json:"descuento_aplicado"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ProductName string          `json:"nombre_producto,omitempty"`
}

// SaleResponse cabecera con sus líneas embebidas en orden de inserción.
type SaleResponse struct {
	ID          int64              `json:"id"`
	UserID      int64              `json:"userId"`
	UserName    string             `json:"nombre_usuario,omitempty"`
	UserSurname string             `json:"apellido_usuario,omitempty"`
	Date        time.Time          `json:"fecha"`
	Total       decimal.Decimal    `json:"total"`
	Status      string             `json:"status"`
	Lines       []SaleLineResponse `json:"lines"`
}
