package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto (claves de la tabla original).
type CreateProductRequest struct {
	Barcode    int64           `json:"codigo_barras" validate:"required,gt=0"`
	Name       string          `json:"nombre" validate:"required,max=100"`
	CategoryID *int64          `json:"categoria_id"`
	Units      int             `json:"unidades" validate:"gte=0"`
	Price      decimal.Decimal `json:"precio"`
	Discount   decimal.Decimal `json:"descuento"`
	Status     string          `json:"status" validate:"omitempty,oneof=ACTIVATED DEACTIVATED"`
}

// CreateProductResponse salida de la creación.
type CreateProductResponse struct {
	Message string `json:"message"`
	Barcode int64  `json:"codigo_barras"`
}

// UpdateProductRequest actualización parcial: solo se sobrescriben los campos presentes.
type UpdateProductRequest struct {
	Name       *string          `json:"nombre" validate:"omitempty,max=100"`
	CategoryID *int64           `json:"categoria_id"`
	Units      *int             `json:"unidades"`
	Price      *decimal.Decimal `json:"precio"`
	Discount   *decimal.Decimal `json:"descuento"`
	Status     *string          `json:"status" validate:"omitempty,oneof=ACTIVATED DEACTIVATED"`
}

// ProductResponse salida de un producto con su categoría joineada.
type ProductResponse struct {
	Barcode      int64           `json:"codigo_barras"`
	Name         string          `json:"nombre"`
	CategoryID   *int64          `json:"categoria_id"`
	CategoryName string          `json:"categoria,omitempty"`
	Units        int             `json:"unidades"`
	Price        decimal.Decimal `json:"precio"`
	Discount     decimal.Decimal `json:"descuento"`
	Date         time.Time       `json:"fecha"`
	Status       string          `json:"status"`
	ImageURL     string          `json:"imagen,omitempty"`
}

// UploadImageResponse referencia estable devuelta por el almacén de binarios.
type UploadImageResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"imagen"`
}
