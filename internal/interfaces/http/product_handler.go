package http

import (
	"errors"
	"strconv"

	"github.com/Dumstain/GPSBackendFarmacia/internal/application/dto"
	"github.com/Dumstain/GPSBackendFarmacia/internal/application/usecase"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// maxImageBytes límite del cuerpo para la subida de imagen (5 MiB).
const maxImageBytes = 5 << 20

// ProductHandler maneja el CRUD del catálogo y la subida de imagen.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// barcodeParam parsea el código de barras de la ruta (int64, puede exceder int32).
func barcodeParam(c *fiber.Ctx) (int64, bool) {
	barcode, err := strconv.ParseInt(c.Params("barcode"), 10, 64)
	if err != nil || barcode <= 0 {
		return 0, false
	}
	return barcode, true
}

// Create crea un producto.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		if verrs := validationErrors(err); verrs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(verrs)
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código de barras ya existe"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		log.Error().Err(err).Msg("crear producto falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByBarcode devuelve un producto por código de barras.
func (h *ProductHandler) GetByBarcode(c *fiber.Ctx) error {
	barcode, ok := barcodeParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "código de barras inválido"})
	}
	out, err := h.uc.GetByBarcode(barcode)
	if err != nil {
		log.Error().Err(err).Int64("barcode", barcode).Msg("obtener producto falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// List devuelve el catálogo completo.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		log.Error().Err(err).Msg("listar productos falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Update aplica un merge sobre los campos presentes.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	barcode, ok := barcodeParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "código de barras inválido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		if verrs := validationErrors(err); verrs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(verrs)
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if err := h.uc.Update(barcode, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		log.Error().Err(err).Int64("barcode", barcode).Msg("actualizar producto falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(fiber.Map{"message": "producto actualizado"})
}

// Delete elimina un producto.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	barcode, ok := barcodeParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "código de barras inválido"})
	}
	if err := h.uc.Delete(barcode); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		log.Error().Err(err).Int64("barcode", barcode).Msg("eliminar producto falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(fiber.Map{"message": "producto eliminado"})
}

// UploadImage recibe los bytes de la imagen en el cuerpo (Content-Type de imagen),
// los sube al almacén de binarios y guarda la URL devuelta en el producto.
// 503 si el almacén no está configurado.
func (h *ProductHandler) UploadImage(c *fiber.Ctx) error {
	barcode, ok := barcodeParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "código de barras inválido"})
	}
	data := c.Body()
	if len(data) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BODY", Message: "imagen vacía"})
	}
	if len(data) > maxImageBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "TOO_LARGE", Message: "imagen demasiado grande"})
	}
	url, err := h.uc.AttachImage(c.Context(), barcode, c.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_UNAVAILABLE", Message: "almacén de imágenes no configurado"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "imagen inválida"})
		}
		log.Error().Err(err).Int64("barcode", barcode).Msg("subir imagen falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(dto.UploadImageResponse{Message: "imagen actualizada", ImageURL: url})
}
