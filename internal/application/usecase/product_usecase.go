package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Dumstain/GPSBackendFarmacia/internal/application/dto"
	"github.com/Dumstain/GPSBackendFarmacia/internal/application/ports"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/entity"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/repository"
	"github.com/google/uuid"
)

// ProductUseCase CRUD del catálogo de productos. assets puede ser nil (almacén deshabilitado).
type ProductUseCase struct {
	repo   repository.ProductRepository
	assets ports.AssetStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, assets ports.AssetStore) *ProductUseCase {
	return &ProductUseCase{repo: repo, assets: assets}
}

// Create crea un producto. Status por defecto ACTIVATED; la fecha la pone el servidor.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() || in.Discount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByBarcode(in.Barcode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	status := in.Status
	if status == "" {
		status = entity.ProductActivated
	}
	product := &entity.Product{
		Barcode:    in.Barcode,
		Name:       in.Name,
		CategoryID: in.CategoryID,
		Units:      in.Units,
		Price:      in.Price,
		Discount:   in.Discount,
		Date:       time.Now(),
		Status:     status,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// GetByBarcode devuelve un producto; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByBarcode(barcode int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	out := toProductResponse(product)
	return &out, nil
}

// List devuelve el catálogo completo con la categoría joineada.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update aplica un merge: solo los campos presentes en la petición sobrescriben.
func (uc *ProductUseCase) Update(barcode int64, in dto.UpdateProductRequest) error {
	product, err := uc.repo.GetByBarcode(barcode)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}
	if in.Units != nil {
		product.Units = *in.Units
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Discount != nil {
		if in.Discount.IsNegative() {
			return domain.ErrInvalidInput
		}
		product.Discount = *in.Discount
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	return uc.repo.Update(product)
}

// Delete elimina un producto por código de barras.
func (uc *ProductUseCase) Delete(barcode int64) error {
	product, err := uc.repo.GetByBarcode(barcode)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(barcode)
}

// AttachImage sube la imagen al almacén de binarios y guarda la URL devuelta
// tal cual en el producto. Falla con ErrUnavailable si el almacén no está configurado.
func (uc *ProductUseCase) AttachImage(ctx context.Context, barcode int64, contentType string, data []byte) (string, error) {
	if uc.assets == nil {
		return "", domain.ErrUnavailable
	}
	if len(data) == 0 {
		return "", domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByBarcode(barcode)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", domain.ErrNotFound
	}
	key := fmt.Sprintf("products/%s%s", uuid.New().String(), extensionFor(contentType))
	url, err := uc.assets.Put(ctx, key, contentType, data)
	if err != nil {
		return "", err
	}
	product.ImageURL = url
	if err := uc.repo.Update(product); err != nil {
		return "", err
	}
	return url, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		Barcode:      p.Barcode,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Units:        p.Units,
		Price:        p.Price,
		Discount:     p.Discount,
		Date:         p.Date,
		Status:       p.Status,
		ImageURL:     p.ImageURL,
	}
}
