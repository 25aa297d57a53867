package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dumstain/GPSBackendFarmacia/internal/application/dto"
	"github.com/Dumstain/GPSBackendFarmacia/internal/application/usecase"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/entity"
)

// fakeProductRepo catálogo en memoria.
type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if _, ok := r.products[p.Barcode]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.products[p.Barcode] = &cp
	return nil
}

func (r *fakeProductRepo) GetByBarcode(barcode int64) (*entity.Product, error) {
	p, ok := r.products[barcode]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.Barcode]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.Barcode] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(barcode int64) error {
	delete(r.products, barcode)
	return nil
}

// fakeAssetStore registra la última subida y devuelve una URL determinista.
type fakeAssetStore struct {
	lastKey         string
	lastContentType string
	lastSize        int
}

func (s *fakeAssetStore) Put(_ context.Context, key, contentType string, data []byte) (string, error) {
	s.lastKey = key
	s.lastContentType = contentType
	s.lastSize = len(data)
	return "https://cdn.farmacia.mx/" + key, nil
}

func pdec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func createInput() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Barcode:  750100,
		Name:     "Paracetamol 500mg",
		Units:    30,
		Price:    decimal.RequireFromString("45.50"),
		Discount: decimal.RequireFromString("0"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_DefaultsYFechaDelServidor(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)

	out, err := uc.Create(createInput())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, entity.ProductActivated, out.Status, "sin status explícito se activa")
	assert.False(t, out.Date.IsZero(), "la fecha la pone el servidor")
}

func TestCreateProduct_BarcodeDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)

	_, err := uc.Create(createInput())
	require.NoError(t, err)

	_, err = uc.Create(createInput())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateProduct_PrecioNegativo(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)

	in := createInput()
	in.Price = decimal.RequireFromString("-1")
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — merge por campo presente
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProduct_SoloCamposPresentes(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)

	_, err := uc.Create(createInput())
	require.NoError(t, err)

	err = uc.Update(750100, dto.UpdateProductRequest{Price: pdec("39.90")})
	require.NoError(t, err)

	saved := repo.products[750100]
	assert.True(t, decimal.RequireFromString("39.90").Equal(saved.Price))
	assert.Equal(t, "Paracetamol 500mg", saved.Name, "nombre omitido se conserva")
	assert.Equal(t, 30, saved.Units, "unidades omitidas se conservan")
}

func TestUpdateProduct_NoExiste(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)

	err := uc.Update(999, dto.UpdateProductRequest{Price: pdec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// AttachImage
// ──────────────────────────────────────────────────────────────────────────────

func TestAttachImage_SinAlmacenConfigurado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)

	_, err := uc.Create(createInput())
	require.NoError(t, err)

	_, err = uc.AttachImage(context.Background(), 750100, "image/png", []byte{1, 2, 3})
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestAttachImage_SubeYGuardaURL(t *testing.T) {
	repo := newFakeProductRepo()
	store := &fakeAssetStore{}
	uc := usecase.NewProductUseCase(repo, store)

	_, err := uc.Create(createInput())
	require.NoError(t, err)

	url, err := uc.AttachImage(context.Background(), 750100, "image/png", []byte{1, 2, 3, 4})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(store.lastKey, "products/"), "las imágenes van bajo products/")
	assert.True(t, strings.HasSuffix(store.lastKey, ".png"), "la extensión sale del Content-Type")
	assert.Equal(t, "image/png", store.lastContentType)
	assert.Equal(t, 4, store.lastSize)

	// La URL devuelta por el almacén se guarda tal cual en el producto
	assert.Equal(t, url, repo.products[750100].ImageURL)
}

func TestAttachImage_ProductoNoExiste(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, &fakeAssetStore{})

	_, err := uc.AttachImage(context.Background(), 999, "image/png", []byte{1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
