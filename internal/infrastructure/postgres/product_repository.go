package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dumstain/GPSBackendFarmacia/internal/domain"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/entity"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Las lecturas llegan con el nombre de la categoría (LEFT JOIN: la FK es opcional).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `
	SELECT p.barcode, p.name, p.category_id, COALESCE(c.name, ''), p.units,
	       p.price, p.discount, p.date, p.status, COALESCE(p.image_url, '')
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id`

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (barcode, name, category_id, units, price, discount, date, status, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.Barcode, product.Name, product.CategoryID, product.Units,
		product.Price, product.Discount, product.Date, product.Status,
		nullIfEmpty(product.ImageURL),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByBarcode obtiene un producto por código de barras; (nil, nil) si no existe.
func (r *ProductRepo) GetByBarcode(barcode int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), productSelect+` WHERE p.barcode = $1`, barcode).Scan(
		&p.Barcode, &p.Name, &p.CategoryID, &p.CategoryName, &p.Units,
		&p.Price, &p.Discount, &p.Date, &p.Status, &p.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List devuelve el catálogo completo con la categoría joineada.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), productSelect+` ORDER BY p.barcode`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.Barcode, &p.Name, &p.CategoryID, &p.CategoryName, &p.Units,
			&p.Price, &p.Discount, &p.Date, &p.Status, &p.ImageURL); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update sobrescribe todos los campos del producto (el merge se hace en el use case).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category_id = $3, units = $4, price = $5, discount = $6,
		    status = $7, image_url = $8
		WHERE barcode = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.Barcode, product.Name, product.CategoryID, product.Units,
		product.Price, product.Discount, product.Status, nullIfEmpty(product.ImageURL),
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por código de barras.
func (r *ProductRepo) Delete(barcode int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE barcode = $1`, barcode)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
