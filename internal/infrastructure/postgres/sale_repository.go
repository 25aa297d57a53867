package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/entity"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Para escrituras de venta completa se construye sobre la tx (ver TxRunner).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// LEFT JOIN: una venta cuyo usuario fue eliminado sigue siendo legible.
const saleSelect = `
	SELECT s.id, s.user_id, s.date, s.total, s.status,
	       COALESCE(u.name, ''), COALESCE(u.surname, '')
	FROM sales s
	LEFT JOIN users u ON s.user_id = u.id`

const detailSelect = `
	SELECT d.id, d.sale_id, d.barcode, d.quantity, d.unit_price, d.discount, d.subtotal,
	       COALESCE(p.name, '')
	FROM sale_details d
	LEFT JOIN products p ON d.barcode = p.barcode`

// Create persiste la cabecera y asigna sale.ID.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO sales (user_id, date, total, status) VALUES ($1, $2, $3, $4) RETURNING id`,
		sale.UserID, sale.Date, sale.Total, sale.Status,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea ya estampada con su SaleID.
func (r *SaleRepo) CreateDetail(detail *entity.SaleDetail) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO sale_details (sale_id, barcode, quantity, unit_price, discount, subtotal)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		detail.SaleID, detail.Barcode, detail.Quantity, detail.UnitPrice, detail.Discount, detail.Subtotal,
	).Scan(&detail.ID)
	if err != nil {
		return fmt.Errorf("insert sale detail: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera con el nombre del usuario; (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), saleSelect+` WHERE s.id = $1`, id).Scan(
		&s.ID, &s.UserID, &s.Date, &s.Total, &s.Status, &s.UserName, &s.UserSurname,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List devuelve todas las ventas, fecha descendente.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), saleSelect+` ORDER BY s.date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.UserID, &s.Date, &s.Total, &s.Status,
			&s.UserName, &s.UserSurname); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update reemplaza usuario, total y status de la cabecera.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET user_id = $2, total = $3, status = $4 WHERE id = $1`,
		sale.ID, sale.UserID, sale.Total, sale.Status,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina solo la cabecera; las líneas dependen del FK configurado en el store.
func (r *SaleRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// GetDetailsBySaleID devuelve las líneas de una venta en orden de inserción.
func (r *SaleRepo) GetDetailsBySaleID(saleID int64) ([]*entity.SaleDetail, error) {
	return r.listDetails(detailSelect+` WHERE d.sale_id = $1 ORDER BY d.id`, saleID)
}

// ListDetails devuelve todas las líneas, detalle_id descendente (orden global de listado).
func (r *SaleRepo) ListDetails() ([]*entity.SaleDetail, error) {
	return r.listDetails(detailSelect + ` ORDER BY d.id DESC`)
}

// GetDetailByID devuelve una línea por id; (nil, nil) si no existe.
func (r *SaleRepo) GetDetailByID(id int64) (*entity.SaleDetail, error) {
	var d entity.SaleDetail
	err := r.q.QueryRow(context.Background(), detailSelect+` WHERE d.id = $1`, id).Scan(
		&d.ID, &d.SaleID, &d.Barcode, &d.Quantity, &d.UnitPrice, &d.Discount, &d.Subtotal, &d.ProductName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale detail: %w", err)
	}
	return &d, nil
}

func (r *SaleRepo) listDetails(query string, args ...any) ([]*entity.SaleDetail, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sale details: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(&d.ID, &d.SaleID, &d.Barcode, &d.Quantity, &d.UnitPrice,
			&d.Discount, &d.Subtotal, &d.ProductName); err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
