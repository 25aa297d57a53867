package sales

import (
	"context"
	"time"

	"github.com/Dumstain/GPSBackendFarmacia/internal/application/dto"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/entity"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta fn dentro de una transacción del store, con un SaleRepository
// atado a esa transacción. Si fn retorna error se hace rollback de todo.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.SaleRepository) error) error
}

// UseCase gestiona ventas: cabecera + líneas como una unidad de consistencia.
type UseCase struct {
	tx   TxRunner
	repo repository.SaleRepository // lecturas fuera de transacción (atado al pool)
}

// New construye el caso de uso.
func New(tx TxRunner, repo repository.SaleRepository) *UseCase {
	return &UseCase{tx: tx, repo: repo}
}

// Create persiste la cabecera y todas sus líneas en UNA transacción: si la
// inserción de cualquier línea falla, la cabecera y las líneas previas se
// revierten. El total es la suma aritmética de los subtotales enviados; el
// sistema no los recalcula desde cantidad × precio − descuento. El status se
// fija en COMPLETED al crear. La operación no es idempotente: repetirla crea
// otra venta.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (int64, error) {
	if in.UserID <= 0 || len(in.Lines) == 0 {
		return 0, domain.ErrInvalidInput
	}
	total := decimal.Zero
	for _, line := range in.Lines {
		if line.Barcode <= 0 || line.Quantity < 1 {
			return 0, domain.ErrInvalidInput
		}
		if line.UnitPrice.IsNegative() || line.Discount.IsNegative() || line.Subtotal.IsNegative() {
			return 0, domain.ErrInvalidInput
		}
		total = total.Add(line.Subtotal)
	}

	sale := &entity.Sale{
		UserID: in.UserID,
		Date:   time.Now(),
		Total:  total,
		Status: entity.SaleCompleted,
	}
	err := uc.tx.Run(ctx, func(repo repository.SaleRepository) error {
		if err := repo.Create(sale); err != nil {
			return err
		}
		for _, line := range in.Lines {
			detail := &entity.SaleDetail{
				SaleID:    sale.ID,
				Barcode:   line.Barcode,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				Discount:  line.Discount,
				Subtotal:  line.Subtotal,
			}
			if err := repo.CreateDetail(detail); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sale.ID, nil
}

// GetByID arma la venta completa: cabecera (con el nombre del usuario) más sus
// líneas en orden de inserción, cada una con el nombre del producto joineado.
// Devuelve (nil, nil) si la cabecera no existe.
func (uc *UseCase) GetByID(id int64) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	details, err := uc.repo.GetDetailsBySaleID(id)
	if err != nil {
		return nil, err
	}
	out := toSaleResponse(sale)
	out.Lines = toLineResponses(details)
	return &out, nil
}

// List devuelve todas las cabeceras (join usuario, fecha descendente), sin líneas.
func (uc *UseCase) List() ([]dto.SaleResponse, error) {
	sales, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// Update reemplaza usuario, total y status de la cabecera. A diferencia de la
// actualización de usuarios y productos, esto NO es un merge: los tres campos
// quedan como lleguen.
func (uc *UseCase) Update(id int64, in dto.UpdateSaleRequest) error {
	if in.UserID <= 0 || !entity.ValidSaleStatus(in.Status) {
		return domain.ErrInvalidInput
	}
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	sale.UserID = in.UserID
	sale.Total = in.Total
	sale.Status = in.Status
	return uc.repo.Update(sale)
}

// Delete elimina solo la cabecera. Si las líneas sobreviven es decisión del
// FK del store, no de este componente.
func (uc *UseCase) Delete(id int64) error {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ListDetails devuelve todas las líneas de venta, detalle_id descendente.
func (uc *UseCase) ListDetails() ([]dto.SaleLineResponse, error) {
	details, err := uc.repo.ListDetails()
	if err != nil {
		return nil, err
	}
	return toLineResponses(details), nil
}

// GetDetailByID devuelve una línea concreta; (nil, nil) si no existe.
func (uc *UseCase) GetDetailByID(id int64) (*dto.SaleLineResponse, error) {
	detail, err := uc.repo.GetDetailByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, nil
	}
	out := toLineResponse(detail)
	return &out, nil
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		UserName:    s.UserName,
		UserSurname: s.UserSurname,
		Date:        s.Date,
		Total:       s.Total,
		Status:      s.Status,
		Lines:       []dto.SaleLineResponse{},
	}
}

func toLineResponse(d *entity.SaleDetail) dto.SaleLineResponse {
	return dto.SaleLineResponse{
		ID:          d.ID,
		SaleID:      d.SaleID,
		Barcode:     d.Barcode,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		Discount:    d.Discount,
		Subtotal:    d.Subtotal,
		ProductName: d.ProductName,
	}
}

func toLineResponses(details []*entity.SaleDetail) []dto.SaleLineResponse {
	out := make([]dto.SaleLineResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toLineResponse(d))
	}
	return out
}
