package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación en memoria del libro general de ventas.
type SaleRepo struct {
	store *Store[*entity.Sale]
}

// NewSaleRepository construye el adaptador con su store propio.
func NewSaleRepository() *SaleRepo {
	return &SaleRepo{store: NewStore[*entity.Sale]()}
}

// Create valida, construye y almacena una venta del libro general.
func (r *SaleRepo) Create(product string, amount decimal.Decimal, date time.Time) (*entity.Sale, error) {
	s, err := entity.NewSale(product, amount, date)
	if err != nil {
		return nil, err
	}
	if err := r.store.Add(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Find obtiene una venta por identidad.
func (r *SaleRepo) Find(id int) (*entity.Sale, bool) { return r.store.Find(id) }

// Remove elimina por identidad.
func (r *SaleRepo) Remove(id int) { r.store.Remove(id) }

// All devuelve las ventas en orden de registro.
func (r *SaleRepo) All() []*entity.Sale { return r.store.All() }

// InRange devuelve las ventas con start <= fecha <= end, ambos extremos
// inclusive.
func (r *SaleRepo) InRange(start, end time.Time) []*entity.Sale {
	var out []*entity.Sale
	for _, s := range r.store.All() {
		if !s.Date.Before(start) && !s.Date.After(end) {
			out = append(out, s)
		}
	}
	return out
}
