package crm

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// RegisterSale registra una venta en el libro general. Fecha cero = ahora.
func (s *Service) RegisterSale(product string, amount decimal.Decimal, date time.Time) (*entity.Sale, error) {
	sale, err := s.ledger.Create(product, amount, s.at(date))
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int("venta", sale.ID).Str("producto", product).Msg("venta registrada")
	return sale, nil
}

// RegisterClientSale registra una venta directa del cliente. La
// secuencia de identidad es propia, independiente del libro general.
// Cliente inexistente: no-op silencioso, devuelve (nil, nil). Datos
// inválidos: error de validación.
func (s *Service) RegisterClientSale(clientID int, product string, amount decimal.Decimal, date time.Time) (*entity.Sale, error) {
	c, ok := s.clients.Find(clientID)
	if !ok {
		return nil, nil
	}
	sale, err := entity.NewSale(product, amount, s.at(date))
	if err != nil {
		return nil, err
	}
	s.clientSaleSeq++
	sale.AssignID(s.clientSaleSeq)
	if err := c.AddSale(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// TotalSalesInRange suma las ventas del libro general con
// start <= fecha <= end, ambos extremos inclusive.
func (s *Service) TotalSalesInRange(start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range s.ledger.InRange(start, end) {
		total = total.Add(sale.Amount)
	}
	return total
}

// SalesRangeReport arma el reporte del rango para presentación.
func (s *Service) SalesRangeReport(start, end time.Time) dto.SalesRangeReport {
	sales := s.ledger.InRange(start, end)
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Amount)
	}
	return dto.SalesRangeReport{Start: start, End: end, Count: len(sales), Total: total}
}

// ClientsByTotalSales filtra clientes por su total de ventas directas.
// above=true devuelve los que superan el umbral; above=false, los que
// quedan por debajo. El umbral exacto no entra en ningún caso.
func (s *Service) ClientsByTotalSales(threshold decimal.Decimal, above bool) []*entity.Client {
	var out []*entity.Client
	for _, c := range s.clients.All() {
		total := c.TotalSales()
		if (above && total.GreaterThan(threshold)) || (!above && total.LessThan(threshold)) {
			out = append(out, c)
		}
	}
	return out
}
