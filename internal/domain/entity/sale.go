package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-pro/internal/domain"
)

// Sale representa una venta: del libro general o directa de un cliente.
// Las dos vidas son independientes y no comparten secuencia de identidad.
type Sale struct {
	ID      int
	Product string
	Amount  decimal.Decimal
	Date    time.Time
}

// NewSale valida producto no vacío y monto no negativo.
func NewSale(product string, amount decimal.Decimal, date time.Time) (*Sale, error) {
	if strings.TrimSpace(product) == "" {
		return nil, fmt.Errorf("venta: producto obligatorio: %w", domain.ErrInvalidInput)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("venta %q: monto negativo %s: %w", product, amount, domain.ErrInvalidInput)
	}
	return &Sale{Product: product, Amount: amount, Date: date}, nil
}

// EntityID devuelve la identidad de la venta.
func (s *Sale) EntityID() int { return s.ID }

// AssignID fija la identidad; la llama el store (o la fachada, para las
// ventas directas de cliente) al registrar.
func (s *Sale) AssignID(id int) { s.ID = id }
