package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// SaleRepository puerto de persistencia para el libro general de ventas.
// Las ventas directas de un cliente no pasan por aquí: viven en la lista
// del propio cliente con su secuencia de identidad aparte.
type SaleRepository interface {
	Create(product string, amount decimal.Decimal, date time.Time) (*entity.Sale, error)
	Find(id int) (*entity.Sale, bool)
	Remove(id int)
	All() []*entity.Sale
	// InRange devuelve las ventas con start <= fecha <= end, ambos
	// extremos inclusive, en orden de registro.
	InRange(start, end time.Time) []*entity.Sale
}
