package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRangeReport total del libro general de ventas en un rango de
// fechas inclusivo en ambos extremos.
type SalesRangeReport struct {
	Start time.Time
	End   time.Time
	Count int
	Total decimal.Decimal
}
