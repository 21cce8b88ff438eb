package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto operativo; solo se usa agregado por categoría.
type Expense struct {
	ID          int64
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
}
