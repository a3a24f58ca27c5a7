package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSnapshot is the aggregated daily position persisted by the
// scheduled snapshot job.
type BalanceSnapshot struct {
	Date         string          `json:"date"`
	Cash         decimal.Decimal `json:"cash"`
	Bank1        decimal.Decimal `json:"bank1"`
	Bank2        decimal.Decimal `json:"bank2"`
	Total        decimal.Decimal `json:"total"`
	Transactions int             `json:"transactions"`
	StockCurrent int             `json:"stock_current"`
	StockSold    int             `json:"stock_sold"`
	CreatedAt    time.Time       `json:"created_at"`
}
