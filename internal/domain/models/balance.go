package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Balance is the position of the three payment buckets, derived by folding
// the transaction log. Total is always the sum of the buckets.
type Balance struct {
	Cash  decimal.Decimal
	Bank1 decimal.Decimal
	Bank2 decimal.Decimal
	Total decimal.Decimal
}

// MarshalJSON renders every bucket as a fixed two-decimal currency string.
func (b Balance) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"cash":  b.Cash.StringFixed(2),
		"bank1": b.Bank1.StringFixed(2),
		"bank2": b.Bank2.StringFixed(2),
		"total": b.Total.StringFixed(2),
	})
}
