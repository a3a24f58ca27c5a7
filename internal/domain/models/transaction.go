package models

import "github.com/shopspring/decimal"

// DateLayout is the wire format for every date in the system.
const DateLayout = "2006-01-02"

// TransactionType enumerates the ledger entry categories.
type TransactionType string

const (
	TransactionSell     TransactionType = "sell"
	TransactionPurchase TransactionType = "purchase"
	TransactionSpending TransactionType = "spending"
)

// Valid reports whether the value is one of the known categories.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionSell, TransactionPurchase, TransactionSpending:
		return true
	}
	return false
}

// PaymentMethod names the balance bucket a transaction moves.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentBank1 PaymentMethod = "bank1"
	PaymentBank2 PaymentMethod = "bank2"
)

// Valid reports whether the value is one of the known buckets.
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentBank1, PaymentBank2:
		return true
	}
	return false
}

// Transaction is a single ledger entry. Identity is the (date, name) pair;
// the contract exposes no generated id.
type Transaction struct {
	Date            string          `json:"date"`
	TransactionType TransactionType `json:"transaction_type"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	StockCode       string          `json:"stock_code,omitempty"`
}

// TransactionCreate is the POST /api/transactions request body.
type TransactionCreate struct {
	Date            string          `json:"date" binding:"required"`
	TransactionType TransactionType `json:"transaction_type" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   PaymentMethod   `json:"payment_method" binding:"required"`
	StockCode       string          `json:"stock_code"`
}
