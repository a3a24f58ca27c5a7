package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/shopledger/shopledger/internal/domain/models"
)

// Fold derives the balance position from a transaction sequence. Sell
// entries credit their payment bucket, purchase and spending entries debit
// it. The fold is pure: the same log always produces the same position.
func Fold(txs []models.Transaction) models.Balance {
	var cash, bank1, bank2 decimal.Decimal

	for _, tx := range txs {
		amount := tx.Amount
		if tx.TransactionType != models.TransactionSell {
			amount = amount.Neg()
		}

		switch tx.PaymentMethod {
		case models.PaymentCash:
			cash = cash.Add(amount)
		case models.PaymentBank1:
			bank1 = bank1.Add(amount)
		case models.PaymentBank2:
			bank2 = bank2.Add(amount)
		}
	}

	return models.Balance{
		Cash:  cash.Round(2),
		Bank1: bank1.Round(2),
		Bank2: bank2.Round(2),
		Total: cash.Add(bank1).Add(bank2).Round(2),
	}
}
