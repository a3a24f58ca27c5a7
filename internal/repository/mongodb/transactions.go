package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopledger/shopledger/internal/domain/models"
)

// transactionDoc is the persisted shape of a ledger entry. The driver has
// no codec for decimal.Decimal, so amounts persist as canonical decimal
// strings.
type transactionDoc struct {
	Date            string `bson:"date"`
	TransactionType string `bson:"transaction_type"`
	Name            string `bson:"name"`
	Amount          string `bson:"amount"`
	PaymentMethod   string `bson:"payment_method"`
	StockCode       string `bson:"stock_code,omitempty"`
}

// InsertTransaction appends one ledger entry.
func (r *Repository) InsertTransaction(ctx context.Context, tx models.Transaction) error {
	doc := transactionDoc{
		Date:            tx.Date,
		TransactionType: string(tx.TransactionType),
		Name:            tx.Name,
		Amount:          tx.Amount.String(),
		PaymentMethod:   string(tx.PaymentMethod),
		StockCode:       tx.StockCode,
	}

	if _, err := r.db.Collection(transactionsCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes one entry matching the (date, name) pair. When
// duplicates share the pair, a single arbitrary match is removed.
func (r *Repository) DeleteTransaction(ctx context.Context, date, name string) error {
	result, err := r.db.Collection(transactionsCollection).DeleteOne(ctx, bson.M{"date": date, "name": name})
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("transaction %s/%s: %w", date, name, models.ErrNotFound)
	}
	return nil
}

// ListTransactions returns the full log in insertion order.
func (r *Repository) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	cursor, err := r.db.Collection(transactionsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []transactionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	txs := make([]models.Transaction, 0, len(docs))
	for _, doc := range docs {
		amount, err := decimal.NewFromString(doc.Amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount %q on transaction %s/%s: %w", doc.Amount, doc.Date, doc.Name, err)
		}
		txs = append(txs, models.Transaction{
			Date:            doc.Date,
			TransactionType: models.TransactionType(doc.TransactionType),
			Name:            doc.Name,
			Amount:          amount,
			PaymentMethod:   models.PaymentMethod(doc.PaymentMethod),
			StockCode:       doc.StockCode,
		})
	}
	return txs, nil
}

// StockItemExists reports whether a stock item with the given number is
// stored, without decoding the full document.
func (r *Repository) StockItemExists(ctx context.Context, itemNumber string) (bool, error) {
	err := r.db.Collection(stockItemsCollection).
		FindOne(ctx, bson.M{"item_number": itemNumber}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up stock item: %w", err)
	}
	return true, nil
}
