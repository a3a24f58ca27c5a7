package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/shopledger/shopledger/internal/domain/models"
)

type snapshotDoc struct {
	Date         string    `bson:"date"`
	Cash         string    `bson:"cash"`
	Bank1        string    `bson:"bank1"`
	Bank2        string    `bson:"bank2"`
	Total        string    `bson:"total"`
	Transactions int       `bson:"transactions"`
	StockCurrent int       `bson:"stock_current"`
	StockSold    int       `bson:"stock_sold"`
	CreatedAt    time.Time `bson:"created_at"`
}

// SaveBalanceSnapshot persists a daily aggregate.
func (r *Repository) SaveBalanceSnapshot(ctx context.Context, snapshot models.BalanceSnapshot) error {
	doc := snapshotDoc{
		Date:         snapshot.Date,
		Cash:         snapshot.Cash.String(),
		Bank1:        snapshot.Bank1.String(),
		Bank2:        snapshot.Bank2.String(),
		Total:        snapshot.Total.String(),
		Transactions: snapshot.Transactions,
		StockCurrent: snapshot.StockCurrent,
		StockSold:    snapshot.StockSold,
		CreatedAt:    snapshot.CreatedAt,
	}

	if _, err := r.db.Collection(snapshotsCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert balance snapshot: %w", err)
	}
	return nil
}
