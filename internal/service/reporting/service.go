package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shopledger/shopledger/internal/domain/models"
	"github.com/shopledger/shopledger/internal/service/inventory"
	"github.com/shopledger/shopledger/internal/service/ledger"
)

// SnapshotStore persists the daily aggregates.
type SnapshotStore interface {
	SaveBalanceSnapshot(ctx context.Context, snapshot models.BalanceSnapshot) error
}

// Service assembles balance snapshots from the ledger and inventory views.
type Service struct {
	ledger    *ledger.Service
	inventory *inventory.Service
	store     SnapshotStore
	symbol    string
	logger    *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(ledgerSvc *ledger.Service, inventorySvc *inventory.Service, store SnapshotStore, currencySymbol string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		ledger:    ledgerSvc,
		inventory: inventorySvc,
		store:     store,
		symbol:    currencySymbol,
		logger:    logger,
	}
}

// BuildSnapshot folds the current ledger and inventory state into a
// persisted snapshot and returns a one-line summary.
func (s *Service) BuildSnapshot(ctx context.Context, now time.Time) (string, error) {
	balance, err := s.ledger.Balance(ctx)
	if err != nil {
		return "", fmt.Errorf("compute balance: %w", err)
	}

	txs, err := s.ledger.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list transactions: %w", err)
	}

	items, err := s.inventory.ListItems(ctx, inventory.FilterAll)
	if err != nil {
		return "", fmt.Errorf("list stock: %w", err)
	}

	var current, sold int
	for _, item := range items {
		if item.Status == models.StockSold {
			sold++
		} else {
			current++
		}
	}

	snapshot := models.BalanceSnapshot{
		Date:         now.Format(models.DateLayout),
		Cash:         balance.Cash,
		Bank1:        balance.Bank1,
		Bank2:        balance.Bank2,
		Total:        balance.Total,
		Transactions: len(txs),
		StockCurrent: current,
		StockSold:    sold,
		CreatedAt:    now.UTC(),
	}

	if err := s.store.SaveBalanceSnapshot(ctx, snapshot); err != nil {
		return "", fmt.Errorf("save snapshot: %w", err)
	}

	summary := fmt.Sprintf("Balance %s: total %s%s (cash %s%s, bank1 %s%s, bank2 %s%s), %d transactions, stock %d current / %d sold.",
		snapshot.Date,
		s.symbol, balance.Total.StringFixed(2),
		s.symbol, balance.Cash.StringFixed(2),
		s.symbol, balance.Bank1.StringFixed(2),
		s.symbol, balance.Bank2.StringFixed(2),
		snapshot.Transactions, current, sold)

	s.logger.Info("balance snapshot saved",
		zap.String("date", snapshot.Date),
		zap.String("total", balance.Total.StringFixed(2)),
		zap.Int("transactions", snapshot.Transactions))

	return summary, nil
}
