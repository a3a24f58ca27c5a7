package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shopledger/shopledger/internal/domain/models"
)

// Store is the transaction persistence surface the ledger requires.
type Store interface {
	InsertTransaction(ctx context.Context, tx models.Transaction) error
	DeleteTransaction(ctx context.Context, date, name string) error
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
}

// StockIndex answers existence checks for stock references on sell entries.
type StockIndex interface {
	StockItemExists(ctx context.Context, itemNumber string) (bool, error)
}

// Service owns the transaction log and everything derived from it.
type Service struct {
	store  Store
	stock  StockIndex
	logger *zap.Logger
}

// NewService wires a new ledger service instance.
func NewService(store Store, stock StockIndex, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, stock: stock, logger: logger}
}

// Record validates and appends one transaction to the log.
func (s *Service) Record(ctx context.Context, req models.TransactionCreate) (models.Transaction, error) {
	tx := models.Transaction{
		Date:            strings.TrimSpace(req.Date),
		TransactionType: req.TransactionType,
		Name:            strings.TrimSpace(req.Name),
		Amount:          req.Amount,
		PaymentMethod:   req.PaymentMethod,
		StockCode:       strings.TrimSpace(req.StockCode),
	}

	if _, err := time.Parse(models.DateLayout, tx.Date); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: date must be formatted %s", models.ErrValidation, models.DateLayout)
	}
	if tx.Name == "" {
		return models.Transaction{}, fmt.Errorf("%w: name must not be blank", models.ErrValidation)
	}
	if !tx.TransactionType.Valid() {
		return models.Transaction{}, fmt.Errorf("%w: unknown transaction type %q", models.ErrValidation, tx.TransactionType)
	}
	if !tx.PaymentMethod.Valid() {
		return models.Transaction{}, fmt.Errorf("%w: unknown payment method %q", models.ErrValidation, tx.PaymentMethod)
	}
	if !tx.Amount.IsPositive() {
		return models.Transaction{}, fmt.Errorf("%w: amount must be a positive number", models.ErrValidation)
	}

	switch tx.TransactionType {
	case models.TransactionSpending:
		if tx.StockCode != "" {
			return models.Transaction{}, fmt.Errorf("%w: spending transactions carry no stock reference", models.ErrValidation)
		}
	case models.TransactionSell:
		if tx.StockCode == "" {
			s.logger.Warn("sell transaction without stock code",
				zap.String("date", tx.Date),
				zap.String("name", tx.Name))
			break
		}
		exists, err := s.stock.StockItemExists(ctx, tx.StockCode)
		if err != nil {
			return models.Transaction{}, fmt.Errorf("check stock reference: %w", err)
		}
		if !exists {
			return models.Transaction{}, fmt.Errorf("stock item %s: %w", tx.StockCode, models.ErrNotFound)
		}
	case models.TransactionPurchase:
		if tx.StockCode == "" {
			s.logger.Warn("purchase transaction without stock code",
				zap.String("date", tx.Date),
				zap.String("name", tx.Name))
		}
	}

	if err := s.store.InsertTransaction(ctx, tx); err != nil {
		return models.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	s.logger.Info("transaction recorded",
		zap.String("type", string(tx.TransactionType)),
		zap.String("method", string(tx.PaymentMethod)),
		zap.String("amount", tx.Amount.String()))

	return tx, nil
}

// Delete removes the transaction addressed by its (date, name) pair. When
// duplicates share the pair, exactly one record is removed.
func (s *Service) Delete(ctx context.Context, date, name string) error {
	if err := s.store.DeleteTransaction(ctx, date, name); err != nil {
		return err
	}

	s.logger.Info("transaction deleted", zap.String("date", date), zap.String("name", name))
	return nil
}

// List returns the full log in insertion order.
func (s *Service) List(ctx context.Context) ([]models.Transaction, error) {
	txs, err := s.store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

// Balance recomputes the account position from the full log on every call.
// There is no cached balance state that could drift from the ledger.
func (s *Service) Balance(ctx context.Context) (models.Balance, error) {
	txs, err := s.store.ListTransactions(ctx)
	if err != nil {
		return models.Balance{}, fmt.Errorf("list transactions: %w", err)
	}
	return Fold(txs), nil
}
