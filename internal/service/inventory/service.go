package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shopledger/shopledger/internal/domain/models"
)

// FilterAll lists stock items regardless of derived status.
const FilterAll = "all"

// Store is the inventory persistence surface.
type Store interface {
	InsertStockItem(ctx context.Context, item models.StockItem) error
	DeleteStockItem(ctx context.Context, itemNumber string) error
	ListStockItems(ctx context.Context) ([]models.StockItem, error)
	NextItemNumber(ctx context.Context) (string, error)

	InsertItemType(ctx context.Context, name string) error
	DeleteItemType(ctx context.Context, name string) error
	ListItemTypes(ctx context.Context) ([]models.ItemType, error)
}

// TransactionSource provides the ledger view the status resolver folds over.
type TransactionSource interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
}

// Service manages stock items and the item-type vocabulary. Item status is
// resolved against the transaction log on every read.
type Service struct {
	store  Store
	ledger TransactionSource
	logger *zap.Logger
}

// NewService wires a new inventory service instance.
func NewService(store Store, ledger TransactionSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, ledger: ledger, logger: logger}
}

// AddItem validates and stores a stock item. A blank item number is
// replaced with the next counter value.
func (s *Service) AddItem(ctx context.Context, req models.StockItemCreate) (models.StockItem, error) {
	item := models.StockItem{
		ItemNumber:     strings.TrimSpace(req.ItemNumber),
		DateOfPurchase: strings.TrimSpace(req.DateOfPurchase),
		Type:           strings.TrimSpace(req.Type),
		Description:    strings.TrimSpace(req.Description),
		SupplierName:   strings.TrimSpace(req.SupplierName),
		Phone:          strings.TrimSpace(req.Phone),
		Price:          req.Price,
	}

	if _, err := time.Parse(models.DateLayout, item.DateOfPurchase); err != nil {
		return models.StockItem{}, fmt.Errorf("%w: date_of_purchase must be formatted %s", models.ErrValidation, models.DateLayout)
	}
	for field, value := range map[string]string{
		"type":          item.Type,
		"description":   item.Description,
		"supplier_name": item.SupplierName,
		"phone":         item.Phone,
	} {
		if value == "" {
			return models.StockItem{}, fmt.Errorf("%w: %s must not be blank", models.ErrValidation, field)
		}
	}
	if item.Price.IsNegative() {
		return models.StockItem{}, fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	}

	known, err := s.typeExists(ctx, item.Type)
	if err != nil {
		return models.StockItem{}, err
	}
	if !known {
		return models.StockItem{}, fmt.Errorf("%w: unknown item type %q", models.ErrValidation, item.Type)
	}

	if item.ItemNumber == "" {
		number, err := s.store.NextItemNumber(ctx)
		if err != nil {
			return models.StockItem{}, fmt.Errorf("assign item number: %w", err)
		}
		item.ItemNumber = number
	}

	if err := s.store.InsertStockItem(ctx, item); err != nil {
		return models.StockItem{}, err
	}

	item.Status = models.StockCurrent
	s.logger.Info("stock item added",
		zap.String("item_number", item.ItemNumber),
		zap.String("type", item.Type))
	return item, nil
}

// DeleteItem removes a stock item by its number.
func (s *Service) DeleteItem(ctx context.Context, itemNumber string) error {
	if err := s.store.DeleteStockItem(ctx, itemNumber); err != nil {
		return err
	}

	s.logger.Info("stock item deleted", zap.String("item_number", itemNumber))
	return nil
}

// ListItems returns stock items whose derived status matches the filter.
// An empty filter defaults to current, mirroring the dashboard's stock view.
func (s *Service) ListItems(ctx context.Context, filter string) ([]models.StockItem, error) {
	if filter == "" {
		filter = string(models.StockCurrent)
	}
	switch filter {
	case string(models.StockCurrent), string(models.StockSold), FilterAll:
	default:
		return nil, fmt.Errorf("%w: unknown status filter %q", models.ErrValidation, filter)
	}

	items, err := s.store.ListStockItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}

	sold, err := s.soldCodes(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.StockItem, 0, len(items))
	for _, item := range items {
		item.Status = models.StockCurrent
		if _, ok := sold[item.ItemNumber]; ok {
			item.Status = models.StockSold
		}
		if filter == FilterAll || filter == string(item.Status) {
			out = append(out, item)
		}
	}
	return out, nil
}

// ItemStatus resolves the derived status of a single stock item.
func (s *Service) ItemStatus(ctx context.Context, itemNumber string) (models.StockStatus, error) {
	exists, err := s.StockItemExists(ctx, itemNumber)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("stock item %s: %w", itemNumber, models.ErrNotFound)
	}

	sold, err := s.soldCodes(ctx)
	if err != nil {
		return "", err
	}
	if _, ok := sold[itemNumber]; ok {
		return models.StockSold, nil
	}
	return models.StockCurrent, nil
}

// StockItemExists reports whether an item with the given number is stored.
func (s *Service) StockItemExists(ctx context.Context, itemNumber string) (bool, error) {
	items, err := s.store.ListStockItems(ctx)
	if err != nil {
		return false, fmt.Errorf("list stock items: %w", err)
	}
	for _, item := range items {
		if item.ItemNumber == itemNumber {
			return true, nil
		}
	}
	return false, nil
}

// AddType registers a new item-type name.
func (s *Service) AddType(ctx context.Context, req models.ItemTypeCreate) (models.ItemType, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.ItemType{}, fmt.Errorf("%w: name must not be blank", models.ErrValidation)
	}

	if err := s.store.InsertItemType(ctx, name); err != nil {
		return models.ItemType{}, err
	}

	s.logger.Info("item type added", zap.String("name", name))
	return models.ItemType{Name: name}, nil
}

// DeleteType removes an item-type name. Deletion is refused while any stock
// item still references the name, so the vocabulary check on AddItem stays
// meaningful.
func (s *Service) DeleteType(ctx context.Context, name string) error {
	items, err := s.store.ListStockItems(ctx)
	if err != nil {
		return fmt.Errorf("list stock items: %w", err)
	}
	for _, item := range items {
		if item.Type == name {
			return fmt.Errorf("item type %q is referenced by stock item %s: %w", name, item.ItemNumber, models.ErrConflict)
		}
	}

	if err := s.store.DeleteItemType(ctx, name); err != nil {
		return err
	}

	s.logger.Info("item type deleted", zap.String("name", name))
	return nil
}

// ListTypes returns the item-type vocabulary.
func (s *Service) ListTypes(ctx context.Context) ([]models.ItemType, error) {
	types, err := s.store.ListItemTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list item types: %w", err)
	}
	if types == nil {
		types = []models.ItemType{}
	}
	return types, nil
}

func (s *Service) typeExists(ctx context.Context, name string) (bool, error) {
	types, err := s.store.ListItemTypes(ctx)
	if err != nil {
		return false, fmt.Errorf("list item types: %w", err)
	}
	for _, t := range types {
		if t.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// soldCodes collects the stock codes referenced by surviving sell entries.
// Deleting the referencing sell entry removes the code from this set, which
// flips the item back to current on the next read.
func (s *Service) soldCodes(ctx context.Context) (map[string]struct{}, error) {
	txs, err := s.ledger.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	codes := make(map[string]struct{})
	for _, tx := range txs {
		if tx.TransactionType == models.TransactionSell && tx.StockCode != "" {
			codes[tx.StockCode] = struct{}{}
		}
	}
	return codes, nil
}
