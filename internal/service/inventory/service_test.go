package inventory

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/shopledger/internal/domain/models"
)

type memoryStore struct {
	items   []models.StockItem
	types   []models.ItemType
	counter int64
}

func (m *memoryStore) InsertStockItem(_ context.Context, item models.StockItem) error {
	for _, existing := range m.items {
		if existing.ItemNumber == item.ItemNumber {
			return fmt.Errorf("stock item %s: %w", item.ItemNumber, models.ErrConflict)
		}
	}
	m.items = append(m.items, item)
	return nil
}

func (m *memoryStore) DeleteStockItem(_ context.Context, itemNumber string) error {
	for i, item := range m.items {
		if item.ItemNumber == itemNumber {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("stock item %s: %w", itemNumber, models.ErrNotFound)
}

func (m *memoryStore) ListStockItems(_ context.Context) ([]models.StockItem, error) {
	return append([]models.StockItem(nil), m.items...), nil
}

func (m *memoryStore) NextItemNumber(_ context.Context) (string, error) {
	if m.counter == 0 {
		m.counter = 1000
	} else {
		m.counter++
	}
	return strconv.FormatInt(m.counter, 10), nil
}

func (m *memoryStore) InsertItemType(_ context.Context, name string) error {
	for _, t := range m.types {
		if t.Name == name {
			return fmt.Errorf("item type %q: %w", name, models.ErrConflict)
		}
	}
	m.types = append(m.types, models.ItemType{Name: name})
	return nil
}

func (m *memoryStore) DeleteItemType(_ context.Context, name string) error {
	for i, t := range m.types {
		if t.Name == name {
			m.types = append(m.types[:i], m.types[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("item type %q: %w", name, models.ErrNotFound)
}

func (m *memoryStore) ListItemTypes(_ context.Context) ([]models.ItemType, error) {
	return append([]models.ItemType(nil), m.types...), nil
}

type memoryLedger struct {
	txs []models.Transaction
}

func (m *memoryLedger) ListTransactions(_ context.Context) ([]models.Transaction, error) {
	return append([]models.Transaction(nil), m.txs...), nil
}

func newFixture(t *testing.T, typeNames ...string) (*Service, *memoryStore, *memoryLedger) {
	t.Helper()
	store := &memoryStore{}
	ledger := &memoryLedger{}
	svc := NewService(store, ledger, nil)
	for _, name := range typeNames {
		_, err := svc.AddType(context.Background(), models.ItemTypeCreate{Name: name})
		require.NoError(t, err)
	}
	return svc, store, ledger
}

func validItem() models.StockItemCreate {
	return models.StockItemCreate{
		DateOfPurchase: "2026-01-05",
		Type:           "laptop",
		Description:    "Refurbished ThinkPad T14",
		SupplierName:   "Global Parts Ltd",
		Phone:          "555-0101",
		Price:          decimal.RequireFromString("450.00"),
	}
}

func TestAddItemUnknownType(t *testing.T) {
	svc, store, _ := newFixture(t, "laptop")

	req := validItem()
	req.Type = "router"

	_, err := svc.AddItem(context.Background(), req)
	require.ErrorIs(t, err, models.ErrValidation)
	require.Empty(t, store.items)
}

func TestAddItemValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.StockItemCreate)
	}{
		{"bad date", func(r *models.StockItemCreate) { r.DateOfPurchase = "05.01.2026" }},
		{"blank description", func(r *models.StockItemCreate) { r.Description = " " }},
		{"blank supplier", func(r *models.StockItemCreate) { r.SupplierName = "" }},
		{"blank phone", func(r *models.StockItemCreate) { r.Phone = "" }},
		{"negative price", func(r *models.StockItemCreate) { r.Price = decimal.NewFromInt(-1) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _ := newFixture(t, "laptop")
			req := validItem()
			tc.mutate(&req)

			_, err := svc.AddItem(context.Background(), req)
			require.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestAddItemAssignsSequentialNumbers(t *testing.T) {
	svc, _, _ := newFixture(t, "laptop")
	ctx := context.Background()

	first, err := svc.AddItem(ctx, validItem())
	require.NoError(t, err)
	require.Equal(t, "1000", first.ItemNumber)
	require.Equal(t, models.StockCurrent, first.Status)

	second, err := svc.AddItem(ctx, validItem())
	require.NoError(t, err)
	require.Equal(t, "1001", second.ItemNumber)
}

func TestAddItemDuplicateNumberConflict(t *testing.T) {
	svc, _, _ := newFixture(t, "laptop")
	ctx := context.Background()

	req := validItem()
	req.ItemNumber = "X-1"

	_, err := svc.AddItem(ctx, req)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, req)
	require.ErrorIs(t, err, models.ErrConflict)
}

func TestStatusDerivation(t *testing.T) {
	svc, _, ledger := newFixture(t, "laptop")
	ctx := context.Background()

	req := validItem()
	req.ItemNumber = "S1"
	_, err := svc.AddItem(ctx, req)
	require.NoError(t, err)

	status, err := svc.ItemStatus(ctx, "S1")
	require.NoError(t, err)
	require.Equal(t, models.StockCurrent, status)

	// Recording a sell referencing S1 flips the derived status.
	ledger.txs = append(ledger.txs, models.Transaction{
		Date:            "2026-01-10",
		TransactionType: models.TransactionSell,
		Name:            "customer",
		Amount:          decimal.NewFromInt(600),
		PaymentMethod:   models.PaymentCash,
		StockCode:       "S1",
	})

	status, err = svc.ItemStatus(ctx, "S1")
	require.NoError(t, err)
	require.Equal(t, models.StockSold, status)

	// Deleting the sell reverts it: status is derived, never stored.
	ledger.txs = nil

	status, err = svc.ItemStatus(ctx, "S1")
	require.NoError(t, err)
	require.Equal(t, models.StockCurrent, status)
}

func TestItemStatusUnknownItem(t *testing.T) {
	svc, _, _ := newFixture(t, "laptop")

	_, err := svc.ItemStatus(context.Background(), "ghost")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestListItemsFilters(t *testing.T) {
	svc, _, ledger := newFixture(t, "laptop")
	ctx := context.Background()

	for _, number := range []string{"S1", "S2", "S3"} {
		req := validItem()
		req.ItemNumber = number
		_, err := svc.AddItem(ctx, req)
		require.NoError(t, err)
	}

	ledger.txs = []models.Transaction{{
		Date:            "2026-01-10",
		TransactionType: models.TransactionSell,
		Name:            "customer",
		Amount:          decimal.NewFromInt(600),
		PaymentMethod:   models.PaymentBank1,
		StockCode:       "S2",
	}}

	current, err := svc.ListItems(ctx, "")
	require.NoError(t, err)
	require.Len(t, current, 2)
	for _, item := range current {
		require.Equal(t, models.StockCurrent, item.Status)
	}

	sold, err := svc.ListItems(ctx, "sold")
	require.NoError(t, err)
	require.Len(t, sold, 1)
	require.Equal(t, "S2", sold[0].ItemNumber)
	require.Equal(t, models.StockSold, sold[0].Status)

	all, err := svc.ListItems(ctx, FilterAll)
	require.NoError(t, err)
	require.Len(t, all, 3)

	_, err = svc.ListItems(ctx, "archived")
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestDeleteItemNotFound(t *testing.T) {
	svc, _, _ := newFixture(t, "laptop")
	err := svc.DeleteItem(context.Background(), "ghost")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddTypeDuplicateConflict(t *testing.T) {
	svc, _, _ := newFixture(t)
	ctx := context.Background()

	_, err := svc.AddType(ctx, models.ItemTypeCreate{Name: "monitor"})
	require.NoError(t, err)

	_, err = svc.AddType(ctx, models.ItemTypeCreate{Name: "monitor"})
	require.ErrorIs(t, err, models.ErrConflict)
}

func TestDeleteTypeBlockedWhileReferenced(t *testing.T) {
	svc, _, _ := newFixture(t, "laptop")
	ctx := context.Background()

	_, err := svc.AddItem(ctx, validItem())
	require.NoError(t, err)

	err = svc.DeleteType(ctx, "laptop")
	require.ErrorIs(t, err, models.ErrConflict)

	types, err := svc.ListTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 1)
}

func TestDeleteTypeLifecycle(t *testing.T) {
	svc, _, _ := newFixture(t, "laptop")
	ctx := context.Background()

	require.NoError(t, svc.DeleteType(ctx, "laptop"))

	err := svc.DeleteType(ctx, "laptop")
	require.ErrorIs(t, err, models.ErrNotFound)
}
