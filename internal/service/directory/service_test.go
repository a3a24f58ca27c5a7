package directory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopledger/shopledger/internal/domain/models"
)

type memoryStore struct {
	parties []models.Party
}

func (m *memoryStore) InsertParty(_ context.Context, party models.Party) error {
	for _, existing := range m.parties {
		if existing.Name == party.Name && existing.Type == party.Type {
			return fmt.Errorf("%s %q: %w", party.Type, party.Name, models.ErrConflict)
		}
	}
	m.parties = append(m.parties, party)
	return nil
}

func (m *memoryStore) DeleteParty(_ context.Context, name string, partyType models.PartyType) error {
	for i, party := range m.parties {
		if party.Name == name && party.Type == partyType {
			m.parties = append(m.parties[:i], m.parties[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s %q: %w", partyType, name, models.ErrNotFound)
}

func (m *memoryStore) ListParties(_ context.Context, partyType models.PartyType) ([]models.Party, error) {
	if partyType == "" {
		return append([]models.Party(nil), m.parties...), nil
	}
	var out []models.Party
	for _, party := range m.parties {
		if party.Type == partyType {
			out = append(out, party)
		}
	}
	return out, nil
}

func TestAddAndListByType(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}
	svc := NewService(store, nil)

	for _, req := range []models.PartyCreate{
		{Name: "Alice", Type: models.PartyCustomer},
		{Name: "Bulk Hardware", Type: models.PartySupplier},
		{Name: "Alice", Type: models.PartySupplier},
	} {
		_, err := svc.Add(ctx, req)
		require.NoError(t, err)
	}

	customers, err := svc.List(ctx, models.PartyCustomer)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, "Alice", customers[0].Name)

	suppliers, err := svc.List(ctx, models.PartySupplier)
	require.NoError(t, err)
	require.Len(t, suppliers, 2)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestAddDuplicateConflict(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memoryStore{}, nil)

	_, err := svc.Add(ctx, models.PartyCreate{Name: "Alice", Type: models.PartyCustomer})
	require.NoError(t, err)

	_, err = svc.Add(ctx, models.PartyCreate{Name: "Alice", Type: models.PartyCustomer})
	require.ErrorIs(t, err, models.ErrConflict)
}

func TestAddValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memoryStore{}, nil)

	_, err := svc.Add(ctx, models.PartyCreate{Name: "  ", Type: models.PartyCustomer})
	require.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Add(ctx, models.PartyCreate{Name: "Bob", Type: "vendor"})
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestListInvalidTypeFilter(t *testing.T) {
	svc := NewService(&memoryStore{}, nil)

	_, err := svc.List(context.Background(), "vendor")
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestDeleteLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memoryStore{}, nil)

	_, err := svc.Add(ctx, models.PartyCreate{Name: "Alice", Type: models.PartyCustomer})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "Alice", models.PartyCustomer))

	err = svc.Delete(ctx, "Alice", models.PartyCustomer)
	require.ErrorIs(t, err, models.ErrNotFound)

	err = svc.Delete(ctx, "Alice", "vendor")
	require.ErrorIs(t, err, models.ErrValidation)
}
