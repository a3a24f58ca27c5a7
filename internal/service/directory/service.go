package directory

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/shopledger/shopledger/internal/domain/models"
)

// Store is the contact directory persistence surface.
type Store interface {
	InsertParty(ctx context.Context, party models.Party) error
	DeleteParty(ctx context.Context, name string, partyType models.PartyType) error
	ListParties(ctx context.Context, partyType models.PartyType) ([]models.Party, error)
}

// Service manages the customer and supplier contact directory.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService wires a new directory service instance.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// Add registers a party. The (name, type) pair is unique.
func (s *Service) Add(ctx context.Context, req models.PartyCreate) (models.Party, error) {
	party := models.Party{
		Name: strings.TrimSpace(req.Name),
		Type: req.Type,
	}

	if party.Name == "" {
		return models.Party{}, fmt.Errorf("%w: name must not be blank", models.ErrValidation)
	}
	if !party.Type.Valid() {
		return models.Party{}, fmt.Errorf("%w: type must be customer or supplier", models.ErrValidation)
	}

	if err := s.store.InsertParty(ctx, party); err != nil {
		return models.Party{}, err
	}

	s.logger.Info("party added", zap.String("name", party.Name), zap.String("type", string(party.Type)))
	return party, nil
}

// List returns parties, optionally filtered by type.
func (s *Service) List(ctx context.Context, partyType models.PartyType) ([]models.Party, error) {
	if partyType != "" && !partyType.Valid() {
		return nil, fmt.Errorf("%w: type must be customer or supplier", models.ErrValidation)
	}

	parties, err := s.store.ListParties(ctx, partyType)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	if parties == nil {
		parties = []models.Party{}
	}
	return parties, nil
}

// Delete removes the party addressed by its (name, type) pair. Transactions
// keep the counterparty as a plain string, so no cascade applies.
func (s *Service) Delete(ctx context.Context, name string, partyType models.PartyType) error {
	if !partyType.Valid() {
		return fmt.Errorf("%w: type must be customer or supplier", models.ErrValidation)
	}

	if err := s.store.DeleteParty(ctx, name, partyType); err != nil {
		return err
	}

	s.logger.Info("party deleted", zap.String("name", name), zap.String("type", string(partyType)))
	return nil
}
