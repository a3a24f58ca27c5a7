package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopledger/shopledger/internal/domain/models"
)

type partyDoc struct {
	Name string `bson:"name"`
	Type string `bson:"type"`
}

// InsertParty stores a contact record, refusing duplicate (name, type) pairs.
func (r *Repository) InsertParty(ctx context.Context, party models.Party) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	coll := r.db.Collection(partiesCollection)

	err := coll.FindOne(ctx, bson.M{"name": party.Name, "type": string(party.Type)}).Err()
	if err == nil {
		return fmt.Errorf("%s %q: %w", party.Type, party.Name, models.ErrConflict)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to check party: %w", err)
	}

	if _, err := coll.InsertOne(ctx, partyDoc{Name: party.Name, Type: string(party.Type)}); err != nil {
		return fmt.Errorf("failed to insert party: %w", err)
	}
	return nil
}

// DeleteParty removes the contact record addressed by (name, type).
func (r *Repository) DeleteParty(ctx context.Context, name string, partyType models.PartyType) error {
	result, err := r.db.Collection(partiesCollection).DeleteOne(ctx, bson.M{"name": name, "type": string(partyType)})
	if err != nil {
		return fmt.Errorf("failed to delete party: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%s %q: %w", partyType, name, models.ErrNotFound)
	}
	return nil
}

// ListParties returns contacts, filtered by type when one is given.
func (r *Repository) ListParties(ctx context.Context, partyType models.PartyType) ([]models.Party, error) {
	filter := bson.M{}
	if partyType != "" {
		filter["type"] = string(partyType)
	}

	cursor, err := r.db.Collection(partiesCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []partyDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode parties: %w", err)
	}

	parties := make([]models.Party, 0, len(docs))
	for _, doc := range docs {
		parties = append(parties, models.Party{Name: doc.Name, Type: models.PartyType(doc.Type)})
	}
	return parties, nil
}
