package mongodb

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	transactionsCollection = "transactions"
	stockItemsCollection   = "stock_items"
	itemTypesCollection    = "item_types"
	partiesCollection      = "customers_suppliers"
	countersCollection     = "counters"
	snapshotsCollection    = "balance_snapshots"
)

// Repository implements every store interface the services declare on top
// of a single MongoDB database.
//
// mu serializes compound check-then-write sequences (duplicate checks, the
// stock counter bump); single-document operations are already atomic.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
	mu     sync.Mutex
}

// New connects to MongoDB and verifies the connection.
func New(ctx context.Context, uri string, dbName string) (*Repository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Close closes the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
