package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopledger/shopledger/internal/domain/models"
)

const stockCounterName = "stock_counter"

// stockItemDoc is the persisted shape of a stock item. Status is absent on
// purpose: it is derived from the transaction log, never stored.
type stockItemDoc struct {
	ItemNumber     string `bson:"item_number"`
	DateOfPurchase string `bson:"date_of_purchase"`
	Type           string `bson:"type"`
	Description    string `bson:"description"`
	SupplierName   string `bson:"supplier_name"`
	Phone          string `bson:"phone"`
	Price          string `bson:"price"`
}

type counterDoc struct {
	Name  string `bson:"name"`
	Value int64  `bson:"value"`
}

// InsertStockItem stores a stock item, refusing duplicate item numbers.
func (r *Repository) InsertStockItem(ctx context.Context, item models.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	coll := r.db.Collection(stockItemsCollection)

	err := coll.FindOne(ctx, bson.M{"item_number": item.ItemNumber}).Err()
	if err == nil {
		return fmt.Errorf("stock item %s: %w", item.ItemNumber, models.ErrConflict)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to check stock item: %w", err)
	}

	doc := stockItemDoc{
		ItemNumber:     item.ItemNumber,
		DateOfPurchase: item.DateOfPurchase,
		Type:           item.Type,
		Description:    item.Description,
		SupplierName:   item.SupplierName,
		Phone:          item.Phone,
		Price:          item.Price.String(),
	}
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert stock item: %w", err)
	}
	return nil
}

// DeleteStockItem removes a stock item by its number.
func (r *Repository) DeleteStockItem(ctx context.Context, itemNumber string) error {
	result, err := r.db.Collection(stockItemsCollection).DeleteOne(ctx, bson.M{"item_number": itemNumber})
	if err != nil {
		return fmt.Errorf("failed to delete stock item: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("stock item %s: %w", itemNumber, models.ErrNotFound)
	}
	return nil
}

// ListStockItems returns every stored stock item.
func (r *Repository) ListStockItems(ctx context.Context) ([]models.StockItem, error) {
	cursor, err := r.db.Collection(stockItemsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list stock items: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []stockItemDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode stock items: %w", err)
	}

	items := make([]models.StockItem, 0, len(docs))
	for _, doc := range docs {
		price, err := decimal.NewFromString(doc.Price)
		if err != nil {
			return nil, fmt.Errorf("corrupt price %q on stock item %s: %w", doc.Price, doc.ItemNumber, err)
		}
		items = append(items, models.StockItem{
			ItemNumber:     doc.ItemNumber,
			DateOfPurchase: doc.DateOfPurchase,
			Type:           doc.Type,
			Description:    doc.Description,
			SupplierName:   doc.SupplierName,
			Phone:          doc.Phone,
			Price:          price,
		})
	}
	return items, nil
}

// NextItemNumber assigns the next stock number from the counter document.
// The first assigned number is "1000", each later call increments by one.
func (r *Repository) NextItemNumber(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	coll := r.db.Collection(countersCollection)

	var counter counterDoc
	err := coll.FindOne(ctx, bson.M{"name": stockCounterName}).Decode(&counter)
	if errors.Is(err, mongo.ErrNoDocuments) {
		if _, err := coll.InsertOne(ctx, counterDoc{Name: stockCounterName, Value: 1000}); err != nil {
			return "", fmt.Errorf("failed to seed stock counter: %w", err)
		}
		return "1000", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read stock counter: %w", err)
	}

	next := counter.Value + 1
	if _, err := coll.UpdateOne(ctx,
		bson.M{"name": stockCounterName},
		bson.M{"$set": bson.M{"value": next}},
	); err != nil {
		return "", fmt.Errorf("failed to bump stock counter: %w", err)
	}
	return strconv.FormatInt(next, 10), nil
}

// InsertItemType registers an item-type name, refusing duplicates.
func (r *Repository) InsertItemType(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	coll := r.db.Collection(itemTypesCollection)

	err := coll.FindOne(ctx, bson.M{"name": name}).Err()
	if err == nil {
		return fmt.Errorf("item type %q: %w", name, models.ErrConflict)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to check item type: %w", err)
	}

	if _, err := coll.InsertOne(ctx, bson.M{"name": name}); err != nil {
		return fmt.Errorf("failed to insert item type: %w", err)
	}
	return nil
}

// DeleteItemType removes an item-type name.
func (r *Repository) DeleteItemType(ctx context.Context, name string) error {
	result, err := r.db.Collection(itemTypesCollection).DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("failed to delete item type: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("item type %q: %w", name, models.ErrNotFound)
	}
	return nil
}

// ListItemTypes returns the item-type vocabulary.
func (r *Repository) ListItemTypes(ctx context.Context) ([]models.ItemType, error) {
	cursor, err := r.db.Collection(itemTypesCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list item types: %w", err)
	}
	defer cursor.Close(ctx)

	var types []models.ItemType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("failed to decode item types: %w", err)
	}
	return types, nil
}
