package repository

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/meCodeKo/siverek-depo/config"
	"github.com/meCodeKo/siverek-depo/models"
)

func transactionCol() *mongo.Collection { return config.TransactionCollection }

func EnsureTransactionIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := transactionCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "item_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}

// RecordTransaction is the single entry point for quantity changes: it reads
// the item's current quantity, computes the new total for the transaction
// type, updates the item with a compare-and-swap on the quantity it read, and
// only then appends the ledger entry. Validation failures and negative
// results reject before anything is written.
func RecordTransaction(in models.TransactionInput, performedBy string) (*models.StockTransaction, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return nil, fmt.Errorf("%w: reason is required", models.ErrValidation)
	}
	if !models.ValidTransactionType(in.Type) {
		return nil, fmt.Errorf("%w: unknown transaction type %q", models.ErrValidation, in.Type)
	}

	item, err := GetItemByID(in.ItemID)
	if err != nil {
		return nil, err
	}

	next, err := models.NextQuantity(item.Quantity, in.Type, in.Quantity)
	if err != nil {
		return nil, err
	}

	// Generate the ID before touching the item so the only failure mode left
	// after the quantity moves is the ledger insert itself.
	id, err := GenerateID("transaction")
	if err != nil {
		return nil, err
	}

	if err := casItemQuantity(item.ID, item.Quantity, next); err != nil {
		return nil, err
	}

	tx := &models.StockTransaction{
		ID:               id,
		ItemID:           item.ID,
		Type:             in.Type,
		Quantity:         in.Quantity,
		PreviousQuantity: item.Quantity,
		NewQuantity:      next,
		Reason:           in.Reason,
		PerformedBy:      performedBy,
		Notes:            in.Notes,
		CreatedAt:        time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := transactionCol().InsertOne(ctx, tx); err != nil {
		// Put the quantity back so an unrecorded change never survives.
		if casErr := casItemQuantity(item.ID, next, item.Quantity); casErr != nil {
			zap.L().Error("could not restore quantity after failed ledger append",
				zap.String("itemId", item.ID), zap.Error(casErr))
		}
		return nil, err
	}
	return tx, nil
}

// InitialStockEntry synthesizes the single "in" transaction that records an
// item's starting quantity at creation time.
func InitialStockEntry(item *models.Item, performedBy string) (*models.StockTransaction, error) {
	id, err := GenerateID("transaction")
	if err != nil {
		return nil, err
	}
	tx := models.InitialStockTransaction(item, performedBy, id)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := transactionCol().InsertOne(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// QueryTransactions returns ledger entries newest-first. Zero-padded counter
// IDs make the _id sort a stable insertion-order tie-break for entries that
// share a timestamp.
func QueryTransactions(f models.TransactionFilter) ([]models.StockTransaction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if f.ItemID != "" {
		filter["item_id"] = f.ItemID
	}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	dateRange := bson.M{}
	if !f.From.IsZero() {
		dateRange["$gte"] = f.From
	}
	if !f.To.IsZero() {
		dateRange["$lte"] = f.To
	}
	if len(dateRange) > 0 {
		filter["created_at"] = dateRange
	}
	if f.Search != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"reason": rx},
			bson.M{"notes": rx},
			bson.M{"performed_by": rx},
		}
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := transactionCol().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.StockTransaction
	for cur.Next(ctx) {
		var tx models.StockTransaction
		if err := cur.Decode(&tx); err != nil {
			return nil, err
		}
		list = append(list, tx)
	}
	return list, cur.Err()
}
