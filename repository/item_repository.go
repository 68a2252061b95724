package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meCodeKo/siverek-depo/config"
	"github.com/meCodeKo/siverek-depo/models"
)

func itemCol() *mongo.Collection { return config.ItemCollection }

func EnsureItemIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := itemCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}

func GetAllItems() ([]models.Item, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := itemCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Item
	for cursor.Next(ctx) {
		var it models.Item
		if err := cursor.Decode(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, cursor.Err()
}

func GetItemByID(id string) (*models.Item, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var item models.Item
	if err := itemCol().FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: item %s", models.ErrNotFound, id)
		}
		return nil, err
	}
	return &item, nil
}

// CreateItem inserts the item after verifying its category and location
// references exist.
func CreateItem(item *models.Item) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var ref struct {
		ID string `bson:"_id"`
	}
	if err := config.CategoryCollection.FindOne(ctx, bson.M{"_id": item.Category}).Decode(&ref); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("%w: category %s", models.ErrNotFound, item.Category)
		}
		return err
	}
	if err := config.LocationCollection.FindOne(ctx, bson.M{"_id": item.Location}).Decode(&ref); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("%w: location %s", models.ErrNotFound, item.Location)
		}
		return err
	}

	_, err := itemCol().InsertOne(ctx, item)
	return err
}

// UpdateItem applies a partial $set and refreshes updated_at, returning the
// updated document.
func UpdateItem(id string, set bson.M) (*models.Item, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	set["updated_at"] = time.Now()
	res, err := itemCol().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("%w: item %s", models.ErrNotFound, id)
	}
	return GetItemByID(id)
}

func DeleteItem(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := itemCol().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: item %s", models.ErrNotFound, id)
	}
	return nil
}

// casItemQuantity swaps the stored quantity only if it still equals the value
// previously read. A miss means another transaction won the race (or the item
// vanished) and is surfaced as ErrConflict so the caller can retry.
func casItemQuantity(id string, previous, next int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := itemCol().UpdateOne(ctx,
		bson.M{"_id": id, "quantity": previous},
		bson.M{"$set": bson.M{"quantity": next, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: item %s", models.ErrConflict, id)
	}
	return nil
}
