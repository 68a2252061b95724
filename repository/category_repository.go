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

func categoryCol() *mongo.Collection { return config.CategoryCollection }

func EnsureCategoryIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := categoryCol().Indexes().CreateOne(ctx, model)
	return err
}

func GetAllCategories() ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := categoryCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.Category
	for cur.Next(ctx) {
		var k models.Category
		if err := cur.Decode(&k); err != nil {
			return nil, err
		}
		list = append(list, k)
	}
	return list, cur.Err()
}

func GetCategoryByID(id string) (*models.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var k models.Category
	if err := categoryCol().FindOne(ctx, bson.M{"_id": id}).Decode(&k); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: category %s", models.ErrNotFound, id)
		}
		return nil, err
	}
	return &k, nil
}

func CreateCategory(k *models.Category) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := categoryCol().InsertOne(ctx, k)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: category %q", models.ErrDuplicate, k.Name)
	}
	return err
}

func CountCategories() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return categoryCol().CountDocuments(ctx, bson.M{})
}
