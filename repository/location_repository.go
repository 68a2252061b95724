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

func locationCol() *mongo.Collection { return config.LocationCollection }

func EnsureLocationIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := locationCol().Indexes().CreateOne(ctx, model)
	return err
}

func GetAllLocations() ([]models.Location, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := locationCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.Location
	for cur.Next(ctx) {
		var l models.Location
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, cur.Err()
}

func GetLocationByID(id string) (*models.Location, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var l models.Location
	if err := locationCol().FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: location %s", models.ErrNotFound, id)
		}
		return nil, err
	}
	return &l, nil
}

func CreateLocation(l *models.Location) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := locationCol().InsertOne(ctx, l)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: location %q", models.ErrDuplicate, l.Name)
	}
	return err
}

func CountLocations() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return locationCol().CountDocuments(ctx, bson.M{})
}
