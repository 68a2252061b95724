package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meCodeKo/siverek-depo/config"
	"github.com/meCodeKo/siverek-depo/models"
)

const settingsDocID = "app"

func settingsCol() *mongo.Collection { return config.SettingsCollection }

func defaultSettings() *models.Settings {
	return &models.Settings{
		ID:                  settingsDocID,
		OrganizationName:    "Siverek Municipality IT Department",
		LowStockAlerts:      true,
		SessionTimeoutHours: 24,
		UpdatedAt:           time.Now(),
	}
}

// GetSettings returns the single settings document, creating it with
// defaults on first read.
func GetSettings() (*models.Settings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var s models.Settings
	err := settingsCol().FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		s := defaultSettings()
		if _, err := settingsCol().InsertOne(ctx, s); err != nil && !mongo.IsDuplicateKeyError(err) {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func UpdateSettings(set bson.M) (*models.Settings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	set["updated_at"] = time.Now()
	_, err := settingsCol().UpdateOne(ctx,
		bson.M{"_id": settingsDocID},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return GetSettings()
}
