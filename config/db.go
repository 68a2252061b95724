package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global collection handles, initialized by ConnectDB.
var (
	DB                    *mongo.Database
	ItemCollection        *mongo.Collection
	TransactionCollection *mongo.Collection
	CategoryCollection    *mongo.Collection
	LocationCollection    *mongo.Collection
	UserCollection        *mongo.Collection
	SettingsCollection    *mongo.Collection
	CounterCollection     *mongo.Collection
)

func ConnectDB() {
	mongoURI := os.Getenv("MONGO_URI")
	dbName := os.Getenv("DB_NAME")

	// Defaults for local development if env not set
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	if dbName == "" {
		dbName = "siverekdepo"
	}

	clientOptions := options.Client().ApplyURI(mongoURI)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal("failed to connect to MongoDB:", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("MongoDB is not reachable:", err)
	}

	DB = client.Database(dbName)

	ItemCollection = DB.Collection("items")
	TransactionCollection = DB.Collection("transactions")
	CategoryCollection = DB.Collection("categories")
	LocationCollection = DB.Collection("locations")
	UserCollection = DB.Collection("users")
	SettingsCollection = DB.Collection("settings")
	CounterCollection = DB.Collection("counters")
}

func GetCollection(name string) *mongo.Collection {
	return DB.Collection(name)
}
