package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meCodeKo/siverek-depo/config"
)

// Readable sequential IDs per collection, e.g. ITM0001, TRX000001.
// Transaction IDs are padded wide enough that lexicographic _id order equals
// insertion order, which the ledger uses as its tie-break.
var counterFormats = map[string]struct {
	prefix string
	width  int
}{
	"item":        {"ITM", 4},
	"transaction": {"TRX", 6},
	"category":    {"KTG", 3},
	"location":    {"LOC", 3},
	"user":        {"USR", 3},
}

func InitializeCounters() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for name := range counterFormats {
		_, err := config.CounterCollection.UpdateOne(ctx,
			bson.M{"_id": name},
			bson.M{"$setOnInsert": bson.M{"seq": 0}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// GenerateID atomically increments the named counter and returns the next
// formatted identifier.
func GenerateID(name string) (string, error) {
	format, ok := counterFormats[name]
	if !ok {
		return "", fmt.Errorf("unknown counter %q", name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := config.CounterCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%0*d", format.prefix, format.width, doc.Seq), nil
}
