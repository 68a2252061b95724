package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meCodeKo/siverek-depo/config"
	"github.com/meCodeKo/siverek-depo/models"
)

// setupTestDB points the global collections at a scratch database. The test
// is skipped when no MongoDB is reachable.
func setupTestDB(t *testing.T) {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("mongodb not available: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("mongodb not reachable: %v", err)
	}

	db := client.Database("siverekdepo_test")
	require.NoError(t, db.Drop(context.Background()))

	config.DB = db
	config.ItemCollection = db.Collection("items")
	config.TransactionCollection = db.Collection("transactions")
	config.CategoryCollection = db.Collection("categories")
	config.LocationCollection = db.Collection("locations")
	config.UserCollection = db.Collection("users")
	config.SettingsCollection = db.Collection("settings")
	config.CounterCollection = db.Collection("counters")

	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	require.NoError(t, InitializeCounters())
}

func seedItem(t *testing.T, quantity int) *models.Item {
	t.Helper()

	cat := &models.Category{ID: "KTG001", Name: "Network Equipment", IsActive: true, CreatedAt: time.Now()}
	require.NoError(t, CreateCategory(cat))
	loc := &models.Location{ID: "LOC001", Name: "Main Warehouse", IsActive: true, CreatedAt: time.Now()}
	require.NoError(t, CreateLocation(loc))

	item := &models.Item{
		ID:            "ITM0001",
		Name:          "Cisco 24-Port Switch",
		Category:      cat.ID,
		Location:      loc.ID,
		Quantity:      quantity,
		MinStockLevel: 2,
		Unit:          "piece",
		Status:        models.StatusActive,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	require.NoError(t, CreateItem(item))
	return item
}

func ledgerCount(t *testing.T) int64 {
	t.Helper()
	n, err := config.TransactionCollection.CountDocuments(context.Background(), bson.M{})
	require.NoError(t, err)
	return n
}

func TestRecordTransaction_OutUpdatesItemAndAppends(t *testing.T) {
	setupTestDB(t)
	item := seedItem(t, 10)

	tx, err := RecordTransaction(models.TransactionInput{
		ItemID: item.ID, Type: models.TxOut, Quantity: 6, Reason: "Issued to IT office",
	}, "Ahmet Kaya")
	require.NoError(t, err)
	assert.Equal(t, 10, tx.PreviousQuantity)
	assert.Equal(t, 4, tx.NewQuantity)
	assert.Equal(t, "Ahmet Kaya", tx.PerformedBy)

	got, err := GetItemByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Quantity)
	assert.Equal(t, int64(1), ledgerCount(t))
}

func TestRecordTransaction_RejectedOutWritesNothing(t *testing.T) {
	setupTestDB(t)
	item := seedItem(t, 4)

	_, err := RecordTransaction(models.TransactionInput{
		ItemID: item.ID, Type: models.TxOut, Quantity: 20, Reason: "Bulk issue",
	}, "Ahmet Kaya")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidQuantity))

	got, err := GetItemByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Quantity, "quantity unchanged after rejection")
	assert.Equal(t, int64(0), ledgerCount(t), "nothing appended after rejection")
}

func TestRecordTransaction_StaleQuantityConflicts(t *testing.T) {
	setupTestDB(t)
	item := seedItem(t, 10)

	// Another writer moves the quantity between our read and our swap.
	require.NoError(t, casItemQuantity(item.ID, 10, 9))

	err := casItemQuantity(item.ID, 10, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrConflict))

	got, err := GetItemByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Quantity)
}

func TestInitialStockEntry_PersistsSynthesizedEntry(t *testing.T) {
	setupTestDB(t)
	item := seedItem(t, 7)

	tx, err := InitialStockEntry(item, "")
	require.NoError(t, err)
	assert.Equal(t, models.TxIn, tx.Type)
	assert.Equal(t, 0, tx.PreviousQuantity)
	assert.Equal(t, 7, tx.NewQuantity)
	assert.Equal(t, "System", tx.PerformedBy)

	entries, err := QueryTransactions(models.TransactionFilter{ItemID: item.ID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Initial stock entry", entries[0].Reason)
}
