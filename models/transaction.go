package models

import (
	"fmt"
	"time"
)

const (
	TxIn         = "in"
	TxOut        = "out"
	TxAdjustment = "adjustment"
)

func ValidTransactionType(t string) bool {
	return t == TxIn || t == TxOut || t == TxAdjustment
}

// StockTransaction is one entry in the append-only stock ledger. Entries are
// never updated or deleted once written.
type StockTransaction struct {
	ID               string    `json:"id" bson:"_id"`
	ItemID           string    `json:"itemId" bson:"item_id"`
	Type             string    `json:"type" bson:"type"`
	Quantity         int       `json:"quantity" bson:"quantity"`
	PreviousQuantity int       `json:"previousQuantity" bson:"previous_quantity"`
	NewQuantity      int       `json:"newQuantity" bson:"new_quantity"`
	Reason           string    `json:"reason" bson:"reason"`
	PerformedBy      string    `json:"performedBy" bson:"performed_by"`
	Notes            string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt" bson:"created_at"`
}

// TransactionInput carries the client-supplied fields for a ledger entry.
// Quantity is a delta for in/out and the absolute target for adjustment.
type TransactionInput struct {
	ItemID   string `json:"itemId"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
	Notes    string `json:"notes"`
}

// TransactionFilter narrows ledger queries. Zero values mean "no constraint".
type TransactionFilter struct {
	ItemID string
	Type   string
	From   time.Time
	To     time.Time
	Search string // matched against reason, notes and performedBy
}

// InitialStockTransaction builds the single "in" entry synthesized when an
// item is created: previous quantity is always zero and an empty performer
// falls back to "System".
func InitialStockTransaction(item *Item, performedBy, id string) *StockTransaction {
	if performedBy == "" {
		performedBy = "System"
	}
	return &StockTransaction{
		ID:               id,
		ItemID:           item.ID,
		Type:             TxIn,
		Quantity:         item.Quantity,
		PreviousQuantity: 0,
		NewQuantity:      item.Quantity,
		Reason:           "Initial stock entry",
		PerformedBy:      performedBy,
		Notes:            "Item added to the system",
		CreatedAt:        time.Now(),
	}
}

// NextQuantity applies a ledger entry of the given type to the current stored
// quantity and returns the resulting total. It rejects any result that would
// drive stock negative before anything is persisted.
func NextQuantity(previous int, txType string, quantity int) (int, error) {
	if quantity < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	switch txType {
	case TxIn:
		return previous + quantity, nil
	case TxOut:
		next := previous - quantity
		if next < 0 {
			return 0, fmt.Errorf("%w: %d out of %d available", ErrInvalidQuantity, quantity, previous)
		}
		return next, nil
	case TxAdjustment:
		// The provided value becomes the absolute new total.
		return quantity, nil
	default:
		return 0, fmt.Errorf("%w: unknown transaction type %q", ErrValidation, txType)
	}
}
