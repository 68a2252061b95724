package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextQuantity_In(t *testing.T) {
	next, err := NextQuantity(10, TxIn, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, next)

	next, err = NextQuantity(0, TxIn, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, next)
}

func TestNextQuantity_Out(t *testing.T) {
	next, err := NextQuantity(10, TxOut, 6)
	require.NoError(t, err)
	assert.Equal(t, 4, next)

	// draining to exactly zero is allowed
	next, err = NextQuantity(4, TxOut, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, next)
}

func TestNextQuantity_OutRejectsNegativeResult(t *testing.T) {
	_, err := NextQuantity(4, TxOut, 20)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidQuantity))
}

func TestNextQuantity_AdjustmentIsAbsolute(t *testing.T) {
	next, err := NextQuantity(10, TxAdjustment, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, next)

	next, err = NextQuantity(0, TxAdjustment, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, next)
}

func TestNextQuantity_RejectsNegativeInput(t *testing.T) {
	for _, txType := range []string{TxIn, TxOut, TxAdjustment} {
		_, err := NextQuantity(10, txType, -1)
		require.Error(t, err, txType)
		assert.True(t, errors.Is(err, ErrInvalidQuantity), txType)
	}
}

func TestNextQuantity_UnknownType(t *testing.T) {
	_, err := NextQuantity(10, "transfer", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestInitialStockTransaction(t *testing.T) {
	item := &Item{ID: "ITM0007", Quantity: 7}

	tx := InitialStockTransaction(item, "Ahmet Kaya", "TRX000001")
	assert.Equal(t, "TRX000001", tx.ID)
	assert.Equal(t, "ITM0007", tx.ItemID)
	assert.Equal(t, TxIn, tx.Type)
	assert.Equal(t, 0, tx.PreviousQuantity)
	assert.Equal(t, 7, tx.Quantity)
	assert.Equal(t, 7, tx.NewQuantity)
	assert.Equal(t, "Initial stock entry", tx.Reason)
	assert.Equal(t, "Ahmet Kaya", tx.PerformedBy)
}

func TestInitialStockTransaction_PerformerFallback(t *testing.T) {
	item := &Item{ID: "ITM0008", Quantity: 0}

	tx := InitialStockTransaction(item, "", "TRX000002")
	assert.Equal(t, "System", tx.PerformedBy)
	assert.Equal(t, 0, tx.NewQuantity)
}

func TestNextQuantity_SequentialOuts(t *testing.T) {
	// two withdrawals applied one after the other compose correctly
	q, err := NextQuantity(10, TxOut, 6)
	require.NoError(t, err)
	q, err = NextQuantity(q, TxOut, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, q)

	_, err = NextQuantity(q, TxOut, 1)
	assert.True(t, errors.Is(err, ErrInvalidQuantity))
}
