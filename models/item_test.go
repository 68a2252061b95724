package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLowStock(t *testing.T) {
	cases := []struct {
		quantity int
		minStock int
		want     bool
	}{
		{quantity: 5, minStock: 10, want: true},
		{quantity: 10, minStock: 10, want: true}, // boundary: equal counts as low
		{quantity: 11, minStock: 10, want: false},
		{quantity: 0, minStock: 0, want: true},
	}
	for _, tc := range cases {
		it := Item{Quantity: tc.quantity, MinStockLevel: tc.minStock}
		assert.Equal(t, tc.want, it.IsLowStock(), "quantity=%d min=%d", tc.quantity, tc.minStock)
	}
}

func validInput() ItemInput {
	return ItemInput{
		Name:          "HP LaserJet Toner",
		Category:      "KTG003",
		Location:      "LOC001",
		Quantity:      12,
		MinStockLevel: 3,
		Unit:          "piece",
	}
}

func TestItemInputValidate_OK(t *testing.T) {
	in := validInput()
	require.NoError(t, in.Validate())
	assert.Equal(t, StatusActive, in.Status, "status defaults to active")
}

func TestItemInputValidate_Required(t *testing.T) {
	for name, mutate := range map[string]func(*ItemInput){
		"name":     func(in *ItemInput) { in.Name = "  " },
		"category": func(in *ItemInput) { in.Category = "" },
		"location": func(in *ItemInput) { in.Location = "" },
	} {
		in := validInput()
		mutate(&in)
		err := in.Validate()
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrValidation), name)
	}
}

func TestItemInputValidate_Negatives(t *testing.T) {
	in := validInput()
	in.Quantity = -1
	assert.True(t, errors.Is(in.Validate(), ErrValidation))

	in = validInput()
	in.MinStockLevel = -5
	assert.True(t, errors.Is(in.Validate(), ErrValidation))
}

func TestItemInputValidate_Enums(t *testing.T) {
	in := validInput()
	in.Unit = "dozen"
	assert.True(t, errors.Is(in.Validate(), ErrValidation))

	in = validInput()
	in.Status = "broken"
	assert.True(t, errors.Is(in.Validate(), ErrValidation))
}
