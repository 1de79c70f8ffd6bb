package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitSameKeyIgnoresCase(t *testing.T) {
	h := Habit{Name: "Read"}
	assert.True(t, h.SameKey("read"))
	assert.True(t, h.SameKey("READ"))
	assert.False(t, h.SameKey("Run"))
}

func TestItemSameKeyIsExact(t *testing.T) {
	it := Item{ID: "A1"}
	assert.True(t, it.SameKey("A1"))
	assert.False(t, it.SameKey("a1"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		rec     any
		wantErr string
	}{
		{"habit ok", Habit{Name: "Read"}, ""},
		{"habit blank", Habit{}, "name cannot be empty"},
		{"item ok", Item{ID: "A1", Name: "Widget", Price: 2.5, Quantity: 10}, ""},
		{"item no id", Item{Name: "Widget"}, "id cannot be empty"},
		{"item negative qty", Item{ID: "A1", Name: "Widget", Quantity: -1}, "quantity must be at least 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.rec)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidRecord)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseItem(t *testing.T) {
	it, err := ParseItem(" A1 ", "Widget ", "2.5", "10")
	require.NoError(t, err)
	assert.Equal(t, Item{ID: "A1", Name: "Widget", Price: 2.5, Quantity: 10}, it)

	_, err = ParseItem("A1", "Widget", "cheap", "10")
	assert.ErrorIs(t, err, ErrInvalidNumericInput)

	_, err = ParseItem("A1", "Widget", "2.5", "1.5")
	assert.ErrorIs(t, err, ErrInvalidNumericInput)
}

func TestItemUpdateBlankKeepsValue(t *testing.T) {
	it := Item{ID: "A1", Name: "Widget", Price: 2.5, Quantity: 10}
	require.NoError(t, ItemUpdate{Price: "3.0", Quantity: ""}.Apply(&it))
	assert.Equal(t, Item{ID: "A1", Name: "Widget", Price: 3.0, Quantity: 10}, it)
}

func TestItemUpdateIsAllOrNothing(t *testing.T) {
	it := Item{ID: "A1", Name: "Widget", Price: 2.5, Quantity: 10}
	err := ItemUpdate{Price: "3.0", Quantity: "lots"}.Apply(&it)
	require.ErrorIs(t, err, ErrInvalidNumericInput)
	assert.Equal(t, 2.5, it.Price)
	assert.Equal(t, 10, it.Quantity)
}

func TestNewItemID(t *testing.T) {
	a, b := NewItemID(), NewItemID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}

func TestParseItemRejectsNonFinitePrice(t *testing.T) {
	for _, price := range []string{"inf", "+Inf", "-inf", "Infinity", "NaN"} {
		t.Run(price, func(t *testing.T) {
			_, err := ParseItem("A1", "Widget", price, "1")
			assert.ErrorIs(t, err, ErrInvalidNumericInput)

			it := Item{ID: "A1", Name: "Widget", Price: 2.5, Quantity: 10}
			err = ItemUpdate{Price: price}.Apply(&it)
			assert.ErrorIs(t, err, ErrInvalidNumericInput)
			assert.Equal(t, 2.5, it.Price)
		})
	}
}
