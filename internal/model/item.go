package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Item is one inventory entry. IDs are unique and compared exactly.
type Item struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=0"`
}

func (it Item) Key() string { return it.ID }

func (it Item) SameKey(key string) bool { return it.ID == key }

func (Item) JSONSchema() string { return itemSchema }

const itemSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name", "price", "quantity"],
    "properties": {
      "id": {"type": "string"},
      "name": {"type": "string"},
      "price": {"type": "number"},
      "quantity": {"type": "integer"}
    }
  }
}`

// NewItemID returns a short random ID for items entered without one.
func NewItemID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// ParseItem builds an item from raw console input. Price and quantity must
// both parse; nothing is returned otherwise.
func ParseItem(id, name, price, quantity string) (Item, error) {
	p, err := parsePrice(price)
	if err != nil {
		return Item{}, err
	}
	q, err := parseQuantity(quantity)
	if err != nil {
		return Item{}, err
	}
	return Item{
		ID:       strings.TrimSpace(id),
		Name:     strings.TrimSpace(name),
		Price:    p,
		Quantity: q,
	}, nil
}

// ItemUpdate carries raw replacement values for an item's numeric fields.
// A blank field keeps the current value.
type ItemUpdate struct {
	Price    string
	Quantity string
}

// Apply parses every provided field before assigning any of them, so a bad
// quantity never leaves the item with a new price.
func (u ItemUpdate) Apply(it *Item) error {
	price, qty := it.Price, it.Quantity
	if s := strings.TrimSpace(u.Price); s != "" {
		p, err := parsePrice(s)
		if err != nil {
			return err
		}
		price = p
	}
	if s := strings.TrimSpace(u.Quantity); s != "" {
		q, err := parseQuantity(s)
		if err != nil {
			return err
		}
		qty = q
	}
	it.Price, it.Quantity = price, qty
	return nil
}

func parsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	p, err := strconv.ParseFloat(s, 64)
	// inf and NaN parse but cannot be written back as JSON
	if err != nil || math.IsInf(p, 0) || math.IsNaN(p) {
		return 0, fmt.Errorf("%w: price %q", ErrInvalidNumericInput, s)
	}
	return p, nil
}

func parseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	q, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: quantity %q", ErrInvalidNumericInput, s)
	}
	return q, nil
}
