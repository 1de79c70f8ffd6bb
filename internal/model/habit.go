package model

import "strings"

// Habit is one tracked habit. Names are unique ignoring case.
type Habit struct {
	Name      string `json:"name" validate:"required"`
	Completed bool   `json:"completed"`
}

func (h Habit) Key() string { return h.Name }

func (h Habit) SameKey(key string) bool { return strings.EqualFold(h.Name, key) }

func (Habit) JSONSchema() string { return habitSchema }

// Status is the label shown next to a habit in listings.
func (h Habit) Status() string {
	if h.Completed {
		return "Completed"
	}
	return "Not completed"
}

const habitSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "completed"],
    "properties": {
      "name": {"type": "string"},
      "completed": {"type": "boolean"}
    }
  }
}`
