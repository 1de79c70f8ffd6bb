package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Record is anything the store can hold: it has a key field and knows how
// that key compares for duplicate detection.
type Record interface {
	Key() string
	SameKey(key string) bool
}

// SchemaProvider is implemented by record types that publish a JSON schema
// for the backing file (an array of the record).
type SchemaProvider interface {
	JSONSchema() string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags on a record and reports the first failing
// field as ErrInvalidRecord.
func Validate(r any) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return fmt.Errorf("%w: %s %s", ErrInvalidRecord, strings.ToLower(fe.Field()), describe(fe))
	}
	return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "cannot be empty"
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
