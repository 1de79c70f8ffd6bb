package jsonstore

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/idilsaglam/redthread/internal/model"
)

// Store is the in-memory, insertion-ordered list of records for one file.
// It is owned by a single session and is not safe for concurrent use.
type Store[T model.Record] struct {
	records []T
}

// NewStore copies records into a new store.
func NewStore[T model.Record](records []T) *Store[T] {
	return &Store[T]{records: slices.Clone(records)}
}

func (s *Store[T]) Len() int { return len(s.records) }

// Records returns a copy of every record, never nil.
func (s *Store[T]) Records() []T {
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// At returns the record at 1-based position index.
func (s *Store[T]) At(index int) (T, error) {
	var zero T
	if err := s.checkIndex(index); err != nil {
		return zero, err
	}
	return s.records[index-1], nil
}

// InsertUnique validates r and appends it unless a record with the same key
// (by the record type's comparison rule) already exists.
func (s *Store[T]) InsertUnique(r T) error {
	if err := model.Validate(r); err != nil {
		return err
	}
	for _, existing := range s.records {
		if existing.SameKey(r.Key()) {
			return fmt.Errorf("%w: %q", model.ErrDuplicateKey, r.Key())
		}
	}
	s.records = append(s.records, r)
	return nil
}

// FindByKey returns the first record whose key equals key exactly.
func (s *Store[T]) FindByKey(key string) (T, bool) {
	i := s.indexOf(key)
	if i < 0 {
		var zero T
		return zero, false
	}
	return s.records[i], true
}

// UpdateFields runs apply on a copy of the first record keyed by key and
// stores the copy only if apply and validation both succeed.
func (s *Store[T]) UpdateFields(key string, apply func(*T) error) error {
	i := s.indexOf(key)
	if i < 0 {
		return fmt.Errorf("%w: %q", model.ErrRecordNotFound, key)
	}
	updated := s.records[i]
	if err := apply(&updated); err != nil {
		return err
	}
	if err := model.Validate(updated); err != nil {
		return err
	}
	s.records[i] = updated
	return nil
}

// Matching yields, in order, the records whose text field contains substr,
// ignoring case.
func (s *Store[T]) Matching(field func(T) string, substr string) iter.Seq[T] {
	needle := strings.ToLower(substr)
	return func(yield func(T) bool) {
		for _, r := range s.records {
			if !strings.Contains(strings.ToLower(field(r)), needle) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// FilterContains collects Matching. An empty result means no match.
func (s *Store[T]) FilterContains(field func(T) string, substr string) []T {
	out := slices.Collect(s.Matching(field, substr))
	if out == nil {
		out = []T{}
	}
	return out
}

// MarkField applies set to the record at 1-based position index.
func (s *Store[T]) MarkField(index int, set func(*T)) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	set(&s.records[index-1])
	return nil
}

func (s *Store[T]) indexOf(key string) int {
	return slices.IndexFunc(s.records, func(r T) bool { return r.Key() == key })
}

func (s *Store[T]) checkIndex(index int) error {
	if index < 1 || index > len(s.records) {
		return fmt.Errorf("%w: have %d, got %d", model.ErrIndexOutOfRange, len(s.records), index)
	}
	return nil
}
