package model

import "errors"

// Error kinds shared by the store and both programs. Operations wrap these
// with context; callers branch on them with errors.Is.
var (
	ErrFileUnreadable      = errors.New("file unreadable")
	ErrFileCorrupt         = errors.New("file corrupt")
	ErrFileUnwritable      = errors.New("file unwritable")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrRecordNotFound      = errors.New("record not found")
	ErrInvalidNumericInput = errors.New("invalid numeric input")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrInvalidRecord       = errors.New("invalid record")
)
