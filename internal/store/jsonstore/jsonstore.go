package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/idilsaglam/redthread/internal/model"
)

// JSON-backed storage. Single file, human-readable, whole-file reads and
// writes. No locking: one process owns its file.

const indent = "    "

// File is the backing file of one store.
type File[T model.Record] struct {
	path   string
	fs     afero.Fs
	log    *zap.Logger
	schema *gojsonschema.Schema
}

type settings struct {
	fs  afero.Fs
	log *zap.Logger
}

// Option configures a File.
type Option func(*settings)

// WithFs swaps the filesystem (default: the OS filesystem).
func WithFs(fs afero.Fs) Option { return func(s *settings) { s.fs = fs } }

// WithLogger sets the diagnostics logger (default: no-op).
func WithLogger(l *zap.Logger) Option { return func(s *settings) { s.log = l } }

// Open prepares the file at path. Nothing is read until Load. If T
// publishes a JSON schema it is compiled here and checked on every Load.
func Open[T model.Record](path string, opts ...Option) (*File[T], error) {
	s := settings{fs: afero.NewOsFs(), log: zap.NewNop()}
	for _, o := range opts {
		o(&s)
	}
	f := &File[T]{path: path, fs: s.fs, log: s.log.With(zap.String("file", path))}

	var zero T
	if sp, ok := any(zero).(model.SchemaProvider); ok {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(sp.JSONSchema()))
		if err != nil {
			return nil, fmt.Errorf("compile schema: %w", err)
		}
		f.schema = schema
	}
	return f, nil
}

func (f *File[T]) Path() string { return f.path }

// Load reads the whole file. The returned store is always usable: a missing
// file gives an empty store and no error, an unreadable or corrupt file gives
// an empty store and an error the caller should report as a warning.
func (f *File[T]) Load() (*Store[T], error) {
	b, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.log.Debug("no data file, starting empty")
			return NewStore[T](nil), nil
		}
		f.log.Warn("read failed", zap.Error(err))
		return NewStore[T](nil), fmt.Errorf("%w: %v", model.ErrFileUnreadable, err)
	}

	if f.schema != nil {
		res, err := f.schema.Validate(gojsonschema.NewBytesLoader(b))
		if err != nil {
			f.log.Warn("not valid json", zap.Error(err))
			return NewStore[T](nil), fmt.Errorf("%w: %v", model.ErrFileCorrupt, err)
		}
		if !res.Valid() {
			msgs := make([]string, 0, len(res.Errors()))
			for _, d := range res.Errors() {
				msgs = append(msgs, d.String())
			}
			f.log.Warn("schema mismatch", zap.Strings("errors", msgs))
			return NewStore[T](nil), fmt.Errorf("%w: %s", model.ErrFileCorrupt, strings.Join(msgs, "; "))
		}
	}

	var records []T
	if err := json.Unmarshal(b, &records); err != nil {
		f.log.Warn("json unmarshal failed", zap.Error(err))
		return NewStore[T](nil), fmt.Errorf("%w: %v", model.ErrFileCorrupt, err)
	}
	f.log.Debug("loaded", zap.Int("records", len(records)))
	return NewStore(records), nil
}

// Save overwrites the file with every record in s. The store itself is
// never touched, whether or not the write succeeds.
func (f *File[T]) Save(s *Store[T]) error {
	b, err := json.MarshalIndent(s.Records(), "", indent)
	if err != nil {
		f.log.Warn("json marshal failed", zap.Error(err))
		return fmt.Errorf("%w: json marshal: %v", model.ErrFileUnwritable, err)
	}
	b = append(b, '\n')
	if err := afero.WriteFile(f.fs, f.path, b, 0o644); err != nil {
		f.log.Warn("write failed", zap.Error(err))
		return fmt.Errorf("%w: %v", model.ErrFileUnwritable, err)
	}
	f.log.Debug("saved", zap.Int("records", s.Len()))
	return nil
}
