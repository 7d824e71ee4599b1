// internal/adapters/jsonfile/store.go
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ammerola/pharmacy-inventory/internal/core/domain"
	"github.com/ammerola/pharmacy-inventory/internal/core/ports"
)

// DefaultPath is the data file used when none is configured
const DefaultPath = "pharmacy_data.json"

const indent = "    "

// Config holds store configuration
type Config struct {
	Path string
	// AtomicWrite replaces the file through a temp file and rename. When
	// false the file is truncated and rewritten in place.
	AtomicWrite bool
	FileMode    os.FileMode
}

// DefaultConfig returns default store configuration
func DefaultConfig() *Config {
	return &Config{
		Path:        DefaultPath,
		AtomicWrite: true,
		FileMode:    0o644,
	}
}

// Store keeps the record list in a single pretty-printed JSON file
type Store struct {
	fs     afero.Fs
	config *Config
	logger *slog.Logger
}

// Statically assert that *Store implements the RecordStore interface.
var _ ports.RecordStore = (*Store)(nil)

// NewStore creates a store on the given filesystem. A nil fs means the OS
// filesystem.
func NewStore(fs afero.Fs, config *Config, logger *slog.Logger) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if config == nil {
		config = DefaultConfig()
	}
	if config.Path == "" {
		config.Path = DefaultPath
	}
	if config.FileMode == 0 {
		config.FileMode = 0o644
	}

	return &Store{
		fs:     fs,
		config: config,
		logger: logger.With(slog.String("store", "jsonfile")),
	}
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.config.Path
}

// Load reads the whole collection, creating an empty file first if none
// exists
func (s *Store) Load(ctx context.Context) ([]domain.Record, error) {
	exists, err := afero.Exists(s.fs, s.config.Path)
	if err != nil {
		return nil, s.storageError("read", err)
	}

	if !exists {
		s.logger.InfoContext(ctx, "data file missing, initializing empty collection",
			slog.String("path", s.config.Path))
		if err := s.Save(ctx, nil); err != nil {
			return nil, err
		}
		return []domain.Record{}, nil
	}

	data, err := afero.ReadFile(s.fs, s.config.Path)
	if err != nil {
		return nil, s.storageError("read", err)
	}

	var records []domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, s.storageError("parse", err)
	}
	if records == nil {
		records = []domain.Record{}
	}

	s.logger.DebugContext(ctx, "records loaded",
		slog.String("path", s.config.Path),
		slog.Int("count", len(records)))

	return records, nil
}

// Save overwrites the whole collection
func (s *Store) Save(ctx context.Context, records []domain.Record) error {
	if records == nil {
		records = []domain.Record{}
	}

	data, err := encode(records)
	if err != nil {
		return s.storageError("encode", err)
	}

	if s.config.AtomicWrite {
		err = s.writeAtomic(data)
	} else {
		err = afero.WriteFile(s.fs, s.config.Path, data, s.config.FileMode)
	}
	if err != nil {
		return s.storageError("write", err)
	}

	s.logger.DebugContext(ctx, "records saved",
		slog.String("path", s.config.Path),
		slog.Int("count", len(records)),
		slog.Bool("atomic", s.config.AtomicWrite))

	return nil
}

// writeAtomic writes to a sibling temp file and renames it over the target
func (s *Store) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.config.Path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(s.config.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func(cause error) error {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return cause
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(fmt.Errorf("write temp file: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(fmt.Errorf("sync temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := s.fs.Chmod(tmpName, s.config.FileMode); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := s.fs.Rename(tmpName, s.config.Path); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (s *Store) storageError(op string, err error) error {
	var serr *domain.StorageError
	if errors.As(err, &serr) {
		return err
	}
	return &domain.StorageError{Op: op, Path: s.config.Path, Err: err}
}

// encode renders records as 4-space indented JSON without HTML escaping
func encode(records []domain.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
