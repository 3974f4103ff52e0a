package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cashmonitor-dev/cashmonitor/internal/model"
	"github.com/cashmonitor-dev/cashmonitor/internal/monthkey"
)

// ParseError marks a month file that exists but does not parse as a valid
// document. The operation that hit it aborts with no partial load.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("corrupt data in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Store reads and writes one JSON document per calendar month under a
// single data directory.
type Store struct {
	dataDir string
}

// New creates a Store rooted at dataDir, creating the directory if needed.
// Failure here is fatal for the application.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dataDir, err)
	}
	return &Store{dataDir: dataDir}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dataDir
}

func (s *Store) monthPath(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}

// Load returns the document for a month key. A missing file yields an empty
// document; an existing file that does not parse yields a *ParseError.
func (s *Store) Load(key string) (*model.MonthDocument, error) {
	if !monthkey.Valid(key) {
		return nil, fmt.Errorf("invalid month key %q", key)
	}

	path := s.monthPath(key)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.NewMonthDocument(key), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading month file %s: %w", path, err)
	}

	doc, err := UnmarshalDocument(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if doc.MonthKey != key {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("file claims month %q", doc.MonthKey)}
	}
	return doc, nil
}

// Save validates and persists a document atomically, so a crash mid-write
// never corrupts the prior valid state.
func (s *Store) Save(doc *model.MonthDocument) error {
	if errs := ValidateDocument(doc); len(errs) > 0 {
		return joinValidationErrors(errs)
	}

	data, err := MarshalDocument(doc)
	if err != nil {
		return err
	}

	if err := WriteFileAtomic(s.monthPath(doc.MonthKey), data, 0o644); err != nil {
		return fmt.Errorf("saving month %s: %w", doc.MonthKey, err)
	}
	return nil
}

// WriteFileAtomic writes data to path via a temp file in the same
// directory: write, sync, then rename over the target. A crash mid-write
// leaves the previous contents intact.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("setting mode: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("syncing: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing: %w", err)
	}
	return nil
}

// ListMonths returns the sorted month keys for which a file exists.
// Files whose names are not month keys are ignored.
func (s *Store) ListMonths() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("reading data directory: %w", err)
	}

	var keys []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		key := strings.TrimSuffix(e.Name(), ".json")
		if !monthkey.Valid(key) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// LoadRange loads the documents for every stored month in [from, to]
// inclusive, in calendar order. Empty bounds mean no bound.
func (s *Store) LoadRange(from, to string) ([]*model.MonthDocument, error) {
	keys, err := s.ListMonths()
	if err != nil {
		return nil, err
	}

	var docs []*model.MonthDocument
	for _, key := range keys {
		if from != "" && key < from {
			continue
		}
		if to != "" && key > to {
			continue
		}
		doc, err := s.Load(key)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
