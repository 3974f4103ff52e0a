// Package changelog keeps an append-only CSV audit trail of data
// mutations, so edits and deletes behind the PIN gate stay traceable.
package changelog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one row in the change log.
type Entry struct {
	Timestamp     time.Time
	Action        string // add, edit, delete, recurring, rollover, import
	MonthKey      string
	TransactionID string
	Details       string
}

// Header is the CSV header for changelog.csv.
const Header = "timestamp,action,month,transaction_id,details"

const (
	logFile      = "changelog.csv"
	numFields    = 5
	colTimestamp = 0
	colAction    = 1
	colMonth     = 2
	colTxID      = 3
	colDetails   = 4
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colAction] = e.Action
	row[colMonth] = e.MonthKey
	row[colTxID] = e.TransactionID
	row[colDetails] = e.Details
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp:     ts,
		Action:        record[colAction],
		MonthKey:      record[colMonth],
		TransactionID: record[colTxID],
		Details:       record[colDetails],
	}, nil
}

// Append writes entries to <dataDir>/changelog.csv, creating the file and
// header if needed.
func Append(dataDir string, entries []Entry) error {
	path := filepath.Join(dataDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening change log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	return cw.Error()
}

// Record appends a single entry stamped with the current time.
func Record(dataDir, action, monthKey, transactionID, details string) error {
	return Append(dataDir, []Entry{{
		Timestamp:     time.Now(),
		Action:        action,
		MonthKey:      monthKey,
		TransactionID: transactionID,
		Details:       details,
	}})
}

// Read returns all entries from <dataDir>/changelog.csv.
// Returns an empty slice if the file does not exist.
func Read(dataDir string) ([]Entry, error) {
	path := filepath.Join(dataDir, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening change log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading change log CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
