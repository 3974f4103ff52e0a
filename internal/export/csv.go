package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashmonitor-dev/cashmonitor/internal/model"
	"github.com/cashmonitor-dev/cashmonitor/internal/monthkey"
)

// Header is the CSV header for exported transactions.
const Header = "month,date,type,category,amount,description"

const (
	numFields  = 6
	dateFormat = "2006-01-02"
	colMonth   = 0
	colDate    = 1
	colType    = 2
	colCat     = 3
	colAmount  = 4
	colDesc    = 5
)

// Row pairs a transaction with the month document it belongs to.
type Row struct {
	MonthKey    string
	Transaction model.Transaction
}

// Write flattens one or more month documents into CSV rows in date order
// within each month.
func Write(w io.Writer, docs []*model.MonthDocument) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, doc := range docs {
		for _, tx := range doc.Transactions {
			row := make([]string, numFields)
			row[colMonth] = doc.MonthKey
			row[colDate] = tx.Date.Format(dateFormat)
			row[colType] = string(tx.Kind)
			row[colCat] = tx.Category
			row[colAmount] = tx.Amount.StringFixed(2)
			row[colDesc] = tx.Description
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing row for %s: %w", tx.ID, err)
			}
		}
	}
	return cw.Error()
}

// WriteFile writes documents to a CSV file at path.
func WriteFile(path string, docs []*model.MonthDocument) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := Write(f, docs); err != nil {
		return err
	}
	return f.Close()
}

// Read parses exported CSV back into rows. Each row gets a fresh
// transaction ID; imports match on content, not identity.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading export CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func unmarshalRow(rec []string) (Row, error) {
	if !monthkey.Valid(rec[colMonth]) {
		return Row{}, fmt.Errorf("invalid month key %q", rec[colMonth])
	}

	date, err := time.Parse(dateFormat, rec[colDate])
	if err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", rec[colDate], err)
	}
	if !monthkey.Contains(rec[colMonth], date) {
		return Row{}, fmt.Errorf("date %s outside month %s", rec[colDate], rec[colMonth])
	}

	kind := model.Kind(rec[colType])
	if !kind.Valid() {
		return Row{}, fmt.Errorf("unknown type %q", rec[colType])
	}

	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}

	return Row{
		MonthKey:    rec[colMonth],
		Transaction: model.NewTransaction(date, kind, rec[colCat], amount, rec[colDesc]),
	}, nil
}
