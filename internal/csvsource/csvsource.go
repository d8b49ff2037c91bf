// Package csvsource reads bank-export CSV records of the fixed shape
// date, payee, amount.
package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Record is one transaction row. Amounts stay as strings; formatting and
// sign handling happen downstream.
type Record struct {
	Date   string
	Payee  string
	Amount string
}

// Reader streams records from a CSV source, reporting the offending line on
// malformed rows.
type Reader struct {
	csv *csv.Reader
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	return &Reader{csv: cr}
}

// Next returns the next record, or io.EOF when the source is exhausted.
func (r *Reader) Next() (Record, error) {
	fields, err := r.csv.Read()
	if err == io.EOF {
		return Record{}, io.EOF
	}
	if err != nil {
		return Record{}, fmt.Errorf("read csv: %w", err)
	}
	return Record{Date: fields[0], Payee: fields[1], Amount: fields[2]}, nil
}

// ReadAll collects every remaining record.
func (r *Reader) ReadAll() ([]Record, error) {
	var records []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}
