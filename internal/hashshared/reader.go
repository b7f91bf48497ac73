package hashshared

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Column names the input table must carry.
const (
	ColumnName  = "Name"
	ColumnValue = "Value"
)

// Entry is one (Name, Value) row of the input table.
type Entry struct {
	Name  string
	Value string
	Line  int
}

// ReadEntries reads the whole table from r. The first record is the header;
// it must name both columns, in any position. A leading UTF-8 byte-order mark
// is dropped. Input with no header at all is an empty table.
func ReadEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read table header: %w", err)
	}
	nameIdx, valueIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case ColumnName:
			if nameIdx < 0 {
				nameIdx = i
			}
		case ColumnValue:
			if valueIdx < 0 {
				valueIdx = i
			}
		}
	}
	if nameIdx < 0 {
		return nil, fmt.Errorf("read table header: missing %q column", ColumnName)
	}
	if valueIdx < 0 {
		return nil, fmt.Errorf("read table header: missing %q column", ColumnValue)
	}

	var entries []Entry
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read table: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(record) <= nameIdx || len(record) <= valueIdx {
			return nil, fmt.Errorf("read table: line %d: expected at least %d fields, got %d", line, max(nameIdx, valueIdx)+1, len(record))
		}
		entries = append(entries, Entry{Name: record[nameIdx], Value: record[valueIdx], Line: line})
	}
	return entries, nil
}
