// Package tabular turns uploaded comma-delimited text into header-keyed rows.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

const utf8BOM = "\uFEFF"

// ParseError is returned when the input stream itself cannot be read.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("tabular: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("tabular: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrInvalidEncoding marks input that is not valid UTF-8 text.
var ErrInvalidEncoding = errors.New("input is not valid UTF-8 text")

// Row maps header names to cell values for one data line.
type Row map[string]string

// Get returns the value under header, or "" when the row has no such cell.
func (r Row) Get(header string) string {
	return r[header]
}

// Has reports whether the row carries a non-empty value under header.
func (r Row) Has(header string) bool {
	return r[header] != ""
}

// Rows reads a header line from r and yields one Row per following record, in order.
// The sequence reads r lazily and can be ranged over once.
//
// Records shorter than the header leave the missing headers absent and extra cells
// are dropped. Only read failures and invalid UTF-8 are reported, as *ParseError,
// after which the sequence stops.
func Rows(r io.Reader) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true
		reader.ReuseRecord = false

		var headers []string
		for {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				line := 0
				var csvErr *csv.ParseError
				if errors.As(err, &csvErr) {
					line = csvErr.Line
				}
				yield(nil, &ParseError{Line: line, Err: err})
				return
			}
			if !validRecord(record) {
				line, _ := reader.FieldPos(0)
				yield(nil, &ParseError{Line: line, Err: ErrInvalidEncoding})
				return
			}

			if headers == nil {
				headers = normalizeHeaders(record)
				continue
			}
			if isBlank(record) {
				continue
			}

			row := make(Row, len(headers))
			for i, h := range headers {
				if i >= len(record) {
					break
				}
				if h == "" {
					continue
				}
				row[h] = strings.TrimSpace(record[i])
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}

// Collect drains a row sequence into a slice, stopping at the first error.
func Collect(seq iter.Seq2[Row, error]) ([]Row, error) {
	var rows []Row
	for row, err := range seq {
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func normalizeHeaders(record []string) []string {
	headers := make([]string, len(record))
	for i, h := range record {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		headers[i] = strings.TrimSpace(h)
	}
	return headers
}

func validRecord(record []string) bool {
	for _, field := range record {
		if !utf8.ValidString(field) {
			return false
		}
	}
	return true
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
