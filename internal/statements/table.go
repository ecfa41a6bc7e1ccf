package statements

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is an ordered tabular statement. The first column holds metric labels.
type Table struct {
	Columns []string
	Rows    []Row
}

// Row is one record of a Table. Values line up with the table's columns and
// are string, float64 or nil.
type Row struct {
	columns []string
	values  []any
}

// EmptyTable returns a table with non-nil, zero-length columns and rows.
func EmptyTable() Table {
	return Table{Columns: []string{}, Rows: []Row{}}
}

// NewRow builds a row over columns. Missing trailing values are nil.
func NewRow(columns []string, values ...any) Row {
	vals := make([]any, len(columns))
	copy(vals, values)
	return Row{columns: columns, values: vals}
}

// Label returns the first-column value as text.
func (r Row) Label() string {
	if len(r.values) == 0 {
		return ""
	}
	switch v := r.values[0].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Value returns the value for column.
func (r Row) Value(column string) (any, bool) {
	for i, c := range r.columns {
		if c == column {
			return r.values[i], true
		}
	}
	return nil, false
}

// Values returns a copy of the row values in column order.
func (r Row) Values() []any {
	out := make([]any, len(r.values))
	copy(out, r.values)
	return out
}

// MarshalJSON encodes the row as an object whose keys keep column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseTable reads CSV content with a header row into a Table.
func ParseTable(content []byte) (Table, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		return Table{}, fmt.Errorf("%w: content is not valid UTF-8", ErrMalformedInput)
	}

	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, fmt.Errorf("%w: no columns", ErrMalformedInput)
		}
		return Table{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	columns := uniqueColumns(header)

	table := Table{Columns: columns, Rows: []Row{}}
	line := 1
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return Table{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		if len(record) > len(columns) {
			return Table{}, fmt.Errorf("%w: record %d has %d fields, header has %d", ErrMalformedInput, line, len(record), len(columns))
		}

		values := make([]any, len(columns))
		for i, cell := range record {
			if i == 0 {
				values[i] = cell
				continue
			}
			values[i] = parseCell(cell)
		}
		table.Rows = append(table.Rows, Row{columns: columns, values: values})
	}
	return table, nil
}

// uniqueColumns names blank headers "Unnamed: N" and suffixes repeats with ".1", ".2".
func uniqueColumns(header []string) []string {
	seen := make(map[string]struct{}, len(header))
	out := make([]string, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		candidate := name
		for n := 1; ; n++ {
			if _, dup := seen[candidate]; !dup {
				break
			}
			candidate = name + "." + strconv.Itoa(n)
		}
		seen[candidate] = struct{}{}
		out[i] = candidate
	}
	return out
}

func parseCell(cell string) any {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return cell
		}
		return f
	}
	return cell
}
