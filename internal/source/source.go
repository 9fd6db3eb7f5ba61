// Package source loads raw columns from CSV and JSON files.
//
// Both readers produce a Data value: the column names in file order and one
// cell slice per column. Cells keep their source type (strings for CSV,
// strings, numbers and booleans for JSON); empty and null cells become nil so
// the classification engine treats them as missing.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/JonMunkholm/idataframe/internal/core"
)

var (
	ErrEmptyFile         = errors.New("empty file")
	ErrInvalidCSV        = errors.New("invalid csv")
	ErrInvalidJSON       = errors.New("invalid json")
	ErrUnsupportedFormat = errors.New("unsupported source format")
)

// Data is a set of raw columns in file order.
type Data struct {
	Names   []string
	Columns map[string][]any
}

// Rows returns the number of data rows.
func (d *Data) Rows() int {
	if len(d.Names) == 0 {
		return 0
	}
	return len(d.Columns[d.Names[0]])
}

// Frame wraps the data in a core.Frame keeping the file column order.
func (d *Data) Frame() (*core.Frame, error) {
	return core.NewFrame(d.Columns, d.Names)
}

// addColumn registers a new column name. Duplicate names are rejected.
func (d *Data) addColumn(name string, rows int) error {
	if _, dup := d.Columns[name]; dup {
		return fmt.Errorf("duplicate column %q", name)
	}
	d.Names = append(d.Names, name)
	d.Columns[name] = make([]any, rows)
	return nil
}

func newData() *Data {
	return &Data{Columns: make(map[string][]any)}
}

// Load reads a CSV or JSON file, chosen by extension.
func Load(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return ReadCSV(f)
	case ".json":
		raw, err := io.ReadAll(cleanReader(f))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return ReadJSON(raw)
	default:
		return nil, fmt.Errorf("%w: %s (use .csv or .json)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadCSV reads a CSV whose first non-empty record is the header.
// Short records are padded with nil; extra trailing cells are ignored.
func ReadCSV(r io.Reader) (*Data, error) {
	cr := csv.NewReader(cleanReader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}

	headerIdx := -1
	for i, rec := range records {
		if !isEmptyRow(rec) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, ErrEmptyFile
	}

	var body [][]string
	for _, rec := range records[headerIdx+1:] {
		if !isEmptyRow(rec) {
			body = append(body, rec)
		}
	}

	data := newData()
	header := records[headerIdx]
	for j, h := range header {
		name := core.CleanCell(h)
		if name == "" {
			return nil, fmt.Errorf("%w: empty header in column %d", ErrInvalidCSV, j+1)
		}
		if err := data.addColumn(name, len(body)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
		}
	}

	for i, rec := range body {
		for j, name := range data.Names {
			if j >= len(rec) || strings.TrimSpace(rec[j]) == "" {
				continue
			}
			data.Columns[name][i] = rec[j]
		}
	}

	return data, nil
}

// ReadJSON accepts either an array of records ([{"Email": ...}, ...]) or an
// object of columns ({"Email": [...], ...}).
func ReadJSON(raw []byte) (*Data, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidJSON
	}

	root := gjson.ParseBytes(raw)
	switch {
	case root.IsArray():
		return readRecords(root)
	case root.IsObject():
		return readColumns(root)
	default:
		return nil, fmt.Errorf("%w: expected an array of records or an object of columns", ErrInvalidJSON)
	}
}

func readRecords(root gjson.Result) (*Data, error) {
	records := root.Array()
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	data := newData()
	for i, rec := range records {
		if !rec.IsObject() {
			return nil, fmt.Errorf("%w: record %d is not an object", ErrInvalidJSON, i)
		}
		rec.ForEach(func(key, _ gjson.Result) bool {
			if _, seen := data.Columns[key.String()]; !seen {
				data.Names = append(data.Names, key.String())
				data.Columns[key.String()] = make([]any, len(records))
			}
			return true
		})
	}

	for i, rec := range records {
		rec.ForEach(func(key, value gjson.Result) bool {
			data.Columns[key.String()][i] = jsonCell(value)
			return true
		})
	}

	if len(data.Names) == 0 {
		return nil, ErrEmptyFile
	}
	return data, nil
}

func readColumns(root gjson.Result) (*Data, error) {
	rows := 0
	var err error
	root.ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			err = fmt.Errorf("%w: column %q is not an array", ErrInvalidJSON, key.String())
			return false
		}
		if n := len(value.Array()); n > rows {
			rows = n
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	data := newData()
	root.ForEach(func(key, value gjson.Result) bool {
		if err = data.addColumn(key.String(), rows); err != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidJSON, err)
			return false
		}
		for i, cell := range value.Array() {
			data.Columns[key.String()][i] = jsonCell(cell)
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	if len(data.Names) == 0 || rows == 0 {
		return nil, ErrEmptyFile
	}
	return data, nil
}

// jsonCell converts a JSON value to a raw cell. Integral numbers become
// int64, nested values keep their raw JSON text.
func jsonCell(v gjson.Result) any {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.String:
		if strings.TrimSpace(v.Str) == "" {
			return nil
		}
		return v.Str
	case gjson.Number:
		if !strings.ContainsAny(v.Raw, ".eE") {
			return v.Int()
		}
		return v.Num
	case gjson.True:
		return true
	case gjson.False:
		return false
	default:
		return v.Raw
	}
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
