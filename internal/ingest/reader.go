package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// datePattern keeps date parsing strict: time.Parse alone would accept
// unpadded day/month values.
var datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

const dateLayout = "02/01/2006"

// listCSVFiles returns the paths of all *.csv files directly inside dir.
// A missing directory is not an error: ingestion treats it as zero files.
func listCSVFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// Row is one CSV data row keyed by header name.
type Row struct {
	File   string
	Line   int
	values map[string]string
}

// Value returns the raw cell under col, or a missing-column RowError.
func (r Row) Value(col string) (string, error) {
	v, ok := r.values[col]
	if !ok {
		return "", &RowError{Kind: RowErrMissingColumn, File: r.File, Line: r.Line, Value: col}
	}
	return v, nil
}

// Text returns the cell lower-cased and trimmed. All string fields are
// lower-cased on the way in so factor joins are case-insensitive.
func (r Row) Text(col string) (string, error) {
	v, err := r.Value(col)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(v)), nil
}

// Float parses the cell as a number. An empty cell defaults to 0 rather
// than failing.
func (r Row) Float(col string) (float64, error) {
	v, err := r.Value(col)
	if err != nil {
		return 0, err
	}

	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return 0, &RowError{Kind: RowErrInvalidNumber, File: r.File, Line: r.Line, Value: v}
	}
	return d.InexactFloat64(), nil
}

// Int parses the cell as an integer. An empty cell defaults to 0; a
// fractional value is rejected rather than truncated.
func (r Row) Int(col string) (int64, error) {
	v, err := r.Value(col)
	if err != nil {
		return 0, err
	}

	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}

	d, err := decimal.NewFromString(v)
	if err != nil || !d.IsInteger() {
		return 0, &RowError{Kind: RowErrInvalidNumber, File: r.File, Line: r.Line, Value: v}
	}
	return d.IntPart(), nil
}

// OptionalInt parses the cell as an integer, returning nil for an empty cell.
func (r Row) OptionalInt(col string) (*int64, error) {
	v, err := r.Value(col)
	if err != nil {
		return nil, err
	}

	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(v)
	if err != nil || !d.IsInteger() {
		return nil, &RowError{Kind: RowErrInvalidNumber, File: r.File, Line: r.Line, Value: v}
	}
	n := d.IntPart()
	return &n, nil
}

// Date parses the cell against the fixed DD/MM/YYYY format.
func (r Row) Date(col string) (time.Time, error) {
	v, err := r.Value(col)
	if err != nil {
		return time.Time{}, err
	}

	v = strings.TrimSpace(v)
	if !datePattern.MatchString(v) {
		return time.Time{}, &RowError{Kind: RowErrInvalidDate, File: r.File, Line: r.Line, Value: v}
	}

	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, &RowError{Kind: RowErrInvalidDate, File: r.File, Line: r.Line, Value: v}
	}
	return t, nil
}

// csvFile iterates the data rows of one header-keyed CSV file.
type csvFile struct {
	path   string
	header []string
	reader *csv.Reader
	closer io.Closer
	line   int
}

func openCSVFile(path string) (*csvFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		f.Close()
		if errors.Is(err, io.EOF) {
			// A file with no header has no rows either.
			return &csvFile{path: path, reader: nil, closer: nil}, nil
		}
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	return &csvFile{path: path, header: header, reader: r, closer: f, line: 1}, nil
}

// requireColumns checks the file header carries every required column.
// A miss is fatal for the file and surfaces as a ColumnValidationError.
func (f *csvFile) requireColumns(columns []string) error {
	present := make(map[string]struct{}, len(f.header))
	for _, h := range f.header {
		present[h] = struct{}{}
	}

	for _, col := range columns {
		if _, ok := present[col]; !ok {
			return &ColumnValidationError{File: f.path, Column: col}
		}
	}
	return nil
}

// Next returns the next data row, io.EOF at end of file, or a RowError
// for a row whose field count does not match the header.
func (f *csvFile) Next() (Row, error) {
	if f.reader == nil {
		return Row{}, io.EOF
	}

	record, err := f.reader.Read()
	f.line++
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}
		if errors.Is(err, csv.ErrFieldCount) {
			return Row{}, &RowError{Kind: RowErrMalformedRow, File: f.path, Line: f.line}
		}
		return Row{}, fmt.Errorf("read %s: %w", f.path, err)
	}

	values := make(map[string]string, len(f.header))
	for i, h := range f.header {
		if i < len(record) {
			values[h] = record[i]
		}
	}
	return Row{File: f.path, Line: f.line, values: values}, nil
}

func (f *csvFile) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer.Close()
}
