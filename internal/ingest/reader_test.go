package ingest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestListCSVFiles(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "a.csv", "Col\n")
	writeCSV(t, dir, "b.CSV", "Col\n")
	writeCSV(t, dir, "notes.txt", "ignored")

	files, err := listCSVFiles(dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestListCSVFilesMissingDir(t *testing.T) {
	files, err := listCSVFiles(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestRowTextLowerCases(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "a.csv", "Activity,Country\nAir Travel,United Kingdom\n")

	f, err := openCSVFile(path)
	require.NoError(t, err)
	defer f.Close()

	row, err := f.Next()
	require.NoError(t, err)

	got, err := row.Text("Activity")
	require.NoError(t, err)
	assert.Equal(t, "air travel", got)

	_, err = row.Value("Missing")
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, RowErrMissingColumn, rowErr.Kind)
}

func TestRowFloat(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "a.csv", "Spend,Empty,Bad\n123.45,,abc\n")

	f, err := openCSVFile(path)
	require.NoError(t, err)
	defer f.Close()

	row, err := f.Next()
	require.NoError(t, err)

	got, err := row.Float("Spend")
	require.NoError(t, err)
	assert.Equal(t, 123.45, got)

	// Empty numeric fields default to zero rather than failing.
	got, err = row.Float("Empty")
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = row.Float("Bad")
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, RowErrInvalidNumber, rowErr.Kind)
}

func TestRowInt(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "a.csv", "Scope,Empty,Fractional,Bad\n3,,1.5,abc\n")

	f, err := openCSVFile(path)
	require.NoError(t, err)
	defer f.Close()

	row, err := f.Next()
	require.NoError(t, err)

	got, err := row.Int("Scope")
	require.NoError(t, err)
	assert.EqualValues(t, 3, got)

	got, err = row.Int("Empty")
	require.NoError(t, err)
	assert.Zero(t, got)

	// A fractional value is invalid, not truncated.
	_, err = row.Int("Fractional")
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, RowErrInvalidNumber, rowErr.Kind)

	_, err = row.Int("Bad")
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, RowErrInvalidNumber, rowErr.Kind)
}

func TestRowDateStrictFormat(t *testing.T) {
	dir := t.TempDir()

	valid := []string{"06/02/2023", "29/02/2024", "31/12/1999"}
	for _, v := range valid {
		path := writeCSV(t, dir, "v.csv", "Date\n"+v+"\n")
		f, err := openCSVFile(path)
		require.NoError(t, err)
		row, err := f.Next()
		require.NoError(t, err)
		got, err := row.Date("Date")
		require.NoError(t, err, v)
		assert.False(t, got.IsZero())
		f.Close()
	}

	invalid := []string{"2024-01-01", "01-01-2024", "01/01/24", "1/1/2024", "32/01/2024", "01/13/2024"}
	for _, v := range invalid {
		path := writeCSV(t, dir, "i.csv", "Date\n"+v+"\n")
		f, err := openCSVFile(path)
		require.NoError(t, err)
		row, err := f.Next()
		require.NoError(t, err)
		_, err = row.Date("Date")
		var rowErr *RowError
		require.ErrorAs(t, err, &rowErr, v)
		assert.Equal(t, RowErrInvalidDate, rowErr.Kind, v)
		f.Close()
	}

	// Sanity check the layout itself.
	parsed, err := time.Parse(dateLayout, "06/02/2023")
	require.NoError(t, err)
	assert.Equal(t, 2023, parsed.Year())
	assert.Equal(t, time.February, parsed.Month())
	assert.Equal(t, 6, parsed.Day())
}

func TestRequireColumns(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "a.csv", "Activity,Unit\nx,y\n")

	f, err := openCSVFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.requireColumns([]string{"Activity", "Unit"}))

	err = f.requireColumns([]string{"Activity", "Lookup identifiers"})
	var colErr *ColumnValidationError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, "Lookup identifiers", colErr.Column)
	assert.Equal(t, path, colErr.File)
}
