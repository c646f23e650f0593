package ingest

import "fmt"

// ColumnValidationError reports a required header missing from a CSV file.
// Unlike row-level failures it is fatal: the run for that activity kind
// aborts and the error is surfaced to the caller.
type ColumnValidationError struct {
	File   string
	Column string
}

func (e *ColumnValidationError) Error() string {
	return fmt.Sprintf("file %s: missing required column %q", e.File, e.Column)
}

// RowErrorKind classifies the row-skippable failures.
type RowErrorKind string

const (
	RowErrMissingColumn    RowErrorKind = "missing_column"
	RowErrInvalidDate      RowErrorKind = "invalid_date"
	RowErrInvalidNumber    RowErrorKind = "invalid_number"
	RowErrUnrecognizedUnit RowErrorKind = "unrecognized_unit"
	RowErrFactorNotFound   RowErrorKind = "factor_not_found"
	RowErrDuplicateFactor  RowErrorKind = "duplicate_factor"
	RowErrMalformedRow     RowErrorKind = "malformed_row"
)

// RowError marks a single row as invalid. Rows failing this way are
// skipped and counted; ingestion of the remaining rows continues.
type RowError struct {
	Kind  RowErrorKind
	File  string
	Line  int
	Value string
}

func (e *RowError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("file %s line %d: %s (%s)", e.File, e.Line, e.Kind, e.Value)
	}
	return fmt.Sprintf("file %s line %d: %s", e.File, e.Line, e.Kind)
}

// UnrecognizedUnitError reports a unit string the normalizer does not know.
type UnrecognizedUnitError struct {
	Unit string
}

func (e *UnrecognizedUnitError) Error() string {
	return fmt.Sprintf("unrecognized unit %q", e.Unit)
}
