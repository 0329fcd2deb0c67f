package reader

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema matches any *SchemaError.
	ErrSchema = errors.New("schema error")

	// ErrMalformedRow matches any *MalformedRowError.
	ErrMalformedRow = errors.New("malformed row")
)

// SchemaError is returned when a required column or field is missing from
// a source header.
type SchemaError struct {
	Source string
	Label  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: required field %q not found in header", e.Source, e.Label)
}

// Is reports whether target is ErrSchema.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// MalformedRowError is returned when a data row cannot be projected onto the
// resolved columns. Row is 1-based and counts data rows only.
type MalformedRowError struct {
	Source string
	Row    int
	Want   int
	Got    int
	Err    error
}

func (e *MalformedRowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: row %d: %v", e.Source, e.Row, e.Err)
	}
	return fmt.Sprintf("%s: row %d has %d values, need at least %d", e.Source, e.Row, e.Got, e.Want)
}

// Is reports whether target is ErrMalformedRow.
func (e *MalformedRowError) Is(target error) bool {
	return target == ErrMalformedRow
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}
