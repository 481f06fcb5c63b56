package hw01

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of all errors caused by malformed input data.
//
// A missing value is never an error: it is carried as NaN.
var ErrValidation = errors.New("validation error")

// ErrMissingColumn is returned when a required column is absent from a table.
var ErrMissingColumn = fmt.Errorf("%w: missing column", ErrValidation)

// missingColumn returns an ErrMissingColumn naming the column.
func missingColumn(name string) error {
	return fmt.Errorf("%w %q", ErrMissingColumn, name)
}
