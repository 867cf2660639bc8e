package chip

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumber signals field text that is not an integer in the
	// field's base.
	ErrInvalidNumber = errors.New("chip: invalid integer")
	// ErrInvalidOption signals a selector value outside its options.
	ErrInvalidOption = errors.New("chip: invalid option")
	// ErrDuplicateField signals several keys naming the same field.
	ErrDuplicateField = errors.New("chip: field set more than once")
)

// ConversionError names the field and raw value that failed conversion. Base
// is 10 or 16 for integer fields and 0 for selector fields.
type ConversionError struct {
	Field string
	Value string
	Base  int
	Err   error
}

func (e *ConversionError) Error() string {
	if e.Base > 0 {
		return fmt.Sprintf("%s: invalid literal for base %d: %q", e.Field, e.Base, e.Value)
	}
	return fmt.Sprintf("%s: %q is not a valid option", e.Field, e.Value)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
