package form

import (
	"errors"

	"github.com/goliatone/go-feconfig/pkg/chip"
)

var (
	// ErrUnknownField is returned when a label is not part of the form.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrInvalidOption is returned when a selector is set to a value outside
	// its options.
	ErrInvalidOption = errors.New("form: invalid option")
	// ErrNilContext is returned by Submit when called with a nil context.
	ErrNilContext = errors.New("form: context is required")
)

// Notification titles.
const (
	TitleSuccess = "Success"
	TitleError   = "Error"
)

// SuccessMessage is the notification text for a document written to path.
func SuccessMessage(path string) string {
	return "FE configuration saved to " + path
}

// FailureMessage is the notification text for a failed submission. Field
// conversion failures read "Invalid input: …"; anything else reads
// "An error occurred: …".
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	var convErr *chip.ConversionError
	if errors.As(err, &convErr) {
		return "Invalid input: " + convErr.Error()
	}
	return "An error occurred: " + err.Error()
}
