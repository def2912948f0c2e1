package dispatch

import (
	"fmt"
	"strings"
)

// ValidationError reports a single bad request field, either a missing
// required field or a value outside its allowed set.
type ValidationError struct {
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("validation error for field '%s' (value: %s): %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in a request so the caller
// can report all of them in one pass.
type ValidationErrors []ValidationError

// Error implements the error interface
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed with %d errors: %s", len(e), strings.Join(messages, "; "))
}

// AddMissing records a required field that was not provided.
func (e *ValidationErrors) AddMissing(field string) {
	*e = append(*e, ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
	})
}

// AddInvalidEnum records a field whose value is outside its allowed set.
func (e *ValidationErrors) AddInvalidEnum(field, value string, allowed []string) {
	*e = append(*e, ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")),
	})
}

// HasErrors returns true if there are validation errors
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// ExitError reports that the external script ran and exited non-zero. The
// dispatcher propagates Code as its own exit status.
type ExitError struct {
	Path string
	Code int
	Err  error
}

// Error implements the error interface
func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Path, e.Code)
}

// Unwrap returns the underlying process error
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code of the failed script.
func (e *ExitError) ExitCode() int {
	return e.Code
}
