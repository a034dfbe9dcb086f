package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrInvalidDueDate  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidCategory = errors.New("category contains invalid characters")
	ErrUnknownFilter   = errors.New("unknown filter")
	ErrUnknownStore    = errors.New("unknown store format")
	ErrUnknownDriver   = errors.New("unknown database driver")
	ErrConfigExists    = errors.New("config file already exists")
)

// DateFormatError reports a due date that is not a YYYY-MM-DD calendar date.
// It matches ErrInvalidDueDate with errors.Is.
type DateFormatError struct {
	Err   error  // Underlying parse error (nil when the pattern itself did not match)
	Input string // Offending input, trimmed
}

func (e *DateFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q: %v", ErrInvalidDueDate, e.Input, e.Err)
	}
	return fmt.Sprintf("%s: %q", ErrInvalidDueDate, e.Input)
}

// Is reports whether target is ErrInvalidDueDate.
func (e *DateFormatError) Is(target error) bool {
	return target == ErrInvalidDueDate
}

// Unwrap returns the underlying parse error.
func (e *DateFormatError) Unwrap() error {
	return e.Err
}
