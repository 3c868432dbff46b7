package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors
var (
	ErrInvalidObligationName = errors.New("invalid obligation name")
	ErrZeroAmount            = errors.New("amount must not be zero")
)

// Validation constants
const (
	MaxObligationNameLength = 255
	MinObligationNameLength = 1
)

// ValidateRange rejects inverted query ranges before any generator runs.
func ValidateRange(start, end time.Time) error {
	if DateOf(start).After(DateOf(end)) {
		return fmt.Errorf("%w: start=%s end=%s",
			ErrInvalidRange,
			DateOf(start).Format("2006-01-02"),
			DateOf(end).Format("2006-01-02"),
		)
	}

	return nil
}

// ValidateObligationName validates a one-off or recurring obligation name.
func ValidateObligationName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinObligationNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidObligationName)
	}

	if len(name) > MaxObligationNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidObligationName, MaxObligationNameLength)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int, error) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}
