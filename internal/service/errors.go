package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAlreadySubscribed is returned when the normalized email already
	// has a subscriber record. No side effects occur.
	ErrAlreadySubscribed = errors.New("email already subscribed")

	// ErrInvalidEmail is returned when the email fails syntactic validation.
	ErrInvalidEmail = errors.New("invalid email")
)

// ValidationError reports which required fields were missing or empty
// after trimming. Detected before any side effect.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}
