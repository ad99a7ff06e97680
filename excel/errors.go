package excel

import (
	"errors"
	"fmt"
)

// ErrInvalidAddress is matched by every *InvalidAddressError via errors.Is.
var ErrInvalidAddress = errors.New("invalid cell address")

// InvalidAddressError reports a string that is not "letters followed by digits".
type InvalidAddressError struct {
	Input  string
	Reason string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid cell address %q: %s", e.Input, e.Reason)
}

func (e *InvalidAddressError) Unwrap() error {
	return ErrInvalidAddress
}

func invalidAddress(input, reason string) *InvalidAddressError {
	return &InvalidAddressError{Input: input, Reason: reason}
}
