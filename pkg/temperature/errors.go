package temperature

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two recoverable input failures.
var (
	ErrInvalidNumber    = errors.New("invalid temperature value")
	ErrUnrecognizedUnit = errors.New("unrecognized temperature unit")
)

var errNotFinite = errors.New("value is not a finite number")

// InvalidNumberError reports temperature input that is not a real number.
type InvalidNumberError struct {
	Input string
	Err   error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("%v %q: please enter a number", ErrInvalidNumber, e.Input)
}

// Unwrap returns the underlying parse error.
func (e *InvalidNumberError) Unwrap() error { return e.Err }

// Is matches ErrInvalidNumber.
func (e *InvalidNumberError) Is(target error) bool { return target == ErrInvalidNumber }

// UnrecognizedUnitError reports a unit label that matches no supported scale.
type UnrecognizedUnitError struct {
	Unit string
}

func (e *UnrecognizedUnitError) Error() string {
	return fmt.Sprintf("%v %q: use Celsius (C), Fahrenheit (F), or Kelvin (K)", ErrUnrecognizedUnit, e.Unit)
}

// Is matches ErrUnrecognizedUnit.
func (e *UnrecognizedUnitError) Is(target error) bool { return target == ErrUnrecognizedUnit }
