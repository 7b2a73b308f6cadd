package network

import (
	"errors"
	"fmt"
)

// ErrInput is returned when network data is missing or malformed, or when
// two networks that must share a frequency grid and reference impedance do
// not.
var ErrInput = errors.New("network: invalid input")

// ErrSingularMatrix is returned when a scattering/impedance conversion,
// matrix inversion, or cascading step has no solution at some frequency.
var ErrSingularMatrix = errors.New("network: singular matrix")

func singularErr(op string, index int, freq float64) error {
	return fmt.Errorf("%w: %s has no solution at frequency index %d (%g Hz)",
		ErrSingularMatrix, op, index, freq)
}

func inputErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInput, fmt.Sprintf(format, args...))
}
