// Package touchstone reads and writes two-port Touchstone (.s2p) network
// files, version 1.
//
// The reader accepts any of the Hz/kHz/MHz/GHz frequency units, the RI, MA
// and DB value formats, and S or Z parameter data (Z values are normalized
// by the reference impedance, as the format prescribes, and are converted to
// scattering parameters on load). Data rows may wrap across lines. Noise
// parameter sections are not supported.
//
// The writer always emits real/imaginary scattering data on a Hz grid.
package touchstone

import (
	"errors"
	"fmt"
)

// ErrParse is returned for malformed touchstone input.
var ErrParse = errors.New("touchstone: parse error")

func parseErr(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrParse, line, fmt.Sprintf(format, args...))
}

type options struct {
	unitScale float64
	param     string
	format    string
	z0        float64
}

func defaultOptions() options {
	// Touchstone v1 defaults: "# GHZ S MA R 50".
	return options{unitScale: 1e9, param: "S", format: "MA", z0: 50}
}
