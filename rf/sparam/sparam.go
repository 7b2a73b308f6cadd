// Package sparam provides per-frequency scalar views of scattering
// parameters: magnitude (linear and dB) and phase. These are the data series
// behind the usual |S11|/|S21| plots of a measured or synthesized network.
package sparam

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/dsp/spectrum"

	"github.com/cwbudde/algo-rf/rf/network"
)

// Magnitude returns |S(row,col)| across the frequency grid.
func Magnitude(n *network.Network, row, col int) ([]float64, error) {
	s, err := n.Param(row, col)
	if err != nil {
		return nil, err
	}

	return spectrum.Magnitude(s), nil
}

// MagnitudeDB returns 20*log10|S(row,col)| across the frequency grid.
// Exact zeros map to -Inf.
func MagnitudeDB(n *network.Network, row, col int) ([]float64, error) {
	mag, err := Magnitude(n, row, col)
	if err != nil {
		return nil, err
	}

	for i, v := range mag {
		mag[i] = core.LinearToDB(v)
	}

	return mag, nil
}

// PhaseDeg returns the phase of S(row,col) in degrees, wrapped to
// (-180, 180].
func PhaseDeg(n *network.Network, row, col int) ([]float64, error) {
	s, err := n.Param(row, col)
	if err != nil {
		return nil, err
	}

	phase := spectrum.Phase(s)
	for i := range phase {
		phase[i] *= 180 / math.Pi
	}

	return phase, nil
}

// UnwrappedPhaseDeg returns the phase of S(row,col) in degrees with the
// +/-360 degree wrap discontinuities removed across the grid.
func UnwrappedPhaseDeg(n *network.Network, row, col int) ([]float64, error) {
	s, err := n.Param(row, col)
	if err != nil {
		return nil, err
	}

	phase := spectrum.UnwrapPhase(spectrum.Phase(s))
	for i := range phase {
		phase[i] *= 180 / math.Pi
	}

	return phase, nil
}
