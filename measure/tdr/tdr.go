package tdr

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rf/rf/network"
)

// ErrNonuniformGrid is returned when the network's frequency grid is not
// uniformly spaced on integer multiples of its spacing.
var ErrNonuniformGrid = errors.New("tdr: nonuniform frequency grid")

// gridTol is the relative tolerance for grid uniformity checks.
const gridTol = 1e-6

// Config holds transform parameters.
type Config struct {
	// Window tapers the one-sided spectrum before the inverse transform.
	// The zero value selects a Hann taper.
	Window window.Type

	// Points is a lower bound on the transform length, rounded up to the
	// next power of two. Larger transforms zero-pad the spectrum for a
	// finer time axis. Zero derives the length from the frequency grid.
	Points int
}

// Response is a band-limited time-domain response on a uniform time axis.
type Response struct {
	// Time holds the time axis in seconds.
	Time []float64
	// Impulse holds the impulse response, normalized to unit peak for an
	// ideal unit-transmission network.
	Impulse []float64
}

// Step returns the running sum of the impulse response, an approximation of
// the step response.
func (r *Response) Step() []float64 {
	out := make([]float64, len(r.Impulse))

	sum := 0.0
	for i, v := range r.Impulse {
		sum += v
		out[i] = sum
	}

	return out
}

// ImpulseResponse transforms S(row,col) of n into the time domain.
func ImpulseResponse(n *network.Network, row, col int, cfg Config) (*Response, error) {
	s, err := n.Param(row, col)
	if err != nil {
		return nil, err
	}

	freqs := n.Freqs()
	if len(freqs) < 2 {
		return nil, fmt.Errorf("%w: at least 2 frequency points required, got %d",
			network.ErrInput, len(freqs))
	}

	df := freqs[1] - freqs[0]

	for i := 1; i < len(freqs); i++ {
		if math.Abs(freqs[i]-freqs[i-1]-df) > gridTol*df {
			return nil, fmt.Errorf("%w: spacing changes at index %d (%g Hz)", ErrNonuniformGrid, i, freqs[i])
		}
	}

	k0 := int(math.Round(freqs[0] / df))
	if math.Abs(freqs[0]-float64(k0)*df) > gridTol*df {
		return nil, fmt.Errorf("%w: grid does not start on a multiple of its %g Hz spacing",
			ErrNonuniformGrid, df)
	}

	winType := cfg.Window
	if winType == 0 {
		winType = window.TypeHann
	}

	// The upper half of a symmetric window tapers the one-sided spectrum
	// from full weight at the lowest bin to zero at the band edge.
	taper := window.Generate(winType, 2*len(s))[len(s):]

	kMax := k0 + len(s) - 1

	size := 2 * (kMax + 1)
	if cfg.Points > size {
		size = cfg.Points
	}

	fftSize := nextPowerOf2(size)
	half := fftSize / 2

	spec := make([]complex128, fftSize)

	sumW := 0.0
	for i, v := range s {
		k := k0 + i
		tapered := v * complex(taper[i], 0)
		spec[k] = tapered

		if k > 0 && k < half {
			spec[fftSize-k] = cmplx.Conj(tapered)
		}

		sumW += taper[i]
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("tdr: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Inverse(out, spec); err != nil {
		return nil, fmt.Errorf("tdr: inverse FFT failed: %w", err)
	}

	raw := make([]float64, half)
	for i := range raw {
		raw[i] = real(out[i])
	}

	// Unit-peak normalization: an all-ones spectrum sums to 2*sumW/fftSize
	// at its alignment point.
	impulse := make([]float64, half)
	vecmath.ScaleBlock(impulse, raw, float64(fftSize)/(2*sumW))

	times := make([]float64, half)
	for i := range times {
		times[i] = float64(i) / (float64(fftSize) * df)
	}

	return &Response{Time: times, Impulse: impulse}, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
