package pad

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-rf/rf/network"
)

// ErrDegenerateModel is returned when the pad extraction closure constant is
// undefined at some frequency, typically because Z21 vanishes there.
var ErrDegenerateModel = errors.New("pad: degenerate model")

func degenerateErr(reason string, index int, freq float64) error {
	return fmt.Errorf("%w: %s at frequency index %d (%g Hz)", ErrDegenerateModel, reason, index, freq)
}

// Model holds the extracted per-frequency T-pad impedances. Z1 is the series
// element at port 1, Z2 the shunt element, Z3 the series element at port 2.
// A Model is immutable once produced; the accessors return copies.
type Model struct {
	freqs      []float64
	z1, z2, z3 []complex128
}

// Points returns the number of frequency points.
func (m *Model) Points() int { return len(m.freqs) }

// Freqs returns a copy of the frequency grid in Hz.
func (m *Model) Freqs() []float64 { return append([]float64(nil), m.freqs...) }

// Z1 returns a copy of the port-1 series impedance per frequency.
func (m *Model) Z1() []complex128 { return append([]complex128(nil), m.z1...) }

// Z2 returns a copy of the shunt impedance per frequency.
func (m *Model) Z2() []complex128 { return append([]complex128(nil), m.z2...) }

// Z3 returns a copy of the port-2 series impedance per frequency.
func (m *Model) Z3() []complex128 { return append([]complex128(nil), m.z3...) }

// Extract solves the T-pad impedances from the Z11 and Z21 impedance
// parameters of a symmetrized two-port network, one frequency point at a
// time.
//
// The closure assumption Z3 = k·Z1 uses, per frequency,
//
//	k = -Z21² / ( -(2·Z21·Z11 + Z21²) )
//
// and Z1 is the root of Z² - 2(Z11 + Z21·k)·Z + (Z11² - Z21²) with
// non-negative imaginary part, taking the principal branch of the complex
// square root of the discriminant. When both roots share the sign of their
// imaginary part the "+" branch is chosen, so repeated calls are
// deterministic; across adjacent frequencies this per-point rule can still
// switch branches. Z2 = Z11 + Z21 - Z1 and Z3 = k·Z1 complete the triple.
//
// Extraction fails with ErrDegenerateModel when the denominator of k is zero
// or a result is not finite, naming the offending frequency. No sentinel
// values are substituted.
func Extract(freqs []float64, z11, z21 []complex128) (*Model, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("%w: empty frequency grid", network.ErrInput)
	}

	if len(z11) != len(freqs) || len(z21) != len(freqs) {
		return nil, fmt.Errorf("%w: %d frequency points but %d Z11 and %d Z21 values",
			network.ErrInput, len(freqs), len(z11), len(z21))
	}

	m := &Model{
		freqs: append([]float64(nil), freqs...),
		z1:    make([]complex128, len(freqs)),
		z2:    make([]complex128, len(freqs)),
		z3:    make([]complex128, len(freqs)),
	}

	for i := range freqs {
		den := -(2*z21[i]*z11[i] + z21[i]*z21[i])
		if den == 0 {
			return nil, degenerateErr("closure constant k is undefined", i, freqs[i])
		}

		k := -(z21[i] * z21[i]) / den

		b := -2 * (z11[i] + z21[i]*k)
		c := z11[i]*z11[i] - z21[i]*z21[i]
		disc := b*b - 4*c
		root := cmplx.Sqrt(disc)

		// Inductive series element: keep the root with Im >= 0, preferring
		// the "+" branch.
		z1 := (-b + root) / 2
		if imag(z1) < 0 {
			z1 = (-b - root) / 2
		}

		z2 := z11[i] + z21[i] - z1
		z3 := k * z1

		if !isFinite(z1) || !isFinite(z2) || !isFinite(z3) {
			return nil, degenerateErr("extracted impedance is not finite", i, freqs[i])
		}

		m.z1[i] = z1
		m.z2[i] = z2
		m.z3[i] = z3
	}

	return m, nil
}

// ExtractNetwork reads Z11 and Z21 off the impedance representation of n and
// extracts the T-pad model. The network is expected to already be reciprocal
// and symmetric; see (*network.Network).Symmetrized.
func ExtractNetwork(n *network.Network) (*Model, error) {
	z, err := n.Z()
	if err != nil {
		return nil, err
	}

	z11 := make([]complex128, len(z))
	z21 := make([]complex128, len(z))

	for i := range z {
		z11[i] = z[i][0][0]
		z21[i] = z[i][1][0]
	}

	return Extract(n.Freqs(), z11, z21)
}

func isFinite(c complex128) bool {
	return !math.IsNaN(real(c)) && !math.IsNaN(imag(c)) &&
		!math.IsInf(real(c), 0) && !math.IsInf(imag(c), 0)
}
