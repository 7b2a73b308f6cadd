package network

import "math"

// Matrix is a 2x2 complex parameter matrix, indexed [row][column].
type Matrix [2][2]complex128

// Transposed returns the transpose of m.
func (m Matrix) Transposed() Matrix {
	return Matrix{
		{m[0][0], m[1][0]},
		{m[0][1], m[1][1]},
	}
}

// PortSwapped returns m with ports 1 and 2 exchanged.
func (m Matrix) PortSwapped() Matrix {
	return Matrix{
		{m[1][1], m[1][0]},
		{m[0][1], m[0][0]},
	}
}

// Network is a two-port network sampled on an ordered frequency grid.
type Network struct {
	freqs []float64
	s     []Matrix
	z0    float64
}

// New builds a Network from a strictly increasing frequency grid in Hz, one
// scattering matrix per point, and a positive real reference impedance in
// ohms. The slices are copied; the caller keeps ownership of its arguments.
func New(freqs []float64, s []Matrix, z0 float64) (*Network, error) {
	if len(freqs) == 0 {
		return nil, inputErr("empty frequency grid")
	}

	if len(s) != len(freqs) {
		return nil, inputErr("%d frequency points but %d scattering matrices", len(freqs), len(s))
	}

	if z0 <= 0 || math.IsInf(z0, 0) || math.IsNaN(z0) {
		return nil, inputErr("reference impedance must be positive and finite, got %g", z0)
	}

	for i, f := range freqs {
		if math.IsInf(f, 0) || math.IsNaN(f) || f < 0 {
			return nil, inputErr("frequency at index %d is not a finite non-negative value: %g", i, f)
		}

		if i > 0 && f <= freqs[i-1] {
			return nil, inputErr("frequency grid is not strictly increasing at index %d (%g Hz after %g Hz)",
				i, f, freqs[i-1])
		}
	}

	n := &Network{
		freqs: make([]float64, len(freqs)),
		s:     make([]Matrix, len(s)),
		z0:    z0,
	}
	copy(n.freqs, freqs)
	copy(n.s, s)

	return n, nil
}

// Points returns the number of frequency points.
func (n *Network) Points() int { return len(n.freqs) }

// Z0 returns the reference impedance in ohms.
func (n *Network) Z0() float64 { return n.z0 }

// Freq returns the frequency in Hz at index i.
func (n *Network) Freq(i int) float64 { return n.freqs[i] }

// Freqs returns a copy of the frequency grid.
func (n *Network) Freqs() []float64 {
	out := make([]float64, len(n.freqs))
	copy(out, n.freqs)

	return out
}

// S returns the scattering matrix at frequency index i.
func (n *Network) S(i int) Matrix { return n.s[i] }

// Param returns the S(row,col) parameter (0-based ports) across the grid.
func (n *Network) Param(row, col int) ([]complex128, error) {
	if row < 0 || row > 1 || col < 0 || col > 1 {
		return nil, inputErr("port index out of range: S(%d,%d)", row+1, col+1)
	}

	out := make([]complex128, len(n.s))
	for i := range n.s {
		out[i] = n.s[i][row][col]
	}

	return out, nil
}

// SameGrid reports whether a and b share an identical frequency grid.
// Grids are compared for exact float64 equality; measurements taken on the
// same instrument sweep satisfy this without tolerance.
func SameGrid(a, b *Network) bool {
	if a.Points() != b.Points() {
		return false
	}

	for i := range a.freqs {
		if a.freqs[i] != b.freqs[i] {
			return false
		}
	}

	return true
}
