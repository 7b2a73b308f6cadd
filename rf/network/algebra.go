package network

// identity is the 2x2 identity matrix.
var identity = Matrix{{1, 0}, {0, 1}}

func (m Matrix) add(o Matrix) Matrix {
	return Matrix{
		{m[0][0] + o[0][0], m[0][1] + o[0][1]},
		{m[1][0] + o[1][0], m[1][1] + o[1][1]},
	}
}

func (m Matrix) sub(o Matrix) Matrix {
	return Matrix{
		{m[0][0] - o[0][0], m[0][1] - o[0][1]},
		{m[1][0] - o[1][0], m[1][1] - o[1][1]},
	}
}

func (m Matrix) mul(o Matrix) Matrix {
	return Matrix{
		{m[0][0]*o[0][0] + m[0][1]*o[1][0], m[0][0]*o[0][1] + m[0][1]*o[1][1]},
		{m[1][0]*o[0][0] + m[1][1]*o[1][0], m[1][0]*o[0][1] + m[1][1]*o[1][1]},
	}
}

func (m Matrix) scale(k complex128) Matrix {
	return Matrix{
		{k * m[0][0], k * m[0][1]},
		{k * m[1][0], k * m[1][1]},
	}
}

// inverse returns the matrix inverse of m. ok is false when the determinant
// is exactly zero.
func (m Matrix) inverse() (inv Matrix, ok bool) {
	det := m[0][0]*m[1][1] - m[0][1]*m[1][0]
	if det == 0 {
		return Matrix{}, false
	}

	return Matrix{
		{m[1][1] / det, -m[0][1] / det},
		{-m[1][0] / det, m[0][0] / det},
	}, true
}

// Z converts the scattering representation to impedance parameters using the
// bilinear transform Z = z0*(I+S)*(I-S)^-1 with the network's scalar
// reference impedance. It fails with ErrSingularMatrix when (I-S) has no
// inverse at some frequency.
func (n *Network) Z() ([]Matrix, error) {
	z0 := complex(n.z0, 0)

	out := make([]Matrix, len(n.s))
	for i, s := range n.s {
		inv, ok := identity.sub(s).inverse()
		if !ok {
			return nil, singularErr("scattering to impedance conversion", i, n.freqs[i])
		}

		out[i] = identity.add(s).mul(inv).scale(z0)
	}

	return out, nil
}

// FromImpedance builds a Network from per-frequency impedance matrices using
// the bilinear transform S = (Z-z0*I)*(Z+z0*I)^-1 at the scalar reference
// impedance z0. It fails with ErrSingularMatrix when (Z+z0*I) has no inverse
// at some frequency.
func FromImpedance(freqs []float64, z []Matrix, z0 float64) (*Network, error) {
	if len(z) != len(freqs) {
		return nil, inputErr("%d frequency points but %d impedance matrices", len(freqs), len(z))
	}

	ref := identity.scale(complex(z0, 0))

	s := make([]Matrix, len(z))
	for i, zm := range z {
		inv, ok := zm.add(ref).inverse()
		if !ok {
			f := 0.0
			if i < len(freqs) {
				f = freqs[i]
			}

			return nil, singularErr("impedance to scattering conversion", i, f)
		}

		s[i] = zm.sub(ref).mul(inv)
	}

	return New(freqs, s, z0)
}

// Invert returns the per-frequency matrix inverse of the scattering data.
// This is an algebraic de-embedding tool, not the physical reciprocal
// network; for reciprocal symmetric networks the two coincide. It fails with
// ErrSingularMatrix when the scattering matrix has zero determinant at some
// frequency.
func (n *Network) Invert() (*Network, error) {
	s := make([]Matrix, len(n.s))
	for i := range n.s {
		inv, ok := n.s[i].inverse()
		if !ok {
			return nil, singularErr("scattering matrix inversion", i, n.freqs[i])
		}

		s[i] = inv
	}

	return &Network{freqs: n.Freqs(), s: s, z0: n.z0}, nil
}

// Cascade connects port 2 of a to port 1 of b using the two-port scattering
// cascading formula, which accounts for the multiple reflections between the
// two networks. Both networks must share the frequency grid and reference
// impedance (ErrInput otherwise); the connection is unsolvable when
// 1 - a22*b11 vanishes (ErrSingularMatrix).
func Cascade(a, b *Network) (*Network, error) {
	if !SameGrid(a, b) {
		return nil, inputErr("cascade requires identical frequency grids (%d and %d points)",
			a.Points(), b.Points())
	}

	if a.z0 != b.z0 {
		return nil, inputErr("cascade requires matching reference impedances (%g and %g ohm)", a.z0, b.z0)
	}

	s := make([]Matrix, len(a.s))
	for i := range a.s {
		sa, sb := a.s[i], b.s[i]

		d := 1 - sa[1][1]*sb[0][0]
		if d == 0 {
			return nil, singularErr("cascade", i, a.freqs[i])
		}

		s[i] = Matrix{
			{sa[0][0] + sa[0][1]*sa[1][0]*sb[0][0]/d, sa[0][1] * sb[0][1] / d},
			{sa[1][0] * sb[1][0] / d, sb[1][1] + sb[0][1]*sb[1][0]*sa[1][1]/d},
		}
	}

	return &Network{freqs: a.Freqs(), s: s, z0: a.z0}, nil
}
