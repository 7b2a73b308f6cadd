package network

// Symmetrized returns a reciprocal and symmetric copy of the network.
//
// For every frequency point independently, the scattering matrix S is first
// replaced by (S + Sᵀ)/2, enforcing reciprocity, and then every diagonal
// entry is overwritten with the mean of the diagonal, enforcing symmetry.
// The result shares the frequency grid and reference impedance of the input.
//
// The operation is idempotent, and a network that is already reciprocal and
// symmetric comes back with float-identical scattering data. Averaging all
// diagonal entries into one shared value assumes the measured structure is
// physically the same at every port; that assumption is documented, not
// validated.
func (n *Network) Symmetrized() *Network {
	s := make([]Matrix, len(n.s))
	for i, m := range n.s {
		r := m.add(m.Transposed()).scale(0.5)

		mean := (r[0][0] + r[1][1]) / 2
		r[0][0] = mean
		r[1][1] = mean

		s[i] = r
	}

	return &Network{freqs: n.Freqs(), s: s, z0: n.z0}
}
