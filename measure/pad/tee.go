package pad

import (
	"fmt"

	"github.com/cwbudde/algo-rf/rf/network"
)

// Tee synthesizes the two-port network of a T-topology circuit with series
// impedance z1 at port 1, shunt impedance z2, and series impedance z3 at
// port 2, referenced to the scalar impedance z0 on both ports. Per frequency
// the impedance matrix is
//
//	| z1+z2   z2  |
//	|  z2   z2+z3 |
//
// converted to scattering parameters. Tee(f, z3, z2, z1, z0) is the mirror
// image of Tee(f, z1, z2, z3, z0): the same network seen from the other end,
// with ports 1 and 2 exchanged.
func Tee(freqs []float64, z1, z2, z3 []complex128, z0 float64) (*network.Network, error) {
	if len(z1) != len(freqs) || len(z2) != len(freqs) || len(z3) != len(freqs) {
		return nil, fmt.Errorf("%w: %d frequency points but %d/%d/%d impedance values",
			network.ErrInput, len(freqs), len(z1), len(z2), len(z3))
	}

	z := make([]network.Matrix, len(freqs))
	for i := range freqs {
		z[i] = network.Matrix{
			{z1[i] + z2[i], z2[i]},
			{z2[i], z2[i] + z3[i]},
		}
	}

	return network.FromImpedance(freqs, z, z0)
}

// Tee synthesizes the model's left-side tee network at reference impedance
// z0. See the package-level Tee for the topology.
func (m *Model) Tee(z0 float64) (*network.Network, error) {
	return Tee(m.freqs, m.z1, m.z2, m.z3, z0)
}

// MirrorTee synthesizes the model's right-side tee network, the mirror image
// sharing the shunt element with the series impedances exchanged.
func (m *Model) MirrorTee(z0 float64) (*network.Network, error) {
	return Tee(m.freqs, m.z3, m.z2, m.z1, z0)
}
