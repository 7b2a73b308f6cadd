// Package network provides two-port scattering-parameter networks and the
// per-frequency matrix algebra used to de-embed fixtures from measured data.
//
// A [Network] pairs an ordered frequency grid with one 2x2 complex scattering
// matrix per point and a scalar real reference impedance. Networks are value
// containers: constructors copy their inputs and every transform (impedance
// conversion, inversion, cascading, symmetry enforcement) returns a new
// Network, leaving its receiver untouched.
//
// All per-frequency operations are independent across the grid. Failures
// identify the offending frequency index and value and wrap one of the
// package sentinels, [ErrInput] or [ErrSingularMatrix], so callers can
// classify them with errors.Is.
package network
