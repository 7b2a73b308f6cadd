// Package pad extracts a symmetric T-shaped equivalent circuit of a
// connector/fixture launch from two measured two-port networks of different
// physical lengths.
//
// The measurement pair embeds the same pad at each end of a nominal-length
// and a double-length transmission line. Cascading the short measurement
// with the matrix inversion of the long one and the short one again cancels
// the shared line contribution and isolates the back-to-back pad response:
//
//	composite = short ∘ invert(long) ∘ short
//
// The composite is forced reciprocal and symmetric, a closed-form quadratic
// yields the per-frequency series impedance Z1 with shunt Z2 and second
// series element Z3 = k·Z1, and two tee networks are synthesized from the
// triple: the left pad as extracted and the right pad with the series
// elements mirrored.
//
// Every frequency point is solved independently; no smoothing or branch
// continuity across the grid is applied. The quadratic root with
// non-negative imaginary part is chosen (a physically inductive series
// element), preferring the "+" branch of the principal square root when both
// roots qualify.
package pad
