// Package tdr converts a frequency-domain scattering parameter into a
// band-limited time-domain response, the reflectometry-style view used to
// judge connector and launch quality.
//
// The one-sided measured spectrum is tapered with a window to suppress
// truncation ringing, extended to a hermitian spectrum, and transformed with
// an inverse FFT. The result is a real impulse response normalized so that
// an ideal unit-transmission network peaks at one; its running sum
// approximates the step response.
//
// The transform requires the frequency grid to be uniform with every point
// on an integer multiple of the spacing, as instrument sweeps are. No
// resampling is attempted; nonuniform grids are rejected.
package tdr
