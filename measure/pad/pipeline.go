package pad

import (
	"fmt"

	"github.com/cwbudde/algo-rf/rf/network"
)

// DefaultZ0 is the reference impedance, in ohms, at which the synthesized
// pads are written unless configured otherwise.
const DefaultZ0 = 50.0

// Config holds pipeline parameters.
type Config struct {
	// Z0 is the reference impedance of the synthesized tee networks. Zero
	// selects DefaultZ0.
	Z0 float64
}

// TeePair is the result of one pipeline run: the extracted model and the two
// tee networks built from it, Left from (Z1, Z2, Z3) and Right from the
// mirrored (Z3, Z2, Z1). Both derive from the same Model and are immutable.
type TeePair struct {
	Model *Model
	Left  *network.Network
	Right *network.Network
}

// Pipeline de-embeds the pad response from a short/long measurement pair and
// synthesizes both fixture pads.
type Pipeline struct {
	cfg Config
}

// NewPipeline creates a pipeline with the given configuration.
func NewPipeline(cfg Config) *Pipeline {
	if cfg.Z0 <= 0 {
		cfg.Z0 = DefaultZ0
	}

	return &Pipeline{cfg: cfg}
}

// Run extracts the fixture pads from a measurement of the nominal-length
// line and a measurement of the double-length line.
//
// The algebraic de-embedding step
//
//	composite = cascade(cascade(short, invert(long)), short)
//
// cancels the transmission-line contribution common to the two measurements
// and isolates the back-to-back pad response. The composite is symmetrized,
// the T-pad model extracted, and both tee networks synthesized at the
// configured reference impedance.
//
// Both inputs must share their frequency grid and reference impedance
// (network.ErrInput otherwise). Errors from any stage abort the run and
// identify the failing frequency; Run never substitutes sentinel values.
func (p *Pipeline) Run(short, long *network.Network) (*TeePair, error) {
	if short == nil || long == nil {
		return nil, fmt.Errorf("%w: both measurements are required", network.ErrInput)
	}

	if !network.SameGrid(short, long) {
		return nil, fmt.Errorf("%w: measurements use different frequency grids (%d and %d points)",
			network.ErrInput, short.Points(), long.Points())
	}

	inverted, err := long.Invert()
	if err != nil {
		return nil, err
	}

	half, err := network.Cascade(short, inverted)
	if err != nil {
		return nil, err
	}

	composite, err := network.Cascade(half, short)
	if err != nil {
		return nil, err
	}

	model, err := ExtractNetwork(composite.Symmetrized())
	if err != nil {
		return nil, err
	}

	left, err := model.Tee(p.cfg.Z0)
	if err != nil {
		return nil, err
	}

	right, err := model.MirrorTee(p.cfg.Z0)
	if err != nil {
		return nil, err
	}

	return &TeePair{Model: model, Left: left, Right: right}, nil
}

// Run is a convenience wrapper around NewPipeline(Config{}).Run.
func Run(short, long *network.Network) (*TeePair, error) {
	return NewPipeline(Config{}).Run(short, long)
}

// OutputNames returns the artifact names for the two pads of a run. The year
// and length parameters only label the outputs; they carry no numeric
// meaning inside the extraction.
func OutputNames(year, length int) (left, right string) {
	return fmt.Sprintf("left_pad_%d_%d.s2p", year, length),
		fmt.Sprintf("right_pad_%d_%d.s2p", year, length)
}
