package tdr

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-rf/rf/network"
)

func delayLine(t *testing.T, points int, df, delay float64) *network.Network {
	t.Helper()

	freqs := make([]float64, points)
	s := make([]network.Matrix, points)

	for i := range freqs {
		freqs[i] = df * float64(i+1)
		tau := cmplx.Exp(complex(0, -2*math.Pi*freqs[i]*delay))
		s[i] = network.Matrix{{0, tau}, {tau, 0}}
	}

	n, err := network.New(freqs, s, 50)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	return n
}

func TestImpulseResponsePeakAtDelay(t *testing.T) {
	const (
		points = 128
		df     = 10e6
	)

	// 129 bins above DC double to 258; the transform runs at 512 points.
	// Put the delay exactly on time bin 64.
	const fftSize = 512

	delay := 64 / (fftSize * df)

	resp, err := ImpulseResponse(delayLine(t, points, df, delay), 1, 0, Config{})
	if err != nil {
		t.Fatalf("ImpulseResponse failed: %v", err)
	}

	if len(resp.Impulse) != fftSize/2 || len(resp.Time) != fftSize/2 {
		t.Fatalf("unexpected response length %d, want %d", len(resp.Impulse), fftSize/2)
	}

	peak := 0
	for i, v := range resp.Impulse {
		if math.Abs(v) > math.Abs(resp.Impulse[peak]) {
			peak = i
		}
	}

	if peak != 64 {
		t.Fatalf("impulse peaks at bin %d, want 64", peak)
	}

	if math.Abs(resp.Impulse[peak]-1) > 1e-9 {
		t.Fatalf("aligned peak = %g, want 1", resp.Impulse[peak])
	}

	if math.Abs(resp.Time[peak]-delay) > 1e-15 {
		t.Fatalf("peak time = %g, want %g", resp.Time[peak], delay)
	}
}

func TestImpulseResponseThruPeaksAtZero(t *testing.T) {
	resp, err := ImpulseResponse(delayLine(t, 64, 10e6, 0), 1, 0, Config{})
	if err != nil {
		t.Fatalf("ImpulseResponse failed: %v", err)
	}

	if math.Abs(resp.Impulse[0]-1) > 1e-9 {
		t.Fatalf("thru peak at t=0 is %g, want 1", resp.Impulse[0])
	}

	for i := 8; i < len(resp.Impulse); i++ {
		if math.Abs(resp.Impulse[i]) > 0.05 {
			t.Fatalf("thru response has energy away from t=0: %g at %d", resp.Impulse[i], i)
		}
	}
}

func TestConfigPointsPadsTransform(t *testing.T) {
	resp, err := ImpulseResponse(delayLine(t, 64, 10e6, 0), 1, 0, Config{Points: 2048})
	if err != nil {
		t.Fatalf("ImpulseResponse failed: %v", err)
	}

	if len(resp.Impulse) != 1024 {
		t.Fatalf("padded response has %d points, want 1024", len(resp.Impulse))
	}

	// Zero padding changes the axis resolution, not the normalization.
	if math.Abs(resp.Impulse[0]-1) > 1e-9 {
		t.Fatalf("padded thru peak at t=0 is %g, want 1", resp.Impulse[0])
	}
}

func TestStepIsRunningSum(t *testing.T) {
	resp := &Response{Impulse: []float64{0.5, 0.25, -0.125, 0.0625}}

	step := resp.Step()
	want := []float64{0.5, 0.75, 0.625, 0.6875}

	for i := range want {
		if math.Abs(step[i]-want[i]) > 1e-15 {
			t.Fatalf("step[%d] = %g, want %g", i, step[i], want[i])
		}
	}
}

func TestNonuniformGridRejected(t *testing.T) {
	freqs := []float64{1e9, 2e9, 4e9}
	s := make([]network.Matrix, 3)
	for i := range s {
		s[i] = network.Matrix{{0, 1}, {1, 0}}
	}

	n, err := network.New(freqs, s, 50)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := ImpulseResponse(n, 1, 0, Config{}); !errors.Is(err, ErrNonuniformGrid) {
		t.Fatalf("expected ErrNonuniformGrid, got %v", err)
	}
}

func TestOffsetGridRejected(t *testing.T) {
	// Uniform spacing, but the points do not sit on multiples of it.
	freqs := []float64{1.5e9, 2.5e9, 3.5e9}
	s := make([]network.Matrix, 3)
	for i := range s {
		s[i] = network.Matrix{{0, 1}, {1, 0}}
	}

	n, err := network.New(freqs, s, 50)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := ImpulseResponse(n, 1, 0, Config{}); !errors.Is(err, ErrNonuniformGrid) {
		t.Fatalf("expected ErrNonuniformGrid, got %v", err)
	}
}

func TestTooFewPoints(t *testing.T) {
	n, err := network.New([]float64{1e9}, []network.Matrix{{{0, 1}, {1, 0}}}, 50)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := ImpulseResponse(n, 1, 0, Config{}); !errors.Is(err, network.ErrInput) {
		t.Fatalf("expected ErrInput, got %v", err)
	}
}
