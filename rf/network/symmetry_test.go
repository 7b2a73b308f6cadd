package network

import "testing"

func TestSymmetrizedValues(t *testing.T) {
	freqs := testGrid(1)
	s := []Matrix{{{0.25 + 0.5i, 0.5}, {0.25, 0.75 - 0.5i}}}

	n := mustNetwork(t, freqs, s, 50)
	sym := n.Symmetrized()

	got := sym.S(0)
	want := Matrix{
		{0.5, 0.375},
		{0.375, 0.5},
	}

	if got != want {
		t.Fatalf("Symmetrized S = %v, want %v", got, want)
	}

	if n.S(0) != s[0] {
		t.Fatalf("Symmetrized mutated its input")
	}

	if sym.Z0() != n.Z0() || !SameGrid(sym, n) {
		t.Fatalf("Symmetrized changed grid or reference impedance")
	}
}

func TestSymmetrizedIdempotent(t *testing.T) {
	freqs := testGrid(3)
	s := []Matrix{
		{{0.1 + 0.9i, -0.3}, {0.4 + 0.2i, 0.7i}},
		{{-0.5, 0.2 - 0.2i}, {0.8, 0.25}},
		{{0.33 + 0.1i, 0.66}, {0.11 - 0.4i, -0.22i}},
	}

	once := mustNetwork(t, freqs, s, 50).Symmetrized()
	twice := once.Symmetrized()

	for i := range freqs {
		if once.S(i) != twice.S(i) {
			t.Fatalf("second pass changed S[%d]: %v != %v", i, twice.S(i), once.S(i))
		}
	}
}

func TestSymmetrizedFixedPoint(t *testing.T) {
	freqs := testGrid(2)
	s := []Matrix{
		{{0.5 + 0.25i, 0.125}, {0.125, 0.5 + 0.25i}},
		{{-0.75i, 0.375 - 0.5i}, {0.375 - 0.5i, -0.75i}},
	}

	n := mustNetwork(t, freqs, s, 50)
	sym := n.Symmetrized()

	for i := range freqs {
		if sym.S(i) != n.S(i) {
			t.Fatalf("already symmetric input changed at %d: %v != %v", i, sym.S(i), n.S(i))
		}
	}
}

func TestSymmetrizedIsReciprocalAndSymmetric(t *testing.T) {
	freqs := testGrid(2)
	s := []Matrix{
		{{0.9 - 0.3i, 0.1 + 0.1i}, {-0.2, 0.4i}},
		{{0.6, 0.5}, {0.1 - 0.9i, -0.8 + 0.05i}},
	}

	sym := mustNetwork(t, freqs, s, 50).Symmetrized()

	for i := range freqs {
		m := sym.S(i)

		if m != m.Transposed() {
			t.Fatalf("S[%d] is not reciprocal: %v", i, m)
		}

		if m[0][0] != m[1][1] {
			t.Fatalf("S[%d] diagonal entries differ: %v vs %v", i, m[0][0], m[1][1])
		}
	}
}
