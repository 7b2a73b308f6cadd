package touchstone

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-rf/rf/network"
)

// WriteFile writes n to path in touchstone format, replacing any existing
// file.
func WriteFile(path string, n *network.Network) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("touchstone: %w", err)
	}

	w := bufio.NewWriter(f)

	if err := Write(w, n); err != nil {
		f.Close()
		return err
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("touchstone: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("touchstone: %w", err)
	}

	return nil
}

// Write emits n as touchstone data: real/imaginary scattering parameters on
// a Hz frequency grid.
func Write(w io.Writer, n *network.Network) error {
	if _, err := fmt.Fprintf(w, "! 2-port scattering parameters\n"); err != nil {
		return fmt.Errorf("touchstone: %w", err)
	}

	if _, err := fmt.Fprintf(w, "! freq  ReS11 ImS11  ReS21 ImS21  ReS12 ImS12  ReS22 ImS22\n"); err != nil {
		return fmt.Errorf("touchstone: %w", err)
	}

	if _, err := fmt.Fprintf(w, "# Hz S RI R %g\n", n.Z0()); err != nil {
		return fmt.Errorf("touchstone: %w", err)
	}

	for i := range n.Points() {
		s := n.S(i)

		_, err := fmt.Fprintf(w, "%.12g %.12g %.12g %.12g %.12g %.12g %.12g %.12g %.12g\n",
			n.Freq(i),
			real(s[0][0]), imag(s[0][0]),
			real(s[1][0]), imag(s[1][0]),
			real(s[0][1]), imag(s[0][1]),
			real(s[1][1]), imag(s[1][1]))
		if err != nil {
			return fmt.Errorf("touchstone: %w", err)
		}
	}

	return nil
}
