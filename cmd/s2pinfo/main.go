// Command s2pinfo prints a per-frequency summary of two-port touchstone
// files: return loss |S11| and insertion loss |S21| in dB, optionally with
// the unwrapped phase.
//
// Usage:
//
//	s2pinfo [flags] <file.s2p> [file.s2p ...]
//
// Examples:
//
//	s2pinfo measurement.s2p
//	s2pinfo -phase left_pad_2015_600.s2p right_pad_2015_600.s2p
//	s2pinfo -param S22 measurement.s2p
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-rf/rf/sparam"
	"github.com/cwbudde/algo-rf/touchstone"
)

// column is one printed data series of a two-port network.
type column struct {
	label    string
	row, col int
}

var columns = map[string]column{
	"S11": {"S11", 0, 0},
	"S21": {"S21", 1, 0},
	"S12": {"S12", 0, 1},
	"S22": {"S22", 1, 1},
}

func main() {
	phase := flag.Bool("phase", false, "include the unwrapped phase in degrees")
	param := flag.String("param", "", "print a single parameter (S11, S21, S12 or S22) instead of the S11/S21 pair")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: s2pinfo [flags] <file.s2p> [file.s2p ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints |S11| and |S21| in dB per frequency point.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cols := []column{columns["S11"], columns["S21"]}

	if *param != "" {
		c, ok := columns[strings.ToUpper(*param)]
		if !ok {
			fmt.Fprintf(os.Stderr, "s2pinfo: unknown parameter %q (want S11, S21, S12 or S22)\n", *param)
			os.Exit(2)
		}

		cols = []column{c}
	}

	failed := false
	for _, path := range flag.Args() {
		if err := printInfo(path, cols, *phase); err != nil {
			fmt.Fprintf(os.Stderr, "s2pinfo: %v\n", err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

func printInfo(path string, cols []column, withPhase bool) error {
	n, err := touchstone.ReadFile(path)
	if err != nil {
		return err
	}

	mags := make([][]float64, len(cols))
	phases := make([][]float64, len(cols))

	for i, c := range cols {
		mags[i], err = sparam.MagnitudeDB(n, c.row, c.col)
		if err != nil {
			return err
		}

		if withPhase {
			phases[i], err = sparam.UnwrappedPhaseDeg(n, c.row, c.col)
			if err != nil {
				return err
			}
		}
	}

	fmt.Printf("%s: %d points, z0 = %g ohm\n", path, n.Points(), n.Z0())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "Freq [Hz]\t")
	for _, c := range cols {
		fmt.Fprintf(tw, "|%s| [dB]\t", c.label)
		if withPhase {
			fmt.Fprintf(tw, "Phase %s [deg]\t", c.label)
		}
	}
	fmt.Fprintln(tw)

	for i := 0; i < n.Points(); i++ {
		fmt.Fprintf(tw, "%g\t", n.Freq(i))
		for j := range cols {
			fmt.Fprintf(tw, "%.3f\t", mags[j][i])
			if withPhase {
				fmt.Fprintf(tw, "%.2f\t", phases[j][i])
			}
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
