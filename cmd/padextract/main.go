// Command padextract extracts the symmetric T-pad model of a connector or
// fixture launch from a short/long measurement pair and writes both pads as
// touchstone files.
//
// Usage:
//
//	padextract [flags] <short.s2p> <long.s2p> <year> <length>
//
// The first file is the measurement of the nominal-length line, the second
// of the double-length line; both must share the same frequency grid. Year
// and length only name the output artifacts, left_pad_<year>_<length>.s2p
// and right_pad_<year>_<length>.s2p.
//
// On success the two output names are printed on stdout, left pad first.
// On failure a message is written to stderr and the exit code is non-zero.
//
// Examples:
//
//	padextract 2015_600.s2p 2015_1200.s2p 2015 600
//	padextract -C results -z0 75 short.s2p long.s2p 2024 300
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cwbudde/algo-rf/measure/pad"
	"github.com/cwbudde/algo-rf/touchstone"
)

func main() {
	z0 := flag.Float64("z0", pad.DefaultZ0, "reference impedance of the synthesized pads in ohms")
	outDir := flag.String("C", ".", "directory the pad files are written to")

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 4 {
		usage()
		os.Exit(2)
	}

	year, err := strconv.Atoi(flag.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "padextract: year must be an integer, got %q\n", flag.Arg(2))
		usage()
		os.Exit(2)
	}

	length, err := strconv.Atoi(flag.Arg(3))
	if err != nil {
		fmt.Fprintf(os.Stderr, "padextract: length must be an integer, got %q\n", flag.Arg(3))
		usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Arg(1), year, length, *z0, *outDir); err != nil {
		fmt.Fprintln(os.Stderr, "padextract:", err)
		os.Exit(1)
	}
}

func run(shortPath, longPath string, year, length int, z0 float64, outDir string) error {
	short, err := touchstone.ReadFile(shortPath)
	if err != nil {
		return err
	}

	long, err := touchstone.ReadFile(longPath)
	if err != nil {
		return err
	}

	pair, err := pad.NewPipeline(pad.Config{Z0: z0}).Run(short, long)
	if err != nil {
		return err
	}

	leftName, rightName := pad.OutputNames(year, length)

	if err := touchstone.WriteFile(filepath.Join(outDir, leftName), pair.Left); err != nil {
		return err
	}

	if err := touchstone.WriteFile(filepath.Join(outDir, rightName), pair.Right); err != nil {
		return err
	}

	fmt.Println(leftName)
	fmt.Println(rightName)

	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: padextract [flags] <short.s2p> <long.s2p> <year> <length>\n")
	flag.PrintDefaults()
}
