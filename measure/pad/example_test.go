package pad_test

import (
	"fmt"

	"github.com/cwbudde/algo-rf/measure/pad"
)

func ExampleOutputNames() {
	left, right := pad.OutputNames(2015, 600)

	fmt.Println(left)
	fmt.Println(right)

	// Output:
	// left_pad_2015_600.s2p
	// right_pad_2015_600.s2p
}

func ExampleTee() {
	freqs := []float64{1e9}

	tee, _ := pad.Tee(freqs,
		[]complex128{5 + 10i},
		[]complex128{50 - 20i},
		[]complex128{5 + 10i},
		50,
	)

	z, _ := tee.Z()

	fmt.Printf("Z11=%.0f%+.0fj Z21=%.0f%+.0fj\n",
		real(z[0][0][0]), imag(z[0][0][0]), real(z[0][1][0]), imag(z[0][1][0]))

	// Output:
	// Z11=55-10j Z21=50-20j
}
