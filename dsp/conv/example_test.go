package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-msvocal/dsp/conv"
)

func ExampleConvolveMode() {
	power := []float64{0, 0, 4, 0, 0}
	box := []float64{0.5, 0.5}

	out, err := conv.ConvolveMode(power, box, conv.ModeSame)
	if err != nil {
		panic(err)
	}

	fmt.Println(out)
	// Output: [0 0 2 2 0]
}
