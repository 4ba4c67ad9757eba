package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-swrr/dsp/signal"
)

func ExampleGenerator_Triangle() {
	g, _ := signal.NewGenerator(1)
	out, _ := g.Triangle(4, 10, 9)
	fmt.Println(out)
	// Output:
	// [0 5 10 5 0 5 10 5 0]
}

func ExampleNormalize() {
	out, _ := signal.Normalize([]float64{1, -4, 2}, 2)
	fmt.Println(out)
	// Output:
	// [0.5 -2 1]
}
