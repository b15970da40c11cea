package estimator_test

import (
	"fmt"

	"mcpi/internal/estimator"
	"mcpi/internal/sampler"
)

func ExampleEstimator_Tick() {
	src := sampler.NewReplaySource(0, 0, 1, 1, 0.5, 0.5, -1, 0)
	s, _ := sampler.New(1, src)
	e := estimator.New(s)

	tally, est, _ := e.Tick(4)
	fmt.Println(tally)
	fmt.Println(est.Title())
	// Output:
	// in=3 out=1 total=4
	// PI ≈ 3.000000
}
