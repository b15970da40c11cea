package estimator

import (
	"fmt"
	"math"

	"mcpi/internal/sampler"
)

// Tally counts samples that fell inside and outside the circle. Both
// counters only grow.
type Tally struct {
	Inside  uint64
	Outside uint64
}

// Total is the number of samples folded into the tally.
func (t Tally) Total() uint64 {
	return t.Inside + t.Outside
}

// Estimate returns 4*Inside/Total, or an invalid Estimate while the tally
// is empty.
func (t Tally) Estimate() Estimate {
	n := t.Total()
	if n == 0 {
		return Estimate{}
	}
	return Estimate{Value: 4 * float64(t.Inside) / float64(n), Valid: true}
}

// StdErr is the standard error of the estimate under a binomial model,
// 4*sqrt(p(1-p)/n). It is zero for an empty tally.
func (t Tally) StdErr() float64 {
	n := t.Total()
	if n == 0 {
		return 0
	}
	p := float64(t.Inside) / float64(n)
	return 4 * math.Sqrt(p*(1-p)/float64(n))
}

func (t Tally) String() string {
	return fmt.Sprintf("in=%d out=%d total=%d", t.Inside, t.Outside, t.Total())
}

// Add counts a single sample.
func (t *Tally) Add(s sampler.Sample) {
	if s.Inside {
		t.Inside++
	} else {
		t.Outside++
	}
}

// Fold adds samples to t and returns the result. Splitting the same
// samples across several calls yields the same tally.
func Fold(t Tally, samples []sampler.Sample) Tally {
	for _, s := range samples {
		t.Add(s)
	}
	return t
}

// Estimate is the current approximation of π. Value is meaningless unless
// Valid is set.
type Estimate struct {
	Value float64
	Valid bool
}

// String formats the value with six decimals, or "n/a" when invalid.
func (e Estimate) String() string {
	if !e.Valid {
		return "n/a"
	}
	return fmt.Sprintf("%.6f", e.Value)
}

// Title is the caption shown above every rendering.
func (e Estimate) Title() string {
	return "PI ≈ " + e.String()
}
