package sampler

import (
	"golang.org/x/xerrors"
)

// Sampler produces an unbounded sequence of Samples for a circle of fixed
// radius.
type Sampler struct {
	radius float64
	src    Source
}

// New returns a Sampler for the given radius drawing from src.
func New(radius float64, src Source) (*Sampler, error) {
	if !(radius > 0) {
		return nil, xerrors.Errorf("radius %v: %w", radius, ErrInvalidRadius)
	}
	if src == nil {
		return nil, ErrNilSource
	}
	return &Sampler{radius: radius, src: src}, nil
}

// Radius returns the circle radius the sampler classifies against.
func (s *Sampler) Radius() float64 {
	return s.radius
}

// Next draws x, then y, and classifies the point.
func (s *Sampler) Next() (Sample, error) {
	x, err := s.src.Uniform()
	if err != nil {
		return Sample{}, xerrors.Errorf("draw x: %w", err)
	}
	y, err := s.src.Uniform()
	if err != nil {
		return Sample{}, xerrors.Errorf("draw y: %w", err)
	}
	p := Point{X: x, Y: y}
	return Sample{Point: p, Inside: Classify(p, s.radius)}, nil
}

// Batch pulls n samples. On failure it returns the samples drawn so far
// together with the error.
func (s *Sampler) Batch(n int) ([]Sample, error) {
	if n <= 0 {
		return nil, nil
	}
	out := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		smp, err := s.Next()
		if err != nil {
			return out, err
		}
		out = append(out, smp)
	}
	return out, nil
}
