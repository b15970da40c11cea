// Package estimator folds batches of samples into a running tally and
// derives the Monte Carlo estimate of π from it.
package estimator

import (
	"errors"

	"golang.org/x/xerrors"

	"mcpi/internal/sampler"
)

// ErrInvalidBatchSize is returned for a negative batch size.
var ErrInvalidBatchSize = errors.New("estimator: batch size must be >= 0")

// Frame is the outcome of one tick.
type Frame struct {
	Index    int
	Samples  []sampler.Sample
	Tally    Tally
	Estimate Estimate
}

// Estimator owns a Sampler and the running tally. It is driven by a single
// frame loop and is not safe for concurrent use.
type Estimator struct {
	s     *sampler.Sampler
	tally Tally
	ticks int
}

func New(s *sampler.Sampler) *Estimator {
	return &Estimator{s: s}
}

// Radius of the circle samples are classified against.
func (e *Estimator) Radius() float64 {
	return e.s.Radius()
}

// Tally returns the current counts.
func (e *Estimator) Tally() Tally {
	return e.tally
}

// Ticks returns how many non-empty ticks have completed.
func (e *Estimator) Ticks() int {
	return e.ticks
}

// Tick pulls batchSize samples, folding each into the tally as it is drawn,
// and returns the new tally and estimate. A batch size of zero is a no-op.
// On a source failure the samples drawn so far stay counted.
func (e *Estimator) Tick(batchSize int) (Tally, Estimate, error) {
	if batchSize < 0 {
		return e.tally, e.tally.Estimate(), xerrors.Errorf("batch size %d: %w", batchSize, ErrInvalidBatchSize)
	}
	for i := 0; i < batchSize; i++ {
		smp, err := e.s.Next()
		if err != nil {
			return e.tally, e.tally.Estimate(), xerrors.Errorf("tick %d: %w", e.ticks, err)
		}
		e.tally.Add(smp)
	}
	if batchSize > 0 {
		e.ticks++
	}
	return e.tally, e.tally.Estimate(), nil
}

// Step is Tick that also hands back the samples drawn, for renderers that
// plot individual points.
//
// If the source fails mid-batch the samples drawn before the failure are
// still counted and the error is returned; the caller must stop.
func (e *Estimator) Step(batchSize int) (Frame, error) {
	if batchSize < 0 {
		return e.frame(nil), xerrors.Errorf("batch size %d: %w", batchSize, ErrInvalidBatchSize)
	}
	if batchSize == 0 {
		return e.frame(nil), nil
	}
	samples, err := e.s.Batch(batchSize)
	e.tally = Fold(e.tally, samples)
	if err != nil {
		return e.frame(samples), xerrors.Errorf("tick %d: %w", e.ticks, err)
	}
	e.ticks++
	return e.frame(samples), nil
}

func (e *Estimator) frame(samples []sampler.Sample) Frame {
	return Frame{
		Index:    e.ticks,
		Samples:  samples,
		Tally:    e.tally,
		Estimate: e.tally.Estimate(),
	}
}
