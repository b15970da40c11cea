// Package console shows the running estimate as a terminal progress bar.
package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"mcpi/internal/estimator"
)

const (
	boundedTemplate   = `{{counters . }} {{bar . }} {{percent . }} {{string . "estimate"}}`
	unboundedTemplate = `{{counters . }} frames {{string . "estimate"}}`
)

// Presenter ticks the estimator every Interval and reports progress on Out.
// Frames of 0 runs until ctx is cancelled.
type Presenter struct {
	Out      io.Writer
	Frames   int
	Batch    int
	Interval time.Duration
	Log      *zap.SugaredLogger
}

func (p *Presenter) newBar() *pb.ProgressBar {
	tmpl := boundedTemplate
	if p.Frames <= 0 {
		tmpl = unboundedTemplate
	}
	bar := pb.ProgressBarTemplate(tmpl).New(p.Frames)
	bar.SetWriter(p.Out)
	bar.SetRefreshRate(100 * time.Millisecond)
	return bar
}

func (p *Presenter) Run(ctx context.Context, est *estimator.Estimator) (estimator.Frame, error) {
	log := p.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	last := estimator.Frame{Tally: est.Tally(), Estimate: est.Tally().Estimate()}
	bar := p.newBar()
	bar.Set("estimate", last.Estimate.Title())
	bar.Start()

	interval := p.Interval
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; p.Frames <= 0 || i < p.Frames; i++ {
		select {
		case <-ctx.Done():
			bar.Finish()
			log.Infow("interrupted", "frames", i)
			p.summary(last)
			return last, nil
		case <-ticker.C:
		}

		frame, err := est.Step(p.Batch)
		if err != nil {
			bar.Finish()
			return frame, xerrors.Errorf("console: %w", err)
		}
		last = frame
		bar.Set("estimate", frame.Estimate.Title())
		bar.Increment()
	}
	bar.Finish()
	p.summary(last)
	return last, nil
}

func (p *Presenter) summary(f estimator.Frame) {
	fmt.Fprintf(p.Out, "%s  (%s, stderr %.6f)\n", f.Estimate.Title(), f.Tally, f.Tally.StdErr())
}
