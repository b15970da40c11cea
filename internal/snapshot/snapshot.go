// Package snapshot runs a fixed number of frames without a display and
// saves the resulting scatter plot as a PNG image.
package snapshot

import (
	"context"
	"image/color"
	"io"
	"math"
	"os"

	"go.uber.org/zap"
	"golang.org/x/xerrors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"mcpi/internal/estimator"
	"mcpi/internal/sampler"
)

const (
	circleSegments = 256
	imageSize      = 16 * vg.Centimeter
)

var (
	colInside  = color.RGBA{0, 160, 0, 255}
	colOutside = color.RGBA{220, 0, 0, 255}
)

// Points holds the realized samples split by membership.
type Points struct {
	In, Out plotter.XYs
}

func (p *Points) Add(samples []sampler.Sample) {
	for _, s := range samples {
		xy := plotter.XY{X: s.X, Y: s.Y}
		if s.Inside {
			p.In = append(p.In, xy)
		} else {
			p.Out = append(p.Out, xy)
		}
	}
}

// Plot builds the scatter of pts with the circle boundary of radius r and
// the estimate as title.
func Plot(pts *Points, r float64, est estimator.Estimate) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = est.Title()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = -1, 1
	p.Y.Min, p.Y.Max = -1, 1

	for _, set := range []struct {
		name string
		xys  plotter.XYs
		clr  color.Color
	}{
		{"inside", pts.In, colInside},
		{"outside", pts.Out, colOutside},
	} {
		if len(set.xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(set.xys)
		if err != nil {
			return nil, xerrors.Errorf("%s scatter: %w", set.name, err)
		}
		s.GlyphStyle.Color = set.clr
		s.GlyphStyle.Radius = vg.Points(1)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(set.name, s)
	}

	boundary := make(plotter.XYs, circleSegments+1)
	for i := range boundary {
		a := 2 * math.Pi * float64(i) / circleSegments
		boundary[i] = plotter.XY{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	line, err := plotter.NewLine(boundary)
	if err != nil {
		return nil, xerrors.Errorf("circle: %w", err)
	}
	line.LineStyle.Width = vg.Points(1)
	p.Add(line)

	// keep the square fixed whatever the radius
	p.X.Min, p.X.Max = -1, 1
	p.Y.Min, p.Y.Max = -1, 1
	return p, nil
}

// WritePNG renders p as a square PNG onto w.
func WritePNG(w io.Writer, p *plot.Plot) error {
	wt, err := p.WriterTo(imageSize, imageSize, "png")
	if err != nil {
		return xerrors.Errorf("render: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return xerrors.Errorf("write: %w", err)
	}
	return nil
}

// Presenter ticks Frames times as fast as possible and writes the final
// plot to Output.
type Presenter struct {
	Output string
	Frames int
	Batch  int
	Log    *zap.SugaredLogger
}

func (p *Presenter) Run(ctx context.Context, est *estimator.Estimator) (estimator.Frame, error) {
	log := p.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	pts := &Points{}
	last := estimator.Frame{Tally: est.Tally(), Estimate: est.Tally().Estimate()}
	for i := 0; i < p.Frames; i++ {
		if ctx.Err() != nil {
			log.Infow("interrupted, writing partial plot", "frames", i)
			break
		}
		frame, err := est.Step(p.Batch)
		if err != nil {
			return frame, xerrors.Errorf("snapshot: %w", err)
		}
		pts.Add(frame.Samples)
		last = frame
	}

	plt, err := Plot(pts, est.Radius(), last.Estimate)
	if err != nil {
		return last, xerrors.Errorf("snapshot: %w", err)
	}

	f, err := os.Create(p.Output)
	if err != nil {
		return last, xerrors.Errorf("snapshot: %w", err)
	}
	if err := WritePNG(f, plt); err != nil {
		f.Close()
		return last, xerrors.Errorf("snapshot %s: %w", p.Output, err)
	}
	if err := f.Close(); err != nil {
		return last, xerrors.Errorf("snapshot: %w", err)
	}
	log.Infow("plot written", "path", p.Output, "points", last.Tally.Total())
	return last, nil
}
