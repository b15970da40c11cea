package entity

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	ColTrace = color.RGBA{0xff, 0xdc, 0x00, 0xff}
	ColPi    = color.RGBA{0x7f, 0xdb, 0xff, 0xff}
)

// Trace plots the estimate history against π. The vertical range is
// π ± Span.
type Trace struct {
	X, Y          float64
	Width, Height int
	Span          float64
}

func NewTrace(x, y float64, w, h int) *Trace {
	return &Trace{X: x, Y: y, Width: w, Height: h, Span: 0.5}
}

func (t *Trace) yFor(v float64) float32 {
	v = math.Max(math.Pi-t.Span, math.Min(math.Pi+t.Span, v))
	frac := (v - (math.Pi - t.Span)) / (2 * t.Span)
	return float32(t.Y + (1-frac)*float64(t.Height))
}

func (t *Trace) Draw(screen *ebiten.Image, values []float64) {
	x0, w := float32(t.X), float32(t.Width)

	// Reference line
	piY := t.yFor(math.Pi)
	vector.StrokeLine(screen, x0, piY, x0+w, piY, 1, ColPi, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.4f", math.Pi), int(t.X)+2, int(piY)-16)
	vector.StrokeRect(screen, x0, float32(t.Y), w, float32(t.Height), 1, ColSquare, false)

	if len(values) < 2 {
		return
	}
	step := w / float32(len(values)-1)
	for i := 1; i < len(values); i++ {
		vector.StrokeLine(screen,
			x0+step*float32(i-1), t.yFor(values[i-1]),
			x0+step*float32(i), t.yFor(values[i]),
			1, ColTrace, true)
	}
}
