package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mcpi/internal/sampler"
)

var (
	ColInside   = color.RGBA{0x2e, 0xcc, 0x40, 0xff} // green
	ColOutside  = color.RGBA{0xff, 0x41, 0x36, 0xff} // red
	ColBoundary = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColSquare   = color.RGBA{0x60, 0x60, 0x60, 0xff}
)

// Cloud is the scatter of every sampled point plus the circle boundary.
// Points are painted once onto an offscreen canvas, so a frame only costs
// the points added since the previous Draw.
type Cloud struct {
	X, Y   float64 // top-left corner on screen
	Size   int     // side of the square in pixels
	Radius float64
	Marker float32

	canvas  *ebiten.Image
	pending []sampler.Sample
}

func NewCloud(x, y float64, size int, radius float64) *Cloud {
	return &Cloud{
		X:      x,
		Y:      y,
		Size:   size,
		Radius: radius,
		Marker: 1.5,
	}
}

// Add queues samples to be painted on the next Draw.
func (c *Cloud) Add(samples []sampler.Sample) {
	c.pending = append(c.pending, samples...)
}

// project maps a point in [-1, 1]² to canvas pixels, y pointing up.
func (c *Cloud) project(x, y float64) (float32, float32) {
	s := float64(c.Size)
	return float32((x + 1) / 2 * s), float32((1 - y) / 2 * s)
}

// Flush paints queued points onto the canvas without drawing to the screen.
func (c *Cloud) Flush() {
	if c.canvas == nil {
		c.canvas = ebiten.NewImage(c.Size, c.Size)
	}
	for _, smp := range c.pending {
		px, py := c.project(smp.X, smp.Y)
		clr := ColOutside
		if smp.Inside {
			clr = ColInside
		}
		vector.DrawFilledCircle(c.canvas, px, py, c.Marker, clr, true)
	}
	c.pending = c.pending[:0]
}

func (c *Cloud) Draw(screen *ebiten.Image) {
	// 1. New points
	c.Flush()

	// 2. Blit
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(c.X, c.Y)
	screen.DrawImage(c.canvas, op)

	// 3. Square and circle on top so markers never hide them
	ox, oy := float32(c.X), float32(c.Y)
	s := float32(c.Size)
	vector.StrokeRect(screen, ox, oy, s, s, 1, ColSquare, false)

	cx, cy := c.project(0, 0)
	r := float32(c.Radius / 2 * float64(c.Size))
	vector.StrokeCircle(screen, ox+cx, oy+cy, r, 1, ColBoundary, true)
}
