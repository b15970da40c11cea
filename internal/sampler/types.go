package sampler

// Point is a location in the sampling square.
type Point struct {
	X, Y float64
}

// Sample is a Point together with its circle membership.
type Sample struct {
	Point
	Inside bool
}

// Classify reports whether p lies inside the circle of radius r.
// Points on the boundary count as inside.
func Classify(p Point, r float64) bool {
	return p.X*p.X+p.Y*p.Y <= r*r
}
