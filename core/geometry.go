package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Size is a width and height in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Point is a coordinate in pixels.
type Point struct {
	X float64
	Y float64
}

// scaleFactors maps the frame image's natural pixel space onto its rendered pixel space.
func scaleFactors(rendered Size, natural Size) (r2.Vec, bool) {
	if natural.Width <= 0 || natural.Height <= 0 {
		return r2.Vec{}, false
	}

	return r2.Vec{X: rendered.Width / natural.Width, Y: rendered.Height / natural.Height}, true
}

// ProjectToRendered converts a connection point position into rendered-pixel space.
// It returns false when the natural size is degenerate.
func ProjectToRendered(point ConnectionPoint, rendered Size, natural Size) (Point, bool) {
	scale, ok := scaleFactors(rendered, natural)
	if !ok {
		return Point{}, false
	}

	return Point{X: point.X * scale.X, Y: point.Y * scale.Y}, true
}

// ResolveNearestPoint maps a drop coordinate in rendered-pixel space to the nearest free connection
// point of the frame accepting the category.
//
// Ties resolve to the first point in the frame's connection point order.
// Returns false if no eligible point exists or the natural size is degenerate.
func ResolveNearestPoint(
	frame *Frame,
	category Category,
	drop Point,
	rendered Size,
	natural Size,
) (ConnectionPoint, bool) {

	scale, ok := scaleFactors(rendered, natural)
	if !ok {
		return ConnectionPoint{}, false
	}

	target := r2.Vec{X: drop.X, Y: drop.Y}
	nearest := -1
	best := math.MaxFloat64

	candidates := frame.FreePoints(category)
	for i, point := range candidates {
		projected := r2.Vec{X: point.X * scale.X, Y: point.Y * scale.Y}

		if distance := r2.Norm(r2.Sub(projected, target)); distance < best {
			best = distance
			nearest = i
		}
	}

	if nearest < 0 {
		return ConnectionPoint{}, false
	}

	return candidates[nearest], true
}
