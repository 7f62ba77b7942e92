// Package layout holds the paintable-box model: element renderers, line
// boxes, and the layer tree that orders them into CSS stacking contexts.
package layout

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// Rect is a rectangular region in global (document) coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether the point (x, y) falls inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}
