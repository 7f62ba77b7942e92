// Package paint provides the graphics surface abstraction the layer tree
// composites into. A Surface is an addressable paint target that can be
// cleared, transformed and composed with child surfaces; the Raster
// implementation rasterizes through gogpu/gg, the Recorder implementation
// captures the operation stream for tests.
package paint

import "github.com/gogpu/gg"

// Surface is the paint target contract consumed by the compositor. Only the
// owning layer of a surface may mutate it (resize, clear, transform);
// borrowing layers draw through it but never reshape it.
type Surface interface {
	// Resize reshapes the surface to the given viewport dimensions.
	Resize(w, h float64)
	// Clear resets the surface to fully transparent.
	Clear()
	// BeginTransparency opens a compositing scope: everything drawn until
	// the matching EndTransparency is blended with the given opacity.
	BeginTransparency(opacity float64)
	// EndTransparency closes the innermost transparency scope.
	EndTransparency()
	// Transform concatenates m onto the surface's transformation matrix.
	Transform(m gg.Matrix)
	// AppendChild registers a child surface composited over this one.
	AppendChild(child Surface)
	// RemoveChild unregisters a previously appended child surface.
	RemoveChild(child Surface)
	// Children returns the registered child surfaces in append order.
	Children() []Surface
	// Dispose releases the surface's resources. Disposing twice is a no-op.
	Dispose()
}

// Factory creates surfaces for layers that establish their own graphics
// context. The compositor asks for viewport-sized surfaces and resizes them
// as the viewport changes.
type Factory interface {
	NewSurface(w, h int) Surface
}

// removeSurface deletes the first occurrence of child from children,
// preserving the order of the rest.
func removeSurface(children []Surface, child Surface) []Surface {
	for i, c := range children {
		if c == child {
			return append(children[:i], children[i+1:]...)
		}
	}
	return children
}
