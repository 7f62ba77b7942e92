package paint

import (
	"image"

	"github.com/gogpu/gg"
)

// Raster is a Surface backed by a software gg context. Owned surfaces are
// viewport-sized and painted in global coordinates, so child surfaces
// composite over the parent at the origin.
type Raster struct {
	ctx      *gg.Context
	children []Surface
	disposed bool
}

// NewRaster creates a raster surface with the given pixel dimensions.
func NewRaster(w, h int) *Raster {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Raster{ctx: gg.NewContext(w, h)}
}

// Ctx exposes the underlying drawing context for element painters.
func (r *Raster) Ctx() *gg.Context {
	return r.ctx
}

func (r *Raster) Resize(w, h float64) {
	if r.disposed {
		return
	}
	// gg rejects non-positive dimensions; clamp rather than fail, a
	// degenerate viewport is still a valid (empty) paint target.
	iw, ih := int(w), int(h)
	if iw < 1 {
		iw = 1
	}
	if ih < 1 {
		ih = 1
	}
	_ = r.ctx.Resize(iw, ih)
}

func (r *Raster) Clear() {
	r.ctx.Clear()
}

func (r *Raster) BeginTransparency(opacity float64) {
	r.ctx.PushLayer(gg.BlendNormal, opacity)
}

func (r *Raster) EndTransparency() {
	r.ctx.PopLayer()
}

func (r *Raster) Transform(m gg.Matrix) {
	r.ctx.Transform(m)
}

func (r *Raster) AppendChild(child Surface) {
	r.children = append(r.children, child)
}

func (r *Raster) RemoveChild(child Surface) {
	r.children = removeSurface(r.children, child)
}

func (r *Raster) Children() []Surface {
	return r.children
}

func (r *Raster) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.children = nil
	_ = r.ctx.Close()
}

// Flatten composites the surface and its children, depth-first, into a
// single image. Children paint over their parent in append order. The
// compositing happens on a scratch copy, so the surface's own pixels stay
// untouched and flattening is repeatable.
func (r *Raster) Flatten() image.Image {
	if len(r.children) == 0 {
		return r.ctx.Image()
	}
	out := gg.NewContextForImage(r.ctx.Image())
	for _, child := range r.children {
		cr, ok := child.(*Raster)
		if !ok {
			continue
		}
		out.DrawImage(gg.ImageBufFromImage(cr.Flatten()), 0, 0)
	}
	return out.Image()
}

// SavePNG flattens the surface tree and writes it to path.
func (r *Raster) SavePNG(path string) error {
	return gg.NewContextForImage(r.Flatten()).SavePNG(path)
}

// RasterFactory creates Raster surfaces.
type RasterFactory struct{}

func (RasterFactory) NewSurface(w, h int) Surface {
	return NewRaster(w, h)
}
