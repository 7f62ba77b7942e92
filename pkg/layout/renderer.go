package layout

import (
	"kestrel/pkg/css"
	"kestrel/pkg/paint"
)

// Renderer is an element renderer: one paintable node of the render tree.
// The layer tree drives rendering and hit-testing exclusively through this
// interface. A renderer belongs to exactly one layer; either its own (when
// CreatesOwnLayer is true) or the nearest ancestor's.
type Renderer interface {
	Style() *css.Style

	// GlobalBounds returns the border box in document coordinates,
	// ignoring scroll offsets.
	GlobalBounds() Rect
	ScrollLeft() float64
	ScrollTop() float64

	IsTransparent() bool
	// IsCompositingLayer reports whether the renderer always requires an
	// isolated paint surface (hardware video and the like).
	IsCompositingLayer() bool
	CreatesOwnLayer() bool
	IsScrollBar() bool

	Parent() Renderer
	Children() []Renderer
	Layer() *LayerRenderer

	// Paint draws the renderer's own box onto the surface.
	Paint(s paint.Surface)
	// PaintScrollBars draws scrollbar rails last, always on top of the
	// layer's other content.
	PaintScrollBars(s paint.Surface, w, h float64)

	setParent(p Renderer)
	setLayer(l *LayerRenderer)
}

// BoxRenderer is the concrete base renderer. Geometry is supplied by the
// layout collaborator (or test fixtures); this type only paints it and
// exposes it to the layer tree.
type BoxRenderer struct {
	style      *css.Style
	bounds     Rect
	scrollLeft float64
	scrollTop  float64

	parent   Renderer
	children []Renderer

	// Line boxes contributed by inline layout of this renderer's content.
	lineBoxes []*LineBox

	layer *LayerRenderer
}

// NewBoxRenderer creates a renderer with the given computed style and
// border-box geometry.
func NewBoxRenderer(style *css.Style, bounds Rect) *BoxRenderer {
	if style == nil {
		style = css.NewStyle()
	}
	return &BoxRenderer{style: style, bounds: bounds}
}

func (r *BoxRenderer) Style() *css.Style  { return r.style }
func (r *BoxRenderer) GlobalBounds() Rect { return r.bounds }

// SetBounds updates the border-box geometry after a relayout.
func (r *BoxRenderer) SetBounds(b Rect) { r.bounds = b }

func (r *BoxRenderer) ScrollLeft() float64 { return r.scrollLeft }
func (r *BoxRenderer) ScrollTop() float64  { return r.scrollTop }

// SetScrollOffsets records how far this renderer's content is scrolled.
func (r *BoxRenderer) SetScrollOffsets(left, top float64) {
	r.scrollLeft = left
	r.scrollTop = top
}

func (r *BoxRenderer) IsTransparent() bool      { return r.style.IsTransparent() }
func (r *BoxRenderer) IsCompositingLayer() bool { return false }
func (r *BoxRenderer) IsScrollBar() bool        { return false }

// CreatesOwnLayer reports whether this renderer needs a LayerRenderer of its
// own: the render-tree root always does, as does any element whose resolved
// z-index is not auto. Variants with extra layer triggers (compositing,
// scrollbars) override this.
func (r *BoxRenderer) CreatesOwnLayer() bool {
	return r.parent == nil || !r.style.ResolvedZIndex().IsAuto()
}

func (r *BoxRenderer) Parent() Renderer      { return r.parent }
func (r *BoxRenderer) Children() []Renderer  { return r.children }
func (r *BoxRenderer) Layer() *LayerRenderer { return r.layer }

func (r *BoxRenderer) setParent(p Renderer)      { r.parent = p }
func (r *BoxRenderer) setLayer(l *LayerRenderer) { r.layer = l }

// Append links child under r in the render tree.
func (r *BoxRenderer) Append(child Renderer) {
	child.setParent(r)
	r.children = append(r.children, child)
}

// LineBoxes returns the line boxes produced by inline layout of this
// renderer's content, in document order.
func (r *BoxRenderer) LineBoxes() []*LineBox { return r.lineBoxes }

// AddLineBox records one laid-out line. Invalidating layout discards the
// whole slice via ClearLineBoxes and re-runs.
func (r *BoxRenderer) AddLineBox(lb *LineBox) {
	r.lineBoxes = append(r.lineBoxes, lb)
}

func (r *BoxRenderer) ClearLineBoxes() { r.lineBoxes = nil }

// Paint draws the background and border of the box. Painting goes through
// the raster backend when one is attached; recording surfaces observe the
// traversal without rasterizing.
func (r *BoxRenderer) Paint(s paint.Surface) {
	rs, ok := s.(*paint.Raster)
	if !ok {
		return
	}
	dc := rs.Ctx()
	b := r.bounds

	if bgStr, ok := r.style.Get("background-color"); ok {
		if bg, ok := css.ParseColor(bgStr); ok && bg.A > 0 {
			dc.SetRGBA(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, bg.A)
			dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
			_ = dc.Fill()
		}
	}

	r.paintBorder(rs)
}

// paintBorder draws each border side as a filled strip inside the border
// box edge.
func (r *BoxRenderer) paintBorder(rs *paint.Raster) {
	border := r.style.GetBorderWidth()
	if border.Top <= 0 && border.Right <= 0 && border.Bottom <= 0 && border.Left <= 0 {
		return
	}

	colorStr, ok := r.style.Get("border-color")
	if !ok {
		colorStr, _ = r.style.Get("color")
	}
	bc, ok := css.ParseColor(colorStr)
	if !ok {
		bc = css.Color{A: 1.0}
	}
	if bc.A <= 0 {
		return
	}

	dc := rs.Ctx()
	dc.SetRGBA(float64(bc.R)/255.0, float64(bc.G)/255.0, float64(bc.B)/255.0, bc.A)
	b := r.bounds

	if border.Top > 0 {
		dc.DrawRectangle(b.X, b.Y, b.Width, border.Top)
		_ = dc.Fill()
	}
	if border.Bottom > 0 {
		dc.DrawRectangle(b.X, b.Y+b.Height-border.Bottom, b.Width, border.Bottom)
		_ = dc.Fill()
	}
	if border.Left > 0 {
		dc.DrawRectangle(b.X, b.Y, border.Left, b.Height)
		_ = dc.Fill()
	}
	if border.Right > 0 {
		dc.DrawRectangle(b.X+b.Width-border.Right, b.Y, border.Right, b.Height)
		_ = dc.Fill()
	}
}

// PaintScrollBars draws scrollbar rails along the right and bottom content
// edges for overflow: scroll and auto.
func (r *BoxRenderer) PaintScrollBars(s paint.Surface, w, h float64) {
	switch r.style.GetOverflow() {
	case css.OverflowScroll, css.OverflowAuto:
	default:
		return
	}
	rs, ok := s.(*paint.Raster)
	if !ok {
		return
	}

	const railWidth = 12.0
	dc := rs.Ctx()
	dc.SetRGBA(200/255.0, 200/255.0, 200/255.0, 1.0)
	b := r.bounds

	dc.DrawRectangle(b.X+b.Width-railWidth, b.Y, railWidth, b.Height)
	_ = dc.Fill()
	dc.DrawRectangle(b.X, b.Y+b.Height-railWidth, b.Width-railWidth, railWidth)
	_ = dc.Fill()
}

// VideoRenderer is a compositing-layer renderer: it always requires an
// isolated surface regardless of its z-index.
type VideoRenderer struct {
	BoxRenderer
}

func NewVideoRenderer(style *css.Style, bounds Rect) *VideoRenderer {
	return &VideoRenderer{BoxRenderer: *NewBoxRenderer(style, bounds)}
}

func (r *VideoRenderer) IsCompositingLayer() bool { return true }
func (r *VideoRenderer) CreatesOwnLayer() bool    { return true }

// Paint fills the frame area; actual decoded frames arrive through the
// compositing surface, not this software path.
func (r *VideoRenderer) Paint(s paint.Surface) {
	rs, ok := s.(*paint.Raster)
	if !ok {
		return
	}
	dc := rs.Ctx()
	b := r.bounds
	dc.SetRGBA(0.05, 0.05, 0.05, 1.0)
	dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
	_ = dc.Fill()
}

// ScrollBarRenderer is a scrollbar part owned by a scrollable element. It
// lives on its own layer so it stacks above the content it scrolls, and it
// ignores scroll offsets during hit-testing.
type ScrollBarRenderer struct {
	BoxRenderer
}

func NewScrollBarRenderer(style *css.Style, bounds Rect) *ScrollBarRenderer {
	return &ScrollBarRenderer{BoxRenderer: *NewBoxRenderer(style, bounds)}
}

func (r *ScrollBarRenderer) IsScrollBar() bool     { return true }
func (r *ScrollBarRenderer) CreatesOwnLayer() bool { return true }
