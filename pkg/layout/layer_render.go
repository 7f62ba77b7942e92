package layout

import (
	"math"

	"github.com/gogpu/gg"

	"kestrel/pkg/css"
)

// Render paints the layer subtree in stacking order for the given viewport:
// negative children first, then the owning element inside its transparency
// scope if it has one, then zero/auto and positive children, then the
// owner's scrollbars. The owner's transform, when active, is applied to the
// surface once the layer's content is in place.
func (l *LayerRenderer) Render(viewportW, viewportH float64) {
	if l.viewportW != viewportW || l.viewportH != viewportH {
		if l.ownsSurface {
			l.surface.Resize(viewportW, viewportH)
			l.viewportW = viewportW
			l.viewportH = viewportH
		}
	}
	if l.ownsSurface {
		l.surface.Clear()
	}

	for _, child := range l.negative {
		child.Render(viewportW, viewportH)
	}

	transparent := l.owner.IsTransparent()
	if transparent {
		l.surface.BeginTransparency(l.owner.Style().GetOpacity())
	}
	l.owner.Paint(l.surface)
	if transparent {
		l.surface.EndTransparency()
	}

	for _, child := range l.zeroAuto {
		child.Render(viewportW, viewportH)
	}
	for _, child := range l.positive {
		child.Render(viewportW, viewportH)
	}

	l.owner.PaintScrollBars(l.surface, viewportW, viewportH)

	if l.owner.Style().IsTransformed() {
		l.surface.Transform(l.transformMatrix())
	}
}

// transformMatrix concatenates the owning element's style transform about
// its global origin: translate to the origin (including any relative
// positioning offset), apply the transform list, translate back.
func (l *LayerRenderer) transformMatrix() gg.Matrix {
	b := l.owner.GlobalBounds()
	dx, dy := l.owner.Style().GetRelativeOffset()
	ox, oy := b.X+dx, b.Y+dy

	m := gg.Translate(ox, oy)
	m = m.Multiply(styleTransformMatrix(l.owner.Style().GetTransforms()))
	return m.Multiply(gg.Translate(-ox, -oy))
}

// styleTransformMatrix folds the parsed transform list into one affine
// matrix, applying the functions in declaration order.
func styleTransformMatrix(transforms []css.Transform) gg.Matrix {
	m := gg.Identity()
	for _, t := range transforms {
		switch t.Type {
		case "translate":
			m = m.Multiply(gg.Translate(t.Values[0], t.Values[1]))
		case "rotate":
			m = m.Multiply(gg.Rotate(t.Values[0] * math.Pi / 180))
		case "scale":
			m = m.Multiply(gg.Scale(t.Values[0], t.Values[1]))
		}
	}
	return m
}
