package layout

import "kestrel/pkg/css"

// RendererAtPoint resolves the topmost element renderer under the point.
// scrollX/scrollY are the viewport's current scroll offsets; fixed-position
// and scrollbar layers are tested against those unscrolled values while
// normal layers accumulate their ancestors' scroll offsets. Returns nil
// when nothing contains the point.
func (l *LayerRenderer) RendererAtPoint(p Point, scrollX, scrollY float64) Renderer {
	hits := l.RenderersAtPoint(p, scrollX, scrollY)
	if len(hits) == 0 {
		return nil
	}
	// Paint order is hit order: the topmost renderer is the last entry.
	return hits[len(hits)-1]
}

// RenderersAtPoint returns every renderer containing the point, ordered by
// paint order (topmost last). The full list is always built; callers that
// only need the topmost hit go through RendererAtPoint.
func (l *LayerRenderer) RenderersAtPoint(p Point, scrollX, scrollY float64) []Renderer {
	var hits []Renderer
	l.collectHits(p, scrollX, scrollY, scrollX, scrollY, &hits)
	return hits
}

// collectHits appends this layer's own hits, then each child layer's, in
// paint order (negative, zero/auto, positive, each in partition order).
// baseX/baseY carry the unscrolled offsets the query started with, for
// layers that do not move with scrolling.
func (l *LayerRenderer) collectHits(p Point, sx, sy, baseX, baseY float64, hits *[]Renderer) {
	l.collectSubtreeHits(l.owner, p, sx, sy, hits)

	childSX := sx + l.owner.ScrollLeft()
	childSY := sy + l.owner.ScrollTop()
	for _, child := range l.childLayers() {
		csx, csy := childSX, childSY
		if child.owner.IsScrollBar() || child.owner.Style().GetPosition() == css.PositionFixed {
			csx, csy = baseX, baseY
		}
		child.collectHits(p, csx, csy, baseX, baseY, hits)
	}
}

// collectSubtreeHits walks the element subtree that paints into this layer,
// stopping descent at renderers that own a different layer (their layer
// visits them), and appends every renderer whose global bounds contain the
// scroll-adjusted point.
func (l *LayerRenderer) collectSubtreeHits(r Renderer, p Point, sx, sy float64, hits *[]Renderer) {
	if r != l.owner && r.CreatesOwnLayer() {
		return
	}
	if r.GlobalBounds().Contains(p.X+sx, p.Y+sy) {
		*hits = append(*hits, r)
	}
	for _, child := range r.Children() {
		l.collectSubtreeHits(child, p, sx+r.ScrollLeft(), sy+r.ScrollTop(), hits)
	}
}
