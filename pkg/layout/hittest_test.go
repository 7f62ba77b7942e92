package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kestrel/pkg/css"
	"kestrel/pkg/paint"
)

func box(style string, bounds Rect) *BoxRenderer {
	return NewBoxRenderer(css.ParseInlineStyle(style), bounds)
}

func TestRendererAtPoint_TopmostOfOverlap(t *testing.T) {
	root := box("", Rect{Width: 200, Height: 200})
	first := box("", Rect{Width: 100, Height: 100})
	second := box("", Rect{X: 50, Y: 50, Width: 100, Height: 100})
	root.Append(first)
	root.Append(second)
	tree := NewLayerTree(root, &paint.RecorderFactory{})

	// Both boxes contain (60,60); the later sibling paints on top.
	assert.Same(t, Renderer(second), tree.RendererAtPoint(Point{X: 60, Y: 60}, 0, 0))
	assert.Same(t, Renderer(first), tree.RendererAtPoint(Point{X: 10, Y: 10}, 0, 0))
	assert.Same(t, Renderer(second), tree.RendererAtPoint(Point{X: 140, Y: 140}, 0, 0))
	assert.Nil(t, tree.RendererAtPoint(Point{X: 500, Y: 500}, 0, 0))
}

func TestRenderersAtPoint_PaintOrderTopmostLast(t *testing.T) {
	root := box("", Rect{Width: 200, Height: 200})
	first := box("", Rect{Width: 100, Height: 100})
	second := box("", Rect{X: 50, Y: 50, Width: 100, Height: 100})
	root.Append(first)
	root.Append(second)
	tree := NewLayerTree(root, &paint.RecorderFactory{})

	hits := tree.RenderersAtPoint(Point{X: 60, Y: 60}, 0, 0)
	require.Equal(t, []Renderer{root, first, second}, hits)
}

func TestRendererAtPoint_ChildLayerWinsOverOwnContent(t *testing.T) {
	root := box("", Rect{Width: 200, Height: 200})
	under := box("", Rect{Width: 100, Height: 100})
	raised := box("z-index: 1", Rect{X: 50, Y: 50, Width: 100, Height: 100})
	root.Append(under)
	root.Append(raised)
	tree := NewLayerTree(root, &paint.RecorderFactory{})

	// raised owns a layer, so it is visited after the root layer's own
	// subtree even though both contain the point.
	assert.Same(t, Renderer(raised), tree.RendererAtPoint(Point{X: 60, Y: 60}, 0, 0))

	// The subtree walk skips layered children; no double hits.
	hits := tree.RenderersAtPoint(Point{X: 60, Y: 60}, 0, 0)
	count := 0
	for _, h := range hits {
		if h == Renderer(raised) {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRendererAtPoint_AccumulatesScrollOffsets(t *testing.T) {
	root := box("overflow: scroll", Rect{Width: 200, Height: 200})
	child := box("", Rect{Y: 100, Width: 100, Height: 50})
	root.Append(child)
	root.SetScrollOffsets(0, 50)
	tree := NewLayerTree(root, &paint.RecorderFactory{})

	// Scrolled down by 50: viewport y=60 lands on content y=110.
	assert.Same(t, Renderer(child), tree.RendererAtPoint(Point{X: 10, Y: 60}, 0, 0))

	root.SetScrollOffsets(0, 0)
	assert.Same(t, Renderer(root), tree.RendererAtPoint(Point{X: 10, Y: 60}, 0, 0))
}

func TestRendererAtPoint_FixedIgnoresAncestorScroll(t *testing.T) {
	root := box("overflow: scroll", Rect{Width: 200, Height: 200})
	fixed := box("position: fixed; z-index: 1", Rect{Y: 100, Width: 100, Height: 50})
	flowing := box("z-index: 2", Rect{Y: 100, Width: 100, Height: 50})
	root.Append(fixed)
	root.Append(flowing)
	root.SetScrollOffsets(0, 50)
	tree := NewLayerTree(root, &paint.RecorderFactory{})

	// At viewport y=110 the fixed box is hit at its unscrolled position;
	// the flowing sibling is tested at content y=160 and misses.
	assert.Same(t, Renderer(fixed), tree.RendererAtPoint(Point{X: 10, Y: 110}, 0, 0))

	// At viewport y=60 only the flowing sibling (content y=110) is hit.
	assert.Same(t, Renderer(flowing), tree.RendererAtPoint(Point{X: 10, Y: 60}, 0, 0))
}

func TestRendererAtPoint_ScrollBarIgnoresOwnerScroll(t *testing.T) {
	root := box("overflow: scroll", Rect{Width: 200, Height: 200})
	bar := NewScrollBarRenderer(css.NewStyle(), Rect{X: 188, Width: 12, Height: 20})
	root.Append(bar)
	root.SetScrollOffsets(0, 50)
	tree := NewLayerTree(root, &paint.RecorderFactory{})

	// The rail stays put while content scrolls underneath it.
	assert.Same(t, Renderer(bar), tree.RendererAtPoint(Point{X: 190, Y: 10}, 0, 0))
	assert.Same(t, Renderer(root), tree.RendererAtPoint(Point{X: 190, Y: 30}, 0, 0))
}
