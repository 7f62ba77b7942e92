package layout

import (
	"fmt"

	"go.uber.org/zap"

	"kestrel/pkg/css"
	"kestrel/pkg/paint"
)

var nopLogger = zap.NewNop()

// LayerRenderer is one node of the stacking-context tree. Child layers are
// kept in three disjoint ordered partitions mirroring the CSS painting
// algorithm: negative z-index (most negative first), zero/auto (document
// order), and positive z-index (ascending). A layer either owns a graphics
// surface or borrows the nearest ancestor's; ownership follows
// establishesNewGraphicsContext and is recomputed incrementally on
// structural change.
type LayerRenderer struct {
	owner  Renderer
	parent *LayerRenderer

	negative []*LayerRenderer
	zeroAuto []*LayerRenderer
	positive []*LayerRenderer

	surface     paint.Surface
	ownsSurface bool

	// Cached viewport size, used by Render to detect resizes.
	viewportW float64
	viewportH float64

	// Set on the tree root only.
	isRoot  bool
	factory paint.Factory
	log     *zap.Logger
}

// Option configures the root of a layer tree.
type Option func(*LayerRenderer)

// WithLogger attaches a logger for structural-change debug events.
func WithLogger(log *zap.Logger) Option {
	return func(l *LayerRenderer) {
		l.log = log
	}
}

// NewLayerRenderer creates a detached layer for the given element renderer
// and links the two. The layer joins a tree through AppendChild.
func NewLayerRenderer(owner Renderer) *LayerRenderer {
	l := &LayerRenderer{owner: owner}
	owner.setLayer(l)
	return l
}

// NewLayerTree builds the layer tree for a render tree: the root gets the
// root layer, and every descendant renderer that creates its own layer is
// inserted under its nearest ancestor layer in document order.
func NewLayerTree(root Renderer, factory paint.Factory, opts ...Option) *LayerRenderer {
	rl := NewLayerRenderer(root)
	rl.isRoot = true
	rl.factory = factory
	for _, opt := range opts {
		opt(rl)
	}
	rl.attach()
	addDescendantLayers(root)
	return rl
}

// addDescendantLayers walks the render tree below r and inserts a layer for
// every renderer that needs one. Insertion handles stacking-context
// redirection, so each layer is simply offered to the nearest enclosing
// ancestor layer.
func addDescendantLayers(r Renderer) {
	for _, child := range r.Children() {
		if child.CreatesOwnLayer() {
			l := NewLayerRenderer(child)
			EnclosingLayer(r).AppendChild(l)
		}
		addDescendantLayers(child)
	}
}

// EnclosingLayer returns the layer the renderer paints into: its own, or
// the nearest ancestor's.
func EnclosingLayer(r Renderer) *LayerRenderer {
	for cur := r; cur != nil; cur = cur.Parent() {
		if l := cur.Layer(); l != nil {
			return l
		}
	}
	return nil
}

func (l *LayerRenderer) Owner() Renderer        { return l.owner }
func (l *LayerRenderer) Parent() *LayerRenderer { return l.parent }

// Surface returns the layer's current paint target (owned or borrowed).
func (l *LayerRenderer) Surface() paint.Surface { return l.surface }

// OwnsSurface reports whether the layer owns its surface rather than
// borrowing an ancestor's.
func (l *LayerRenderer) OwnsSurface() bool { return l.ownsSurface }

// NegativeChildren returns the negative-z partition, most negative first.
func (l *LayerRenderer) NegativeChildren() []*LayerRenderer { return l.negative }

// ZeroOrAutoChildren returns the zero/auto partition in document order.
func (l *LayerRenderer) ZeroOrAutoChildren() []*LayerRenderer { return l.zeroAuto }

// PositiveChildren returns the positive-z partition in ascending order.
func (l *LayerRenderer) PositiveChildren() []*LayerRenderer { return l.positive }

// childLayers returns all structural children in paint order.
func (l *LayerRenderer) childLayers() []*LayerRenderer {
	out := make([]*LayerRenderer, 0, len(l.negative)+len(l.zeroAuto)+len(l.positive))
	out = append(out, l.negative...)
	out = append(out, l.zeroAuto...)
	out = append(out, l.positive...)
	return out
}

// EstablishesNewStackingContext reports whether child layers nest under
// this layer structurally. True unless the owning element's z-index is
// auto; the tree root always establishes the root stacking context.
func (l *LayerRenderer) EstablishesNewStackingContext() bool {
	return l.isRoot || !l.owner.Style().ResolvedZIndex().IsAuto()
}

// stackingContext returns the nearest layer at or above l that establishes
// a stacking context. The root terminates every walk.
func (l *LayerRenderer) stackingContext() *LayerRenderer {
	for cur := l; cur != nil; cur = cur.parent {
		if cur.EstablishesNewStackingContext() {
			return cur
		}
	}
	panic("layout: layer tree has no stacking-context root")
}

func (l *LayerRenderer) root() *LayerRenderer {
	cur := l
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

func (l *LayerRenderer) logger() *zap.Logger {
	if log := l.root().log; log != nil {
		return log
	}
	return nopLogger
}

// AppendChild inserts child into this stacking context, filing it into the
// partition selected by its owning element's resolved z-index. Layers that
// do not establish a stacking context redirect the insertion to the
// nearest ancestor that does; the tree structurally contains only
// stacking-context roots as parents. The inserted child is attached
// (acquires a surface) before returning.
func (l *LayerRenderer) AppendChild(child *LayerRenderer) *LayerRenderer {
	if !l.EstablishesNewStackingContext() {
		return l.stackingContext().AppendChild(child)
	}

	z := child.owner.Style().ResolvedZIndex()
	child.parent = l
	switch {
	case z.IsAuto(), z.Kind == css.ZIndexInteger && z.Value == 0:
		l.zeroAuto = append(l.zeroAuto, child)
	case z.Kind == css.ZIndexInteger && z.Value > 0:
		l.positive = insertByZIndex(l.positive, child, z.Value)
	case z.Kind == css.ZIndexInteger:
		l.negative = insertByZIndex(l.negative, child, z.Value)
	default:
		raw, _ := child.owner.Style().Get("z-index")
		panic(&css.InvalidStyleValueError{Property: "z-index", Value: raw})
	}

	child.attach()

	// A compositing arrival can force this layer, the new child's siblings
	// and every ancestor onto their own surfaces; re-sync the whole tree.
	if child.hasCompositingDescendant() {
		l.root().syncSurfaces()
	}

	l.logger().Debug("layer inserted",
		zap.String("z-index", z.String()),
		zap.Bool("compositing", child.owner.IsCompositingLayer()))
	return child
}

// insertByZIndex files child into list keeping z-indices ascending. The
// insertion point is before the first strictly greater entry, so equal
// values keep their existing order and the new entry lands after them.
func insertByZIndex(list []*LayerRenderer, child *LayerRenderer, z int) []*LayerRenderer {
	at := len(list)
	for i, sibling := range list {
		if sibling.resolvedZValue() > z {
			at = i
			break
		}
	}
	list = append(list, nil)
	copy(list[at+1:], list[at:])
	list[at] = child
	return list
}

// resolvedZValue returns the integer z-index of a structurally inserted
// layer. Only called on members of the negative/positive partitions, which
// hold integer z-indices by construction.
func (l *LayerRenderer) resolvedZValue() int {
	return l.owner.Style().ResolvedZIndex().Value
}

// RemoveChild unlinks child from this stacking context, detaching its
// surface subtree. Calls against non-stacking layers redirect like
// AppendChild. Removing a layer that is not a child is a precondition
// violation and panics.
func (l *LayerRenderer) RemoveChild(child *LayerRenderer) {
	if !l.EstablishesNewStackingContext() {
		l.stackingContext().RemoveChild(child)
		return
	}

	switch {
	case containsLayer(l.zeroAuto, child):
		l.zeroAuto = removeLayer(l.zeroAuto, child)
	case containsLayer(l.positive, child):
		l.positive = removeLayer(l.positive, child)
	case containsLayer(l.negative, child):
		l.negative = removeLayer(l.negative, child)
	default:
		panic(fmt.Sprintf("layout: RemoveChild of layer that is not a child (z-index %s)",
			child.owner.Style().ResolvedZIndex()))
	}

	hadCompositing := child.hasCompositingDescendant()
	child.detach()
	child.parent = nil

	// Dropping a compositing subtree can drop the surface requirement for
	// this layer, the removed child's former siblings and the ancestors.
	if hadCompositing {
		l.root().syncSurfaces()
	}

	l.logger().Debug("layer removed")
}

func containsLayer(list []*LayerRenderer, child *LayerRenderer) bool {
	for _, c := range list {
		if c == child {
			return true
		}
	}
	return false
}

func removeLayer(list []*LayerRenderer, child *LayerRenderer) []*LayerRenderer {
	for i, c := range list {
		if c == child {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// establishesNewGraphicsContext decides surface ownership: the tree root
// always owns one, as does any layer with a compositing descendant or a
// compositing sibling below it in stacking order.
func (l *LayerRenderer) establishesNewGraphicsContext() bool {
	if l.isRoot {
		return true
	}
	if l.hasCompositingDescendant() {
		return true
	}
	if l.parent == nil {
		return false
	}
	for _, sibling := range l.parent.childLayers() {
		if sibling == l {
			continue
		}
		if sibling.owner.IsCompositingLayer() && sibling.stackedBelow(l) {
			return true
		}
	}
	return false
}

// hasCompositingDescendant reports whether this layer or anything below it
// is a compositing layer.
func (l *LayerRenderer) hasCompositingDescendant() bool {
	if l.owner.IsCompositingLayer() {
		return true
	}
	for _, child := range l.childLayers() {
		if child.hasCompositingDescendant() {
			return true
		}
	}
	return false
}

// stackedBelow reports whether l paints before other among siblings.
// TODO: compare resolved z-indices across partitions instead of treating
// every compositing sibling as below; today any compositing sibling forces
// the surface, which costs extra surfaces but never misses one.
func (l *LayerRenderer) stackedBelow(other *LayerRenderer) bool {
	return true
}

// Attach walks the subtree pre-order and gives every surfaceless layer a
// paint target: an owned surface registered with the nearest ancestor
// surface when the layer establishes a new graphics context, otherwise a
// borrowed reference to the ancestor's. Already-attached layers are left
// untouched, so attaching twice never duplicates registrations.
func (l *LayerRenderer) attach() {
	if l.surface == nil {
		if l.establishesNewGraphicsContext() {
			l.surface = l.newSurface()
			l.ownsSurface = true
			if anc := l.ancestorSurface(); anc != nil {
				anc.AppendChild(l.surface)
			}
			l.logger().Debug("surface acquired", zap.Bool("owned", true))
		} else {
			l.surface = l.ancestorSurface()
			l.ownsSurface = false
		}
	}
	for _, child := range l.childLayers() {
		child.attach()
	}
}

// Detach walks the subtree post-order, releasing owned surfaces (removing
// them from the parent surface and disposing them) and clearing borrowed
// references. Create-on-attach and dispose-on-detach pair exactly.
func (l *LayerRenderer) detach() {
	for _, child := range l.childLayers() {
		child.detach()
	}
	if l.surface == nil {
		return
	}
	if l.ownsSurface {
		if anc := l.ancestorSurface(); anc != nil {
			anc.RemoveChild(l.surface)
		}
		l.surface.Dispose()
		l.logger().Debug("surface released")
	}
	l.surface = nil
	l.ownsSurface = false
}

// invalidateSurfaces rebuilds the surface assignment of the subtree after
// an ownership-affecting structural change.
func (l *LayerRenderer) invalidateSurfaces() {
	l.detach()
	l.attach()
	l.logger().Debug("surface subtree invalidated")
}

// syncSurfaces walks the tree and rebuilds the topmost subtree whose
// ownership drifted from establishesNewGraphicsContext. Rebuilding a
// subtree recomputes every layer below it, so the walk stops there.
func (l *LayerRenderer) syncSurfaces() {
	if l.ownsSurface != l.establishesNewGraphicsContext() {
		l.invalidateSurfaces()
		return
	}
	for _, child := range l.childLayers() {
		child.syncSurfaces()
	}
}

// ancestorSurface returns the surface of the nearest ancestor layer that
// has one.
func (l *LayerRenderer) ancestorSurface() paint.Surface {
	for cur := l.parent; cur != nil; cur = cur.parent {
		if cur.surface != nil {
			return cur.surface
		}
	}
	return nil
}

func (l *LayerRenderer) newSurface() paint.Surface {
	root := l.root()
	if root.factory == nil {
		panic("layout: layer tree has no surface factory")
	}
	return root.factory.NewSurface(int(root.viewportW), int(root.viewportH))
}
