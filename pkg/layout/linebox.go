package layout

import (
	"strings"

	"kestrel/pkg/css"
)

// Fragment is one inline-layout geometry container: a line box or one of
// its specialized variants. The classification queries are overridable per
// variant; the LineBox base gives the conservative answers.
type Fragment interface {
	Bounds() Rect
	SetBounds(b Rect)
	LeadedAscent() float64
	LeadedDescent() float64
	BaselineOffset(parentBaselineOffset, parentXHeight float64) float64

	IsText() bool
	IsSpace() bool
	IsStaticPosition() bool
	IsAbsolutelyPositioned() bool
	EstablishesNewFormattingContext() bool

	Parent() Fragment
	Children() []Fragment

	setParent(p Fragment)
}

// LineBox is the base inline-layout box: geometry, margins and padding, and
// the baseline bookkeeping for one line's worth of content. Bounds are in
// the coordinate space of the containing block that established the inline
// formatting context. The owning renderer is referenced, not owned; line
// boxes are discarded and rebuilt whenever that renderer's layout is
// invalidated.
type LineBox struct {
	bounds        Rect
	leadedAscent  float64
	leadedDescent float64
	margin        css.BoxEdge
	padding       css.BoxEdge

	owner    Renderer
	parent   Fragment
	children []Fragment
}

// NewLineBox creates a line box owned by the given element renderer.
func NewLineBox(owner Renderer) *LineBox {
	return &LineBox{owner: owner}
}

func (b *LineBox) Bounds() Rect      { return b.bounds }
func (b *LineBox) SetBounds(r Rect)  { b.bounds = r }
func (b *LineBox) Owner() Renderer   { return b.owner }
func (b *LineBox) Parent() Fragment  { return b.parent }
func (b *LineBox) Children() []Fragment { return b.children }

func (b *LineBox) setParent(p Fragment) { b.parent = p }

// Append links a child fragment contributed by the same inline formatting
// context.
func (b *LineBox) Append(child Fragment) {
	child.setParent(b)
	b.children = append(b.children, child)
}

func (b *LineBox) LeadedAscent() float64  { return b.leadedAscent }
func (b *LineBox) LeadedDescent() float64 { return b.leadedDescent }

// SetLeading records the font ascent and descent adjusted for line-height
// leading.
func (b *LineBox) SetLeading(ascent, descent float64) {
	b.leadedAscent = ascent
	b.leadedDescent = descent
}

func (b *LineBox) Margin() css.BoxEdge      { return b.margin }
func (b *LineBox) SetMargin(m css.BoxEdge)  { b.margin = m }
func (b *LineBox) Padding() css.BoxEdge     { return b.padding }
func (b *LineBox) SetPadding(p css.BoxEdge) { b.padding = p }

// BaselineOffset computes this box's baseline position relative to its
// parent's. The starting point is the parent baseline shifted by any
// numeric vertical-align offset; the middle keyword then centers the box
// against the parent's x-height.
func (b *LineBox) BaselineOffset(parentBaselineOffset, parentXHeight float64) float64 {
	offset := parentBaselineOffset
	va := b.verticalAlign()
	if va.Keyword == css.VerticalAlignLength {
		offset += va.Offset
	}
	if va.Keyword == css.VerticalAlignMiddle {
		offset -= b.bounds.Height/2 - parentXHeight/2
	}
	return offset
}

func (b *LineBox) verticalAlign() css.VerticalAlign {
	if b.owner == nil {
		return css.VerticalAlign{Keyword: css.VerticalAlignBaseline}
	}
	return b.owner.Style().GetVerticalAlign()
}

func (b *LineBox) IsText() bool  { return false }
func (b *LineBox) IsSpace() bool { return false }

func (b *LineBox) IsStaticPosition() bool {
	if b.owner == nil {
		return true
	}
	return b.owner.Style().GetPosition() == css.PositionStatic
}

func (b *LineBox) IsAbsolutelyPositioned() bool {
	if b.owner == nil {
		return false
	}
	switch b.owner.Style().GetPosition() {
	case css.PositionAbsolute, css.PositionFixed:
		return true
	}
	return false
}

func (b *LineBox) EstablishesNewFormattingContext() bool {
	if b.owner == nil {
		return false
	}
	return b.owner.Style().EstablishesNewFormattingContext()
}

// TextBox is the line box variant for a run of text.
type TextBox struct {
	LineBox
	text string
}

// NewTextBox creates a text-run box owned by the given renderer.
func NewTextBox(owner Renderer, text string) *TextBox {
	return &TextBox{LineBox: *NewLineBox(owner), text: text}
}

func (t *TextBox) Text() string { return t.text }

func (t *TextBox) IsText() bool { return true }

// IsSpace reports whether the run is nothing but collapsible whitespace.
func (t *TextBox) IsSpace() bool {
	return t.text != "" && strings.TrimSpace(t.text) == ""
}
