package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineBoxFor(style string, height float64) *LineBox {
	owner := box(style, Rect{})
	lb := NewLineBox(owner)
	lb.SetBounds(Rect{Width: 100, Height: height})
	return lb
}

func TestBaselineOffset_Baseline(t *testing.T) {
	lb := lineBoxFor("", 20)
	assert.InDelta(t, 10.0, lb.BaselineOffset(10, 8), 1e-9)
}

func TestBaselineOffset_Middle(t *testing.T) {
	// Centering a 20px box against an 8px x-height pulls the baseline up
	// by 20/2 - 8/2 = 6.
	lb := lineBoxFor("vertical-align: middle", 20)
	assert.InDelta(t, 4.0, lb.BaselineOffset(10, 8), 1e-9)
}

func TestBaselineOffset_NumericLength(t *testing.T) {
	lb := lineBoxFor("vertical-align: 4px", 20)
	assert.InDelta(t, 14.0, lb.BaselineOffset(10, 8), 1e-9)

	lb = lineBoxFor("vertical-align: -3px", 20)
	assert.InDelta(t, 7.0, lb.BaselineOffset(10, 8), 1e-9)
}

func TestBaselineOffset_KeywordsPassBaselineThrough(t *testing.T) {
	for _, va := range []string{"top", "bottom", "baseline"} {
		lb := lineBoxFor("vertical-align: "+va, 20)
		assert.InDelta(t, 10.0, lb.BaselineOffset(10, 8), 1e-9, "vertical-align: %s", va)
	}
}

func TestBaselineOffset_OwnerlessDefaultsToBaseline(t *testing.T) {
	lb := NewLineBox(nil)
	lb.SetBounds(Rect{Height: 20})
	assert.InDelta(t, 10.0, lb.BaselineOffset(10, 8), 1e-9)
}

func TestLineBox_PositionClassification(t *testing.T) {
	cases := []struct {
		style  string
		static bool
		abs    bool
	}{
		{"", true, false},
		{"position: static", true, false},
		{"position: relative", false, false},
		{"position: absolute", false, true},
		{"position: fixed", false, true},
	}
	for _, tc := range cases {
		lb := lineBoxFor(tc.style, 20)
		assert.Equal(t, tc.static, lb.IsStaticPosition(), "style %q", tc.style)
		assert.Equal(t, tc.abs, lb.IsAbsolutelyPositioned(), "style %q", tc.style)
	}

	// Ownerless boxes are conservatively static and in-flow.
	orphan := NewLineBox(nil)
	assert.True(t, orphan.IsStaticPosition())
	assert.False(t, orphan.IsAbsolutelyPositioned())
	assert.False(t, orphan.EstablishesNewFormattingContext())
}

func TestLineBox_FormattingContext(t *testing.T) {
	assert.False(t, lineBoxFor("", 20).EstablishesNewFormattingContext())
	assert.True(t, lineBoxFor("overflow: hidden", 20).EstablishesNewFormattingContext())
	assert.True(t, lineBoxFor("position: absolute", 20).EstablishesNewFormattingContext())
	assert.True(t, lineBoxFor("display: inline-block", 20).EstablishesNewFormattingContext())
}

func TestLineBox_AppendSetsParent(t *testing.T) {
	owner := box("", Rect{})
	line := NewLineBox(owner)
	run := NewTextBox(owner, "hello")
	line.Append(run)

	require.Len(t, line.Children(), 1)
	assert.Same(t, Fragment(line), run.Parent())
	assert.Nil(t, line.Parent())
}

func TestLineBox_Leading(t *testing.T) {
	lb := NewLineBox(nil)
	lb.SetLeading(12.5, 3.5)
	assert.Equal(t, 12.5, lb.LeadedAscent())
	assert.Equal(t, 3.5, lb.LeadedDescent())
}

func TestTextBox_Classification(t *testing.T) {
	owner := box("", Rect{})

	word := NewTextBox(owner, "hello")
	assert.True(t, word.IsText())
	assert.False(t, word.IsSpace())
	assert.Equal(t, "hello", word.Text())

	gap := NewTextBox(owner, "  \t\n")
	assert.True(t, gap.IsSpace())

	empty := NewTextBox(owner, "")
	assert.False(t, empty.IsSpace())

	// The plain base box is never a text run.
	assert.False(t, NewLineBox(owner).IsText())
}

func TestBoxRenderer_LineBoxLifecycle(t *testing.T) {
	r := box("", Rect{Width: 100, Height: 40})
	r.AddLineBox(NewLineBox(r))
	r.AddLineBox(NewLineBox(r))
	require.Len(t, r.LineBoxes(), 2)

	r.ClearLineBoxes()
	assert.Empty(t, r.LineBoxes())
}
