package css

import (
	"fmt"
	"strconv"
)

// ZIndexKind discriminates the resolved forms of the z-index property.
type ZIndexKind int

const (
	// ZIndexAuto is the symbolic auto value; the element paints in its
	// parent's stacking context.
	ZIndexAuto ZIndexKind = iota
	// ZIndexInteger is a resolved integer value.
	ZIndexInteger
	// ZIndexInvalid marks a keyword the resolver failed to reduce
	// (inherit, initial, garbage). Reaching the layer tree with this kind
	// is an upstream defect and fails fast there.
	ZIndexInvalid
)

// ZIndex is the resolved z-index of an element: auto or an integer.
type ZIndex struct {
	Kind  ZIndexKind
	Value int
}

func ZAuto() ZIndex        { return ZIndex{Kind: ZIndexAuto} }
func Z(value int) ZIndex   { return ZIndex{Kind: ZIndexInteger, Value: value} }
func (z ZIndex) IsAuto() bool { return z.Kind == ZIndexAuto }

func (z ZIndex) String() string {
	switch z.Kind {
	case ZIndexAuto:
		return "auto"
	case ZIndexInteger:
		return strconv.Itoa(z.Value)
	}
	return "invalid"
}

// ResolvedZIndex returns the z-index value. A missing declaration and the
// auto keyword both resolve to auto; unreduced keywords come back as
// ZIndexInvalid for the caller's fail-fast path.
func (s *Style) ResolvedZIndex() ZIndex {
	val, ok := s.Get("z-index")
	if !ok || val == "" || val == "auto" {
		return ZAuto()
	}
	if n, err := strconv.Atoi(val); err == nil {
		return Z(n)
	}
	return ZIndex{Kind: ZIndexInvalid}
}

// InvalidStyleValueError reports a resolved style value that should have
// been impossible after the cascade ran. It is used as a panic value: the
// defect lives upstream and is not recoverable at the consuming site.
type InvalidStyleValueError struct {
	Property string
	Value    string
}

func (e *InvalidStyleValueError) Error() string {
	return fmt.Sprintf("css: invalid resolved value %q for property %q", e.Value, e.Property)
}
