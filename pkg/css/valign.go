package css

// VerticalAlignKeyword enumerates the vertical-align keywords the line box
// math distinguishes. Length values use VerticalAlignLength with the offset
// carried alongside.
type VerticalAlignKeyword string

const (
	VerticalAlignBaseline VerticalAlignKeyword = "baseline"
	VerticalAlignTop      VerticalAlignKeyword = "top"
	VerticalAlignMiddle   VerticalAlignKeyword = "middle"
	VerticalAlignBottom   VerticalAlignKeyword = "bottom"
	VerticalAlignLength   VerticalAlignKeyword = "length"
)

// VerticalAlign is the resolved vertical-align value: a keyword, or a
// numeric baseline offset in pixels when Keyword is VerticalAlignLength.
type VerticalAlign struct {
	Keyword VerticalAlignKeyword
	Offset  float64
}

// GetVerticalAlign returns the vertical-align value (default: baseline)
func (s *Style) GetVerticalAlign() VerticalAlign {
	val, ok := s.Get("vertical-align")
	if !ok {
		return VerticalAlign{Keyword: VerticalAlignBaseline}
	}
	switch val {
	case "top":
		return VerticalAlign{Keyword: VerticalAlignTop}
	case "middle":
		return VerticalAlign{Keyword: VerticalAlignMiddle}
	case "bottom":
		return VerticalAlign{Keyword: VerticalAlignBottom}
	case "baseline", "":
		return VerticalAlign{Keyword: VerticalAlignBaseline}
	}
	if offset, ok := ParseLength(val); ok {
		return VerticalAlign{Keyword: VerticalAlignLength, Offset: offset}
	}
	return VerticalAlign{Keyword: VerticalAlignBaseline}
}
