package css

import (
	"strconv"
	"strings"
)

// Style holds the computed properties for one element. Upstream style
// resolution is expected to have already run the cascade; this type only
// stores the winning declarations and exposes typed accessors over them.
type Style struct {
	Properties map[string]string
}

func NewStyle() *Style {
	return &Style{Properties: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.Properties[property]
	return val, ok
}

func (s *Style) Set(property, value string) {
	s.Properties[property] = value
}

func (s *Style) GetLength(property string) (float64, bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return ParseLength(val)
}

// ParseLength parses a length value (e.g., "100px" or "100")
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	val = strings.TrimSuffix(val, "px")
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// BoxEdge represents the four sides of a box (top, right, bottom, left)
type BoxEdge struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// GetMargin returns the margin values for all four sides
func (s *Style) GetMargin() BoxEdge {
	return BoxEdge{
		Top:    s.getLengthOrZero("margin-top"),
		Right:  s.getLengthOrZero("margin-right"),
		Bottom: s.getLengthOrZero("margin-bottom"),
		Left:   s.getLengthOrZero("margin-left"),
	}
}

// GetPadding returns the padding values for all four sides
func (s *Style) GetPadding() BoxEdge {
	return BoxEdge{
		Top:    s.getLengthOrZero("padding-top"),
		Right:  s.getLengthOrZero("padding-right"),
		Bottom: s.getLengthOrZero("padding-bottom"),
		Left:   s.getLengthOrZero("padding-left"),
	}
}

// GetBorderWidth returns the border width for all four sides
func (s *Style) GetBorderWidth() BoxEdge {
	return BoxEdge{
		Top:    s.getLengthOrZero("border-top-width"),
		Right:  s.getLengthOrZero("border-right-width"),
		Bottom: s.getLengthOrZero("border-bottom-width"),
		Left:   s.getLengthOrZero("border-left-width"),
	}
}

// getLengthOrZero returns the length value or 0 if not found
func (s *Style) getLengthOrZero(property string) float64 {
	val, ok := s.GetLength(property)
	if !ok {
		return 0
	}
	return val
}

// Position type constants
type PositionType string

const (
	PositionStatic   PositionType = "static"
	PositionRelative PositionType = "relative"
	PositionAbsolute PositionType = "absolute"
	PositionFixed    PositionType = "fixed"
)

// GetPosition returns the position type (default: static)
func (s *Style) GetPosition() PositionType {
	if pos, ok := s.Get("position"); ok {
		switch pos {
		case "relative":
			return PositionRelative
		case "absolute":
			return PositionAbsolute
		case "fixed":
			return PositionFixed
		}
	}
	return PositionStatic
}

// GetRelativeOffset returns the left/top offsets that apply when the element
// is relatively positioned. Other position schemes get a zero offset; their
// placement is the layout collaborator's job, not a paint-time adjustment.
func (s *Style) GetRelativeOffset() (dx, dy float64) {
	if s.GetPosition() != PositionRelative {
		return 0, 0
	}
	dx, _ = s.GetLength("left")
	dy, _ = s.GetLength("top")
	return dx, dy
}

func ParseInlineStyle(styleAttr string) *Style {
	style := NewStyle()
	declarations := strings.Split(styleAttr, ";")
	for _, decl := range declarations {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		property := strings.TrimSpace(strings.ToLower(parts[0]))
		value := strings.TrimSpace(parts[1])

		expandShorthand(style, property, value)
	}
	return style
}

// expandShorthand expands shorthand CSS properties into individual properties
func expandShorthand(style *Style, property, value string) {
	switch property {
	case "margin":
		expandBoxProperty(style, "margin", value)
	case "padding":
		expandBoxProperty(style, "padding", value)
	case "border":
		expandBorderProperty(style, value)
	default:
		style.Set(property, value)
	}
}

// expandBoxProperty expands margin/padding shorthand
// Supports: "10px" (all), "10px 20px" (vertical horizontal),
//           "10px 20px 30px" (top h bottom), "10px 20px 30px 40px" (t r b l)
func expandBoxProperty(style *Style, prefix, value string) {
	parts := strings.Fields(value)

	switch len(parts) {
	case 1:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-right", parts[0])
		style.Set(prefix+"-bottom", parts[0])
		style.Set(prefix+"-left", parts[0])
	case 2:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-bottom", parts[0])
		style.Set(prefix+"-right", parts[1])
		style.Set(prefix+"-left", parts[1])
	case 3:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-right", parts[1])
		style.Set(prefix+"-left", parts[1])
		style.Set(prefix+"-bottom", parts[2])
	case 4:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-right", parts[1])
		style.Set(prefix+"-bottom", parts[2])
		style.Set(prefix+"-left", parts[3])
	}
}

// expandBorderProperty expands border shorthand
// Format: "1px solid black" or "2px dotted #FF0000"
func expandBorderProperty(style *Style, value string) {
	parts := strings.Fields(value)

	for _, part := range parts {
		if strings.HasSuffix(part, "px") {
			style.Set("border-width", part)
			style.Set("border-top-width", part)
			style.Set("border-right-width", part)
			style.Set("border-bottom-width", part)
			style.Set("border-left-width", part)
		} else if part == "solid" || part == "dotted" || part == "dashed" || part == "double" {
			style.Set("border-style", part)
		} else {
			style.Set("border-color", part)
		}
	}
}

type Color struct {
	R, G, B uint8
	A       float64
}

func ParseColor(colorStr string) (Color, bool) {
	colorStr = strings.ToLower(strings.TrimSpace(colorStr))

	if strings.HasPrefix(colorStr, "#") {
		return parseHexColor(colorStr)
	}

	namedColors := map[string]Color{
		"red":         {255, 0, 0, 1.0},
		"green":       {0, 128, 0, 1.0},
		"blue":        {0, 0, 255, 1.0},
		"yellow":      {255, 255, 0, 1.0},
		"cyan":        {0, 255, 255, 1.0},
		"magenta":     {255, 0, 255, 1.0},
		"white":       {255, 255, 255, 1.0},
		"black":       {0, 0, 0, 1.0},
		"gray":        {128, 128, 128, 1.0},
		"orange":      {255, 165, 0, 1.0},
		"purple":      {128, 0, 128, 1.0},
		"pink":        {255, 192, 203, 1.0},
		"brown":       {165, 42, 42, 1.0},
		"lime":        {0, 255, 0, 1.0},
		"navy":        {0, 0, 128, 1.0},
		"teal":        {0, 128, 128, 1.0},
		"silver":      {192, 192, 192, 1.0},
		"transparent": {0, 0, 0, 0.0},
	}
	color, ok := namedColors[colorStr]
	return color, ok
}

// parseHexColor parses #rgb and #rrggbb notations.
func parseHexColor(colorStr string) (Color, bool) {
	hex := strings.TrimPrefix(colorStr, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 1.0,
	}, true
}

// GetColor returns the text color (default: black)
func (s *Style) GetColor() Color {
	if colorStr, ok := s.Get("color"); ok {
		if color, ok := ParseColor(colorStr); ok {
			return color
		}
	}
	return Color{0, 0, 0, 1.0}
}

// GetOpacity returns the opacity value clamped to [0, 1] (default: 1)
func (s *Style) GetOpacity() float64 {
	val, ok := s.Get("opacity")
	if !ok {
		return 1.0
	}
	opacity, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return 1.0
	}
	if opacity < 0 {
		return 0
	}
	if opacity > 1 {
		return 1
	}
	return opacity
}

// IsTransparent reports whether painting this element requires a
// transparency scope on the surface.
func (s *Style) IsTransparent() bool {
	return s.GetOpacity() < 1.0
}

// DisplayType represents the display property value
type DisplayType string

const (
	DisplayBlock       DisplayType = "block"
	DisplayInline      DisplayType = "inline"
	DisplayInlineBlock DisplayType = "inline-block"
	DisplayNone        DisplayType = "none"
)

// GetDisplay returns the display value (default: block)
func (s *Style) GetDisplay() DisplayType {
	if display, ok := s.Get("display"); ok {
		switch display {
		case "inline":
			return DisplayInline
		case "inline-block":
			return DisplayInlineBlock
		case "none":
			return DisplayNone
		}
	}
	return DisplayBlock
}

// OverflowType represents the overflow property value
type OverflowType string

const (
	OverflowVisible OverflowType = "visible"
	OverflowHidden  OverflowType = "hidden"
	OverflowScroll  OverflowType = "scroll"
	OverflowAuto    OverflowType = "auto"
)

// GetOverflow returns the overflow value (default: visible)
func (s *Style) GetOverflow() OverflowType {
	if overflow, ok := s.Get("overflow"); ok {
		switch overflow {
		case "hidden":
			return OverflowHidden
		case "scroll":
			return OverflowScroll
		case "auto":
			return OverflowAuto
		}
	}
	return OverflowVisible
}

// EstablishesNewFormattingContext reports whether the element starts a new
// block formatting context: non-visible overflow, out-of-flow positioning,
// or atomic inline display.
func (s *Style) EstablishesNewFormattingContext() bool {
	if s.GetOverflow() != OverflowVisible {
		return true
	}
	switch s.GetPosition() {
	case PositionAbsolute, PositionFixed:
		return true
	}
	return s.GetDisplay() == DisplayInlineBlock
}
