package css

import (
	"strconv"
	"strings"
)

// Transform is one parsed transform function from the transform property.
type Transform struct {
	Type   string // "translate", "rotate", "scale"
	Values []float64
}

// IsTransformed reports whether the element has an active transform.
func (s *Style) IsTransformed() bool {
	val, ok := s.Get("transform")
	return ok && val != "" && val != "none"
}

// GetTransforms parses the transform property into its function list.
// Supported functions: translate(x, y), rotate(deg), scale(x[, y]).
// Unrecognized functions are skipped.
func (s *Style) GetTransforms() []Transform {
	val, ok := s.Get("transform")
	if !ok || val == "" || val == "none" {
		return nil
	}

	var transforms []Transform
	for {
		open := strings.IndexByte(val, '(')
		if open < 0 {
			break
		}
		close := strings.IndexByte(val, ')')
		if close < open {
			break
		}
		name := strings.TrimSpace(val[:open])
		args := parseTransformArgs(val[open+1 : close])
		val = val[close+1:]

		switch name {
		case "translate":
			for len(args) < 2 {
				args = append(args, 0)
			}
			transforms = append(transforms, Transform{Type: "translate", Values: args[:2]})
		case "rotate":
			if len(args) >= 1 {
				transforms = append(transforms, Transform{Type: "rotate", Values: args[:1]})
			}
		case "scale":
			if len(args) == 1 {
				args = append(args, args[0])
			}
			if len(args) >= 2 {
				transforms = append(transforms, Transform{Type: "scale", Values: args[:2]})
			}
		}
	}
	return transforms
}

// parseTransformArgs splits a comma-separated argument list, stripping the
// px and deg units.
func parseTransformArgs(raw string) []float64 {
	var args []float64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		part = strings.TrimSuffix(part, "px")
		part = strings.TrimSuffix(part, "deg")
		if part == "" {
			continue
		}
		if n, err := strconv.ParseFloat(part, 64); err == nil {
			args = append(args, n)
		}
	}
	return args
}
