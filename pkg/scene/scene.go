// Package scene loads a JSON scene description and builds the renderer
// tree for it. It stands in for the style-resolution and flow-layout
// collaborators: node geometry arrives pre-computed in each node's style,
// the way a layout engine would hand it to the compositor.
package scene

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"kestrel/pkg/css"
	"kestrel/pkg/layout"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is a parsed scene file.
type Document struct {
	Viewport Viewport `json:"viewport"`
	Root     *Node    `json:"root"`
}

type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Node describes one renderer. Geometry comes from the style's
// left/top/width/height declarations, in global coordinates.
type Node struct {
	Name       string  `json:"name"`
	Kind       string  `json:"kind"` // "box" (default), "video", "scrollbar"
	Style      string  `json:"style"`
	ScrollLeft float64 `json:"scrollLeft"`
	ScrollTop  float64 `json:"scrollTop"`
	Children   []*Node `json:"children"`
}

// Load reads and parses a scene file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scene document and validates its shape.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("scene has no root node")
	}
	if doc.Viewport.Width <= 0 {
		doc.Viewport.Width = 800
	}
	if doc.Viewport.Height <= 0 {
		doc.Viewport.Height = 600
	}
	return &doc, nil
}

// container is any renderer the builder can append children to.
type container interface {
	layout.Renderer
	Append(child layout.Renderer)
}

// Build constructs the renderer tree for the document.
func Build(doc *Document) (layout.Renderer, error) {
	return buildNode(doc.Root)
}

func buildNode(n *Node) (container, error) {
	style := css.ParseInlineStyle(n.Style)
	bounds := nodeBounds(style)

	var r container
	switch n.Kind {
	case "", "box":
		r = layout.NewBoxRenderer(style, bounds)
	case "video":
		r = layout.NewVideoRenderer(style, bounds)
	case "scrollbar":
		r = layout.NewScrollBarRenderer(style, bounds)
	default:
		return nil, fmt.Errorf("node %q: unknown kind %q", n.Name, n.Kind)
	}

	if n.ScrollLeft != 0 || n.ScrollTop != 0 {
		type scrollable interface {
			SetScrollOffsets(left, top float64)
		}
		r.(scrollable).SetScrollOffsets(n.ScrollLeft, n.ScrollTop)
	}

	for _, childNode := range n.Children {
		child, err := buildNode(childNode)
		if err != nil {
			return nil, err
		}
		r.Append(child)
	}
	return r, nil
}

// nodeBounds reads the node's border box from its style. Missing
// declarations default to zero, matching an unlaid-out box.
func nodeBounds(style *css.Style) layout.Rect {
	get := func(prop string) float64 {
		v, _ := style.GetLength(prop)
		return v
	}
	return layout.Rect{
		X:      get("left"),
		Y:      get("top"),
		Width:  get("width"),
		Height: get("height"),
	}
}
