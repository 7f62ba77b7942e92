package paint

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Recorder is a Surface that records its operation stream instead of
// drawing. Tests assert on the recorded ops to verify traversal order and
// resource pairing without rasterizing anything.
type Recorder struct {
	// Name labels the surface in recorded ops when set.
	Name string

	ops      []string
	children []Surface
	disposed bool
}

// NewRecorder creates a named recording surface.
func NewRecorder(name string) *Recorder {
	return &Recorder{Name: name}
}

// Ops returns the recorded operations in call order.
func (r *Recorder) Ops() []string {
	return r.ops
}

// Reset discards the recorded operations, keeping children.
func (r *Recorder) Reset() {
	r.ops = nil
}

// Record appends an externally produced event, letting fake renderers log
// their paint calls into the same stream as the surface ops.
func (r *Recorder) Record(op string) {
	r.ops = append(r.ops, op)
}

// Disposed reports whether Dispose has been called.
func (r *Recorder) Disposed() bool {
	return r.disposed
}

func (r *Recorder) Resize(w, h float64) {
	r.ops = append(r.ops, fmt.Sprintf("resize(%g,%g)", w, h))
}

func (r *Recorder) Clear() {
	r.ops = append(r.ops, "clear")
}

func (r *Recorder) BeginTransparency(opacity float64) {
	r.ops = append(r.ops, fmt.Sprintf("begin-transparency(%g)", opacity))
}

func (r *Recorder) EndTransparency() {
	r.ops = append(r.ops, "end-transparency")
}

func (r *Recorder) Transform(m gg.Matrix) {
	r.ops = append(r.ops, fmt.Sprintf("transform(%g,%g,%g,%g,%g,%g)", m.A, m.B, m.C, m.D, m.E, m.F))
}

func (r *Recorder) AppendChild(child Surface) {
	r.ops = append(r.ops, "append-child "+surfaceName(child))
	r.children = append(r.children, child)
}

func (r *Recorder) RemoveChild(child Surface) {
	r.ops = append(r.ops, "remove-child "+surfaceName(child))
	r.children = removeSurface(r.children, child)
}

func (r *Recorder) Children() []Surface {
	return r.children
}

func (r *Recorder) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.ops = append(r.ops, "dispose")
}

func surfaceName(s Surface) string {
	if r, ok := s.(*Recorder); ok && r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("%p", s)
}

// RecorderFactory creates sequentially named Recorder surfaces and keeps
// every surface it handed out for later inspection.
type RecorderFactory struct {
	Created []*Recorder
}

func (f *RecorderFactory) NewSurface(w, h int) Surface {
	r := NewRecorder(fmt.Sprintf("surface-%d", len(f.Created)))
	f.Created = append(f.Created, r)
	return r
}
