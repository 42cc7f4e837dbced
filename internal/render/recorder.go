package render

import (
	"fmt"
	"image/color"
)

// Op is one recorded drawing call.
type Op struct {
	Kind   string
	Coords []float64
	Color  color.NRGBA
	Text   string
	Points []Point
}

// Recorder is a Surface that records calls instead of drawing. Tests use it
// to assert on what a frame would have rendered.
type Recorder struct {
	Ops   []Op
	layer *Recorder
}

func (r *Recorder) record(kind string, clr color.Color, coords ...float64) {
	r.Ops = append(r.Ops, Op{Kind: kind, Coords: coords, Color: toNRGBA(clr)})
}

func (r *Recorder) Fill(clr color.Color) { r.record("fill", clr) }

func (r *Recorder) FillCircle(cx, cy, rad float64, clr color.Color) {
	r.record("circle", clr, cx, cy, rad)
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64, clr color.Color) {
	r.record("line", clr, x0, y0, x1, y1)
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.record("rect", clr, x, y, w, h)
}

func (r *Recorder) FillPolygon(pts []Point, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "polygon", Color: toNRGBA(clr), Points: append([]Point(nil), pts...)})
}

func (r *Recorder) Label(s string, x, y float64, _ Align, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "label", Coords: []float64{x, y}, Color: toNRGBA(clr), Text: s})
}

func (r *Recorder) Layer() Surface {
	if r.layer == nil {
		r.layer = &Recorder{}
	}
	r.layer.Ops = r.layer.Ops[:0]
	return r.layer
}

// Composite records the layer's ops as a single "composite" entry followed by
// the layer contents, so tests can see both the ordering and the lines.
func (r *Recorder) Composite(layer Surface) {
	l, ok := layer.(*Recorder)
	if !ok {
		panic(fmt.Sprintf("render: cannot composite %T onto Recorder", layer))
	}
	r.Ops = append(r.Ops, Op{Kind: "composite"})
	r.Ops = append(r.Ops, l.Ops...)
}

// Count returns the number of recorded ops of the given kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func toNRGBA(clr color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}
