// Package render declares the drawing capabilities the simulation needs from
// its host. The ebiten implementation lives in internal/game.
package render

import "image/color"

// Point is a vertex in screen space.
type Point struct {
	X, Y float64
}

// Align controls horizontal label placement relative to the anchor.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Surface is a drawing target. Colors carry their own alpha; callers pass
// non-premultiplied colors (color.NRGBA) when they want translucency.
type Surface interface {
	Fill(clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	// StrokeLine draws a single-pixel line.
	StrokeLine(x0, y0, x1, y1 float64, clr color.Color)
	FillRect(x, y, w, h float64, clr color.Color)
	FillPolygon(pts []Point, clr color.Color)
	// Label draws text vertically centred on y.
	Label(s string, x, y float64, align Align, clr color.Color)

	// Layer returns a cleared transparent scratch surface of the same size.
	// The same layer is reused across frames.
	Layer() Surface
	// Composite blends a layer obtained from Layer onto this surface.
	Composite(layer Surface)
}
