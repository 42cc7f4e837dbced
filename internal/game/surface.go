package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/MarcBasas/constellations/internal/config"
	"github.com/MarcBasas/constellations/internal/render"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// surface implements render.Surface on an ebiten image.
type surface struct {
	dst   *ebiten.Image
	face  *text.GoTextFace
	layer *surface

	vertices []ebiten.Vertex
	indices  []uint16
}

func newSurface() (*surface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	return &surface{face: &text.GoTextFace{Source: src, Size: config.LabelSize}}, nil
}

// bind points the surface at this frame's screen.
func (s *surface) bind(dst *ebiten.Image) {
	s.dst = dst
}

func (s *surface) Fill(clr color.Color) {
	s.dst.Fill(clr)
}

func (s *surface) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), clr, true)
}

// StrokeLine offsets by half a pixel so 1px lines land on pixel centres.
func (s *surface) StrokeLine(x0, y0, x1, y1 float64, clr color.Color) {
	vector.StrokeLine(s.dst, float32(x0)+0.5, float32(y0)+0.5, float32(x1)+0.5, float32(y1)+0.5, 1, clr, false)
}

func (s *surface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// FillPolygon fills a convex polygon as a triangle fan.
func (s *surface) FillPolygon(pts []render.Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for _, p := range pts {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(c.R) / 0xff,
			ColorG: float32(c.G) / 0xff,
			ColorB: float32(c.B) / 0xff,
			ColorA: float32(c.A) / 0xff,
		})
	}
	for i := 1; i < len(pts)-1; i++ {
		s.indices = append(s.indices, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

func (s *surface) Label(str string, x, y float64, align render.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = textAlign(align)
	op.SecondaryAlign = text.AlignCenter
	text.Draw(s.dst, str, s.face, op)
}

func textAlign(a render.Align) text.Align {
	switch a {
	case render.AlignCenter:
		return text.AlignCenter
	case render.AlignEnd:
		return text.AlignEnd
	}
	return text.AlignStart
}

// Layer returns the scratch layer, reallocated only when the target size
// changes.
func (s *surface) Layer() render.Surface {
	b := s.dst.Bounds()
	if s.layer == nil || s.layer.dst.Bounds().Size() != b.Size() {
		if s.layer != nil {
			s.layer.dst.Deallocate()
		}
		s.layer = &surface{dst: ebiten.NewImage(b.Dx(), b.Dy()), face: s.face}
	}
	s.layer.dst.Clear()
	return s.layer
}

func (s *surface) Composite(layer render.Surface) {
	l, ok := layer.(*surface)
	if !ok {
		panic(fmt.Sprintf("game: cannot composite %T onto an ebiten surface", layer))
	}
	s.dst.DrawImage(l.dst, nil)
}
