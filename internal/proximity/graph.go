// Package proximity computes the per-frame connection graph between nearby
// particles.
package proximity

import (
	"image/color"
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/MarcBasas/constellations/internal/config"
	"github.com/MarcBasas/constellations/internal/particle"
	"github.com/MarcBasas/constellations/internal/render"
)

// Edge connects two particle positions with a distance-weighted alpha.
type Edge struct {
	A, B  r2.Vec
	Alpha uint8
}

// EdgeAlpha returns the line alpha for two points at distance d, and false
// when d is not strictly below maxDistance.
func EdgeAlpha(d, maxDistance float64) (uint8, bool) {
	if d >= maxDistance || maxDistance <= 0 {
		return 0, false
	}
	return uint8(math.Round(config.LineOpacity * (1 - d/maxDistance))), true
}

// Edges yields one edge per unordered pair closer than maxDistance. The
// sequence is lazy and cost is quadratic in len(particles).
func Edges(particles []particle.Particle, maxDistance float64) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for i := range particles {
			a := particles[i].Pos
			for j := i + 1; j < len(particles); j++ {
				b := particles[j].Pos
				alpha, ok := EdgeAlpha(r2.Norm(r2.Sub(a, b)), maxDistance)
				if !ok {
					continue
				}
				if !yield(Edge{A: a, B: b, Alpha: alpha}) {
					return
				}
			}
		}
	}
}

// Render draws all edges onto the surface's scratch layer and composites it
// once, so overlapping lines do not compound alpha on the target. It returns
// the number of edges drawn.
func Render(s render.Surface, edges iter.Seq[Edge]) int {
	layer := s.Layer()
	n := 0
	for e := range edges {
		n++
		clr := color.NRGBA{
			R: config.ParticleColor.R,
			G: config.ParticleColor.G,
			B: config.ParticleColor.B,
			A: e.Alpha,
		}
		layer.StrokeLine(math.Round(e.A.X), math.Round(e.A.Y), math.Round(e.B.X), math.Round(e.B.Y), clr)
	}
	s.Composite(layer)
	return n
}
