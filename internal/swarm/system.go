// Package swarm owns the live particle population and applies the control
// values to it once per frame.
package swarm

import (
	"iter"
	"slices"
	"time"

	"github.com/MarcBasas/constellations/internal/clock"
	"github.com/MarcBasas/constellations/internal/control"
	"github.com/MarcBasas/constellations/internal/particle"
	"github.com/MarcBasas/constellations/internal/proximity"
	"github.com/MarcBasas/constellations/internal/render"
)

// System is the particle population. Particles are kept in insertion order;
// IDs increase monotonically so the front of the slice is always the oldest
// inserted particle.
type System struct {
	width, height int
	rng           particle.Rand
	clock         clock.Clock

	particles []particle.Particle
	nextID    uint64

	speed       float64
	target      int
	maxDistance float64
}

// New creates a system populated to state.Count.
func New(state control.State, rng particle.Rand, clk clock.Clock, width, height int) *System {
	s := &System{
		width:       width,
		height:      height,
		rng:         rng,
		clock:       clk,
		particles:   make([]particle.Particle, 0, int(control.CountRange.Max)),
		speed:       state.Speed,
		target:      state.Count,
		maxDistance: state.MaxDistance,
	}
	s.fill(s.clock.Now())
	return s
}

func (s *System) spawn(now time.Time) {
	s.particles = append(s.particles, particle.Spawn(s.nextID, s.rng, now, s.speed, s.width, s.height))
	s.nextID++
}

func (s *System) fill(now time.Time) {
	for len(s.particles) < s.target {
		s.spawn(now)
	}
}

// Reconcile applies changed control values: a new speed rescales every live
// particle, a new count spawns or drops particles from the front until the
// population matches.
func (s *System) Reconcile(state control.State) {
	if state.Speed != s.speed {
		s.speed = state.Speed
		for i := range s.particles {
			s.particles[i].RescaleSpeed(s.speed)
		}
	}
	if state.Count != s.target {
		s.target = state.Count
		s.fill(s.clock.Now())
		if excess := len(s.particles) - s.target; excess > 0 {
			s.particles = slices.Delete(s.particles, 0, excess)
		}
	}
	s.maxDistance = state.MaxDistance
}

// Tick advances every particle, removes the expired and out-of-bounds ones,
// and spawns at most one replacement.
func (s *System) Tick() {
	now := s.clock.Now()
	live := s.particles[:0]
	for i := range s.particles {
		p := &s.particles[i]
		p.Advance()
		if p.Expired(now) || p.OutOfBounds(s.width, s.height) {
			continue
		}
		live = append(live, *p)
	}
	clear(s.particles[len(live):])
	s.particles = live
	if len(s.particles) < s.target {
		s.spawn(now)
	}
}

// Edges returns the proximity graph of the current population.
func (s *System) Edges() iter.Seq[proximity.Edge] {
	return proximity.Edges(s.particles, s.maxDistance)
}

// Render draws the edge layer first and the particles on top, returning the
// number of edges.
func (s *System) Render(surf render.Surface) int {
	edges := proximity.Render(surf, s.Edges())
	now := s.clock.Now()
	for i := range s.particles {
		s.particles[i].Draw(surf, now)
	}
	return edges
}

// Particles returns the live population in insertion order. The slice is
// only valid until the next Reconcile or Tick.
func (s *System) Particles() []particle.Particle { return s.particles }

// Len is the live particle count.
func (s *System) Len() int { return len(s.particles) }

// Target is the population Tick replenishes toward.
func (s *System) Target() int { return s.target }

// Speed is the velocity magnitude applied at the last Reconcile.
func (s *System) Speed() float64 { return s.speed }

// MaxDistance is the current edge threshold.
func (s *System) MaxDistance() float64 { return s.maxDistance }
