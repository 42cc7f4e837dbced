// Package frame runs one iteration of the simulation at a time: input,
// reconciliation, motion and drawing. It is host-agnostic; internal/game
// drives it from ebiten's Update and Draw.
package frame

import (
	"github.com/MarcBasas/constellations/internal/clock"
	"github.com/MarcBasas/constellations/internal/config"
	"github.com/MarcBasas/constellations/internal/control"
	"github.com/MarcBasas/constellations/internal/input"
	"github.com/MarcBasas/constellations/internal/particle"
	"github.com/MarcBasas/constellations/internal/render"
	"github.com/MarcBasas/constellations/internal/swarm"
	"github.com/MarcBasas/constellations/internal/ui"
)

// State is the loop's lifecycle.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Stats summarises the last completed frame.
type Stats struct {
	Frames    uint64
	Particles int
	Edges     int
}

// Loop owns the control state, the panel and the particle system.
type Loop struct {
	controls control.State
	panel    *ui.Panel
	system   *swarm.System

	state  State
	frames uint64
	edges  int
}

// New creates a running loop with default controls.
func New(rng particle.Rand, clk clock.Clock) *Loop {
	return NewWithControls(control.Defaults(), rng, clk)
}

// NewWithControls creates a running loop starting from the given controls.
func NewWithControls(controls control.State, rng particle.Rand, clk clock.Clock) *Loop {
	return &Loop{
		controls: controls,
		panel:    ui.NewPanel(controls),
		system:   swarm.New(controls, rng, clk, config.WindowWidth, config.WindowHeight),
	}
}

// Step consumes this frame's events in order and advances the simulation.
// It reports whether the loop is still running; a stopped loop does nothing.
func (l *Loop) Step(events []input.Event) bool {
	if l.state == Stopped {
		return false
	}
	for _, ev := range events {
		if ev.Kind == input.Quit {
			l.state = Stopped
			return false
		}
		l.panel.HandleEvent(ev, &l.controls)
	}
	l.system.Reconcile(l.controls)
	l.system.Tick()
	l.frames++
	return true
}

// Draw renders background, edges, particles and the control panel.
func (l *Loop) Draw(s render.Surface) {
	s.Fill(config.Background)
	l.edges = l.system.Render(s)
	l.panel.Draw(s, l.controls)
}

// State reports whether the loop is running or stopped.
func (l *Loop) State() State { return l.state }

// Controls returns a copy of the current control values.
func (l *Loop) Controls() control.State { return l.controls }

func (l *Loop) System() *swarm.System { return l.system }

// Stats returns frame, particle and edge counts. Edges reflects the last Draw.
func (l *Loop) Stats() Stats {
	return Stats{Frames: l.frames, Particles: l.system.Len(), Edges: l.edges}
}
