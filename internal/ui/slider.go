// Package ui implements the control panel: three drag sliders and the
// trapezoid toggle that shows or hides them.
package ui

import (
	"github.com/MarcBasas/constellations/internal/config"
	"github.com/MarcBasas/constellations/internal/control"
	"github.com/MarcBasas/constellations/internal/input"
	"github.com/MarcBasas/constellations/internal/render"
)

// Rect is an axis-aligned hit region. Contains follows the half-open
// convention: the right and bottom edges are outside.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= r.X && fx < r.X+r.W && fy >= r.Y && fy < r.Y+r.H
}

// Slider maps horizontal drags on its track to a value in Range.
type Slider struct {
	Label string
	Track Rect
	Range control.Range

	value    float64
	dragging bool
}

// NewSlider creates a slider whose track is centred on centerX.
func NewSlider(label string, centerX, y int, rng control.Range, value float64) *Slider {
	return &Slider{
		Label: label,
		Track: Rect{
			X: float64(centerX - config.SliderWidth/2),
			Y: float64(y),
			W: config.SliderWidth,
			H: config.SliderHeight,
		},
		Range: rng,
		value: rng.Clamp(value),
	}
}

// Value is the current slider value within Range.
func (s *Slider) Value() float64 { return s.value }

// Dragging reports whether the slider is in the Dragging state.
func (s *Slider) Dragging() bool { return s.dragging }

// SetValue moves the handle without a drag.
func (s *Slider) SetValue(v float64) {
	s.value = s.Range.Clamp(v)
}

// Handle is the draggable hit region, centred on the value's track position.
func (s *Slider) Handle() Rect {
	x := s.Track.X + s.Range.Fraction(s.value)*s.Track.W - config.SliderHandleWidth/2
	return Rect{X: x, Y: s.Track.Y, W: config.SliderHandleWidth, H: s.Track.H}
}

// HandleEvent advances the Idle/Dragging state machine and reports whether
// the value changed.
func (s *Slider) HandleEvent(ev input.Event) bool {
	switch ev.Kind {
	case input.PointerPressed:
		if s.Handle().Contains(ev.X, ev.Y) {
			s.dragging = true
		}
	case input.PointerReleased:
		s.dragging = false
	case input.PointerMoved:
		if s.dragging {
			return s.project(ev.X)
		}
	}
	return false
}

func (s *Slider) project(x int) bool {
	rel := control.Clamp(float64(x)-s.Track.X, 0, s.Track.W)
	v := s.Range.Min + rel/s.Track.W*(s.Range.Max-s.Range.Min)
	if v == s.value {
		return false
	}
	s.value = v
	return true
}

// Draw renders the label, track and handle.
func (s *Slider) Draw(surf render.Surface) {
	surf.Label(s.Label, s.Track.X-config.SliderLabelGap, s.Track.Y+s.Track.H/2, render.AlignEnd, config.LabelColor)
	surf.FillRect(s.Track.X, s.Track.Y, s.Track.W, s.Track.H, config.TrackColor)
	h := s.Handle()
	surf.FillRect(h.X, h.Y, h.W, h.H, config.ParticleColor)
}
