// Package control holds the tunable simulation parameters and their bounds.
package control

import "github.com/MarcBasas/constellations/internal/config"

// Range is the bounds contract of one numeric parameter.
type Range struct {
	Min, Max, Default float64
}

// Clamp returns v limited to [r.Min, r.Max].
func (r Range) Clamp(v float64) float64 {
	return Clamp(v, r.Min, r.Max)
}

// Fraction maps v within the range to [0, 1].
func (r Range) Fraction(v float64) float64 {
	if r.Max == r.Min {
		return 0
	}
	return (r.Clamp(v) - r.Min) / (r.Max - r.Min)
}

// Lerp maps f in [0, 1] back onto the range.
func (r Range) Lerp(f float64) float64 {
	return r.Clamp(r.Min + f*(r.Max-r.Min))
}

// Bounds and defaults of the three tunable parameters.
var (
	SpeedRange    = Range{Min: config.SpeedMin, Max: config.SpeedMax, Default: config.SpeedDefault}
	CountRange    = Range{Min: config.CountMin, Max: config.CountMax, Default: config.CountDefault}
	DistanceRange = Range{Min: config.DistanceMin, Max: config.DistanceMax, Default: config.DistanceDefault}
)

// State is the current value of every control. Setters clamp out-of-range
// input rather than rejecting it.
type State struct {
	Speed        float64
	Count        int
	MaxDistance  float64
	PanelVisible bool
}

// Defaults returns the start-of-session control values.
func Defaults() State {
	return State{
		Speed:        SpeedRange.Default,
		Count:        int(CountRange.Default),
		MaxDistance:  DistanceRange.Default,
		PanelVisible: true,
	}
}

// SetSpeed stores v clamped to SpeedRange.
func (s *State) SetSpeed(v float64) {
	s.Speed = SpeedRange.Clamp(v)
}

// SetCount truncates v toward zero after clamping.
func (s *State) SetCount(v float64) {
	s.Count = int(CountRange.Clamp(v))
}

// SetMaxDistance stores v clamped to DistanceRange.
func (s *State) SetMaxDistance(v float64) {
	s.MaxDistance = DistanceRange.Clamp(v)
}

// TogglePanel flips panel visibility.
func (s *State) TogglePanel() {
	s.PanelVisible = !s.PanelVisible
}

// Clamp constrains v to lie within the inclusive [lo, hi] range.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
