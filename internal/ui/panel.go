package ui

import (
	"github.com/MarcBasas/constellations/internal/config"
	"github.com/MarcBasas/constellations/internal/control"
	"github.com/MarcBasas/constellations/internal/input"
	"github.com/MarcBasas/constellations/internal/render"
)

// Panel routes pointer events to the toggle and sliders and writes the
// resulting values into a control.State.
type Panel struct {
	Speed    *Slider
	Count    *Slider
	Distance *Slider
}

// NewPanel builds the three sliders positioned from config, starting at the
// values in state.
func NewPanel(state control.State) *Panel {
	return &Panel{
		Speed:    NewSlider("SPEED", config.SpeedSliderX, config.SliderY, control.SpeedRange, state.Speed),
		Count:    NewSlider("POINTS", config.CountSliderX, config.SliderY, control.CountRange, float64(state.Count)),
		Distance: NewSlider("DISTANCE", config.DistanceSliderX, config.SliderY, control.DistanceRange, state.MaxDistance),
	}
}

func (p *Panel) sliders() [3]*Slider {
	return [3]*Slider{p.Speed, p.Count, p.Distance}
}

// HandleEvent applies one pointer event. A press on the toggle flips the
// panel first; sliders only see events while the panel is visible.
func (p *Panel) HandleEvent(ev input.Event, state *control.State) {
	if ev.Kind == input.PointerPressed && ToggleRect(state.PanelVisible).Contains(ev.X, ev.Y) {
		state.TogglePanel()
	}
	if !state.PanelVisible {
		return
	}
	if p.Speed.HandleEvent(ev) {
		state.SetSpeed(p.Speed.Value())
	}
	if p.Count.HandleEvent(ev) {
		state.SetCount(p.Count.Value())
	}
	if p.Distance.HandleEvent(ev) {
		state.SetMaxDistance(p.Distance.Value())
	}
}

// Dragging reports whether any slider is mid-drag.
func (p *Panel) Dragging() bool {
	for _, s := range p.sliders() {
		if s.Dragging() {
			return true
		}
	}
	return false
}

// Draw renders the panel (when visible) and the toggle.
func (p *Panel) Draw(surf render.Surface, state control.State) {
	if state.PanelVisible {
		surf.FillRect(0, panelTop(true), config.WindowWidth, config.PanelHeight, config.PanelColor)
		for _, s := range p.sliders() {
			s.Draw(surf)
		}
	}
	surf.FillPolygon(togglePolygon(state.PanelVisible), config.ToggleColor)
}
