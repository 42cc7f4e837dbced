package ui

import (
	"math"
	"testing"

	"github.com/MarcBasas/constellations/internal/config"
	"github.com/MarcBasas/constellations/internal/control"
	"github.com/MarcBasas/constellations/internal/input"
	"github.com/MarcBasas/constellations/internal/render"
)

func handleCenter(s *Slider) (int, int) {
	h := s.Handle()
	return int(h.X + h.W/2), int(h.Y + h.H/2)
}

func TestSliderStateMachine(t *testing.T) {
	s := NewSlider("DISTANCE", 500, 100, control.DistanceRange, 100)

	// Press outside the handle stays idle.
	s.HandleEvent(input.Pressed(int(s.Track.X+s.Track.W-1), 110))
	if s.Dragging() {
		t.Fatal("Expected press outside the handle to leave slider idle")
	}
	if s.HandleEvent(input.Moved(0, 110)) {
		t.Error("Expected moves while idle to be ignored")
	}

	x, y := handleCenter(s)
	s.HandleEvent(input.Pressed(x, y))
	if !s.Dragging() {
		t.Fatal("Expected press on the handle to start dragging")
	}

	mid := int(s.Track.X + s.Track.W/2)
	if !s.HandleEvent(input.Moved(mid, 0)) {
		t.Error("Expected move while dragging to change the value")
	}
	if got := s.Value(); math.Abs(got-175) > 1e-9 {
		t.Errorf("Expected 175 at track midpoint, got %v", got)
	}

	// Release anywhere ends the drag.
	s.HandleEvent(input.Released(0, 0))
	if s.Dragging() {
		t.Error("Expected release to end the drag")
	}
	if s.HandleEvent(input.Moved(int(s.Track.X), 0)) {
		t.Error("Expected moves after release to be ignored")
	}
}

func TestSliderProjectionClamps(t *testing.T) {
	s := NewSlider("SPEED", 300, 100, control.SpeedRange, control.SpeedRange.Min)
	x, y := handleCenter(s)
	s.HandleEvent(input.Pressed(x, y))

	s.HandleEvent(input.Moved(-1000, y))
	if s.Value() != control.SpeedRange.Min {
		t.Errorf("Expected %v left of the track, got %v", control.SpeedRange.Min, s.Value())
	}
	s.HandleEvent(input.Moved(5000, y))
	if s.Value() != control.SpeedRange.Max {
		t.Errorf("Expected %v right of the track, got %v", control.SpeedRange.Max, s.Value())
	}
}

func TestSliderHandleFollowsValue(t *testing.T) {
	s := NewSlider("POINTS", 500, 100, control.CountRange, 10)
	if got := s.Handle().X; got != s.Track.X-config.SliderHandleWidth/2 {
		t.Errorf("Expected handle at track start, got %v", got)
	}
	s.SetValue(100)
	if got := s.Handle().X; got != s.Track.X+s.Track.W-config.SliderHandleWidth/2 {
		t.Errorf("Expected handle at track end, got %v", got)
	}
	s.SetValue(1000)
	if s.Value() != 100 {
		t.Errorf("Expected SetValue to clamp to 100, got %v", s.Value())
	}
}

func TestToggleRect(t *testing.T) {
	visible := ToggleRect(true)
	if visible.Y != config.WindowHeight-config.PanelHeight-config.ToggleHeight {
		t.Errorf("Unexpected visible toggle y: %v", visible.Y)
	}
	hidden := ToggleRect(false)
	if hidden.Y != config.WindowHeight-config.ToggleHeight {
		t.Errorf("Unexpected hidden toggle y: %v", hidden.Y)
	}
	if !hidden.Contains(config.WindowWidth/2, config.WindowHeight-5) {
		t.Error("Expected hidden toggle to contain its centre")
	}
}

func TestPanelToggle(t *testing.T) {
	state := control.Defaults()
	p := NewPanel(state)

	r := ToggleRect(true)
	cx, cy := int(r.X+r.W/2), int(r.Y+r.H/2)
	p.HandleEvent(input.Pressed(cx, cy), &state)
	if state.PanelVisible {
		t.Fatal("Expected press on the toggle to hide the panel")
	}

	// Sliders are inert while hidden.
	x, y := handleCenter(p.Speed)
	p.HandleEvent(input.Pressed(x, y), &state)
	p.HandleEvent(input.Moved(x+100, y), &state)
	if state.Speed != control.SpeedRange.Default || p.Dragging() {
		t.Errorf("Expected hidden panel to ignore slider input, speed=%v dragging=%v", state.Speed, p.Dragging())
	}

	r = ToggleRect(false)
	p.HandleEvent(input.Pressed(int(r.X+r.W/2), int(r.Y+r.H/2)), &state)
	if !state.PanelVisible {
		t.Error("Expected second press to show the panel")
	}
}

func TestPanelDragUpdatesState(t *testing.T) {
	state := control.Defaults()
	p := NewPanel(state)

	x, y := handleCenter(p.Count)
	p.HandleEvent(input.Pressed(x, y), &state)
	p.HandleEvent(input.Moved(int(p.Count.Track.X+p.Count.Track.W), y), &state)
	p.HandleEvent(input.Released(0, 0), &state)

	if state.Count != 100 {
		t.Errorf("Expected count 100 after dragging to the end, got %d", state.Count)
	}
	if state.Speed != control.SpeedRange.Default || state.MaxDistance != control.DistanceRange.Default {
		t.Errorf("Expected other controls untouched, got %+v", state)
	}
}

func TestPanelDraw(t *testing.T) {
	state := control.Defaults()
	p := NewPanel(state)

	var rec render.Recorder
	p.Draw(&rec, state)
	if got := rec.Count("label"); got != 3 {
		t.Errorf("Expected 3 labels, got %d", got)
	}
	if got := rec.Count("rect"); got != 7 {
		t.Errorf("Expected panel + 3 tracks + 3 handles, got %d rects", got)
	}
	if got := rec.Count("polygon"); got != 1 {
		t.Errorf("Expected 1 toggle polygon, got %d", got)
	}

	rec.Reset()
	state.PanelVisible = false
	p.Draw(&rec, state)
	if len(rec.Ops) != 1 || rec.Ops[0].Kind != "polygon" {
		t.Errorf("Expected only the toggle when hidden, got %+v", rec.Ops)
	}
}
