package ui

import (
	"github.com/MarcBasas/constellations/internal/config"
	"github.com/MarcBasas/constellations/internal/render"
)

// panelTop is the y coordinate of the panel's top edge, or the bottom of the
// window when the panel is hidden.
func panelTop(visible bool) float64 {
	if visible {
		return config.WindowHeight - config.PanelHeight
	}
	return config.WindowHeight
}

// ToggleRect is the trapezoid's bounding box, resting on the panel top.
func ToggleRect(visible bool) Rect {
	return Rect{
		X: config.WindowWidth/2 - config.ToggleBaseLarge/2,
		Y: panelTop(visible) - config.ToggleHeight,
		W: config.ToggleBaseLarge,
		H: config.ToggleHeight,
	}
}

// togglePolygon returns the trapezoid, narrow side up.
func togglePolygon(visible bool) []render.Point {
	cx := float64(config.WindowWidth / 2)
	y := panelTop(visible)
	return []render.Point{
		{X: cx + config.ToggleBaseSmall/2, Y: y - config.ToggleHeight},
		{X: cx - config.ToggleBaseSmall/2, Y: y - config.ToggleHeight},
		{X: cx - config.ToggleBaseLarge/2, Y: y},
		{X: cx + config.ToggleBaseLarge/2, Y: y},
	}
}
