package config

import (
	"image/color"
	"time"
)

const (
	WindowWidth  = 1024
	WindowHeight = 576
	WindowTitle  = "Constellations"

	// TPS is the fixed simulation rate; one tick moves every particle by its velocity once.
	TPS = 60

	// Panel takes the bottom 10% of the window.
	PanelHeight = WindowHeight / 10

	// Particle parameters
	ParticleRadius = 3
	MinLifetime    = 4 * time.Second
	MaxLifetime    = 10 * time.Second
	FadeIn         = 1 * time.Second
	FadeOut        = 1 * time.Second

	// Edge opacity at distance 0 (0-255)
	LineOpacity = 50

	// Control bounds and defaults
	SpeedMin        = 0.5
	SpeedMax        = 10.0
	SpeedDefault    = 0.5
	CountMin        = 10
	CountMax        = 100
	CountDefault    = 40
	DistanceMin     = 50
	DistanceMax     = 300
	DistanceDefault = 100

	// Slider dimensions
	SliderWidth       = 150
	SliderHeight      = 20
	SliderHandleWidth = 10
	SliderLabelGap    = 10
	SliderY           = WindowHeight - PanelHeight + PanelHeight/2 - SliderHeight/2
	LabelSize         = 16

	// Trapezoid toggle dimensions
	ToggleBaseLarge = 40
	ToggleBaseSmall = 20
	ToggleHeight    = 10

	// Drone defaults
	DroneSampleRate = 44100
	DroneFrequency  = 110.0
	DroneSmoothing  = 0.0005
	DroneMaxGain    = 0.25
)

// Slider centres at 22%, 53% and 86% of the window width.
const (
	SpeedSliderX    = WindowWidth * 22 / 100
	CountSliderX    = WindowWidth * 53 / 100
	DistanceSliderX = WindowWidth * 86 / 100
)

// Colors
var (
	Background    = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	PanelColor    = color.RGBA{R: 45, G: 45, B: 45, A: 255}
	TrackColor    = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	ParticleColor = color.RGBA{R: 245, G: 245, B: 220, A: 255}
	ToggleColor   = ParticleColor
	LabelColor    = ParticleColor
)
