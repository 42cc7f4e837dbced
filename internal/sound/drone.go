// Package sound plays an optional ambient tone that follows the
// constellation: louder as more particles connect, higher as they speed up.
package sound

import (
	"math"
	"sync"

	"github.com/faiface/beep"

	"github.com/MarcBasas/constellations/internal/config"
	"github.com/MarcBasas/constellations/internal/control"
)

// Drone is a sine beep.Streamer whose gain glides toward a target level.
// SetLevel and SetPitch are called from the game goroutine while Stream runs
// on the speaker goroutine.
type Drone struct {
	sampleRate beep.SampleRate

	mu     sync.Mutex
	target float64
	gain   float64
	pitch  float64
	phase  float64
}

func NewDrone(sr beep.SampleRate, pitch float64) *Drone {
	return &Drone{sampleRate: sr, pitch: pitch}
}

// SetLevel sets the target loudness in [0, 1].
func (d *Drone) SetLevel(level float64) {
	d.mu.Lock()
	d.target = clamp01(level) * config.DroneMaxGain
	d.mu.Unlock()
}

func (d *Drone) SetPitch(hz float64) {
	if hz <= 0 {
		return
	}
	d.mu.Lock()
	d.pitch = hz
	d.mu.Unlock()
}

// Gain returns the current smoothed gain.
func (d *Drone) Gain() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gain
}

func (d *Drone) Stream(samples [][2]float64) (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	step := 2 * math.Pi * d.pitch / float64(d.sampleRate)
	for i := range samples {
		d.gain += (d.target - d.gain) * config.DroneSmoothing
		v := math.Sin(d.phase) * d.gain
		samples[i][0] = v
		samples[i][1] = v
		d.phase += step
		if d.phase >= 2*math.Pi {
			d.phase -= 2 * math.Pi
		}
	}
	return len(samples), true
}

func (d *Drone) Err() error { return nil }

// DensityLevel is the fraction of possible particle pairs that are connected.
func DensityLevel(edges, particles int) float64 {
	if particles < 2 {
		return 0
	}
	pairs := particles * (particles - 1) / 2
	return clamp01(float64(edges) / float64(pairs))
}

// PitchFor maps speed in [min, max] to one octave above base.
func PitchFor(base, speed, min, max float64) float64 {
	if max <= min {
		return base
	}
	return base * (1 + clamp01((speed-min)/(max-min)))
}

func clamp01(v float64) float64 {
	return control.Clamp(v, 0, 1)
}
