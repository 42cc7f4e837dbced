package sound

import (
	"math"
	"testing"

	"github.com/faiface/beep"

	"github.com/MarcBasas/constellations/internal/config"
)

func TestDroneSilentByDefault(t *testing.T) {
	d := NewDrone(beep.SampleRate(44100), 110)
	buf := make([][2]float64, 512)
	n, ok := d.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Expected full buffer, got n=%d ok=%v", n, ok)
	}
	for i, s := range buf {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Expected silence at sample %d, got %v", i, s)
		}
	}
}

func TestDroneGlidesToLevel(t *testing.T) {
	d := NewDrone(beep.SampleRate(44100), 220)
	d.SetLevel(1)

	buf := make([][2]float64, 44100)
	d.Stream(buf)
	if g := d.Gain(); math.Abs(g-config.DroneMaxGain) > 1e-3 {
		t.Errorf("Expected gain near %v after one second, got %v", config.DroneMaxGain, g)
	}
	for _, s := range buf {
		if math.Abs(s[0]) > config.DroneMaxGain+1e-9 || s[0] != s[1] {
			t.Fatalf("Expected mono samples within gain, got %v", s)
		}
	}

	d.SetLevel(5)
	d.Stream(buf)
	if g := d.Gain(); g > config.DroneMaxGain+1e-9 {
		t.Errorf("Expected level to clamp at max gain, got %v", g)
	}
}

func TestDensityLevel(t *testing.T) {
	tests := []struct {
		edges, particles int
		want             float64
	}{
		{0, 0, 0},
		{0, 1, 0},
		{1, 2, 1},
		{3, 4, 0.5},
		{100, 4, 1},
	}
	for _, tt := range tests {
		if got := DensityLevel(tt.edges, tt.particles); got != tt.want {
			t.Errorf("DensityLevel(%d, %d): expected %v, got %v", tt.edges, tt.particles, tt.want, got)
		}
	}
}

func TestPitchFor(t *testing.T) {
	if got := PitchFor(100, 0.5, 0.5, 10); got != 100 {
		t.Errorf("Expected base pitch at min speed, got %v", got)
	}
	if got := PitchFor(100, 10, 0.5, 10); got != 200 {
		t.Errorf("Expected octave at max speed, got %v", got)
	}
	if got := PitchFor(100, 50, 0.5, 10); got != 200 {
		t.Errorf("Expected pitch to clamp, got %v", got)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.5, 0},
		{0, 0},
		{0.3, 0.3},
		{1, 1},
		{7, 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
