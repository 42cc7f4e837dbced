package sound

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/MarcBasas/constellations/internal/config"
	"github.com/MarcBasas/constellations/internal/control"
)

// output is the slice of the speaker API a Player drives. Clear and Close
// take the speaker lock themselves and must not be called while holding it.
type output struct {
	lock   func()
	unlock func()
	play   func(...beep.Streamer)
	clear  func()
	close  func()
}

var speakerOutput = output{
	lock:   speaker.Lock,
	unlock: speaker.Unlock,
	play:   speaker.Play,
	clear:  speaker.Clear,
	close:  speaker.Close,
}

// Player feeds a Drone to the system speaker.
type Player struct {
	out   output
	drone *Drone
	ctrl  *beep.Ctrl
	base  float64
}

// Start initializes the speaker and begins playing a silent drone at base Hz.
func Start(base float64) (*Player, error) {
	sr := beep.SampleRate(config.DroneSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return newPlayer(speakerOutput, sr, base), nil
}

func newPlayer(out output, sr beep.SampleRate, base float64) *Player {
	d := NewDrone(sr, base)
	ctrl := &beep.Ctrl{Streamer: d}
	out.play(ctrl)
	return &Player{out: out, drone: d, ctrl: ctrl, base: base}
}

// Update retunes the drone from the latest frame.
func (p *Player) Update(speed float64, edges, particles int) {
	p.drone.SetLevel(DensityLevel(edges, particles))
	p.drone.SetPitch(PitchFor(p.base, speed, control.SpeedRange.Min, control.SpeedRange.Max))
}

// SetPaused silences output without losing the drone's phase.
func (p *Player) SetPaused(paused bool) {
	p.out.lock()
	p.ctrl.Paused = paused
	p.out.unlock()
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	p.out.clear()
	p.out.close()
}
