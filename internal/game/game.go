package game

import (
	"fmt"
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/MarcBasas/constellations/internal/clock"
	"github.com/MarcBasas/constellations/internal/config"
	"github.com/MarcBasas/constellations/internal/frame"
	"github.com/MarcBasas/constellations/internal/input"
	"github.com/MarcBasas/constellations/internal/sound"
)

// statusDuration is how long a status message stays on screen.
const statusDuration = 4 * time.Second

// Options configures a Game.
type Options struct {
	Seed   int64
	Debug  bool
	Tone   bool
	ToneHz float64
}

// Game adapts frame.Loop to ebiten.Game. Update runs the simulation step and
// Draw renders it; ebiten paces both at config.TPS.
type Game struct {
	loop    *frame.Loop
	queue   input.Queue
	poller  poller
	surface *surface
	player  *sound.Player
	paused  bool

	debug   bool
	started time.Time

	// screenshot state
	captureNext bool
	shot        *image.RGBA

	status      string
	statusUntil time.Time
}

// NewGame builds the loop and surface, and starts the drone when requested.
// Audio failures are logged and leave the game silent.
func NewGame(opts Options) (*Game, error) {
	surf, err := newSurface()
	if err != nil {
		return nil, err
	}
	g := &Game{
		loop:    frame.New(rand.New(rand.NewSource(opts.Seed)), clock.System{}),
		surface: surf,
		debug:   opts.Debug,
		started: time.Now(),
	}
	if opts.Tone {
		player, err := sound.Start(opts.ToneHz)
		if err != nil {
			// The visualization still works without audio.
			log.Printf("Audio disabled: %v", err)
			g.setStatus("Audio disabled: " + err.Error())
		} else {
			g.player = player
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.poller.poll(&g.queue)

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.captureNext = true
	}
	if g.shot != nil {
		g.saveShot()
	}

	if !g.loop.Step(g.queue.Drain()) {
		return ebiten.Termination
	}

	if g.player != nil {
		stats := g.loop.Stats()
		g.player.Update(g.loop.Controls().Speed, stats.Edges, stats.Particles)
		if paused := !ebiten.IsFocused(); paused != g.paused {
			g.paused = paused
			g.player.SetPaused(paused)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.bind(screen)
	g.loop.Draw(g.surface)

	if g.captureNext {
		g.shot = capture(screen)
		g.captureNext = false
	}

	if g.debug {
		g.drawDebug(screen)
	}
	if g.status != "" && time.Now().Before(g.statusUntil) {
		ebitenutil.DebugPrintAt(screen, g.status, 12, config.WindowHeight-config.PanelHeight-40)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	stats := g.loop.Stats()
	controls := g.loop.Controls()
	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nParticles: %d/%d\nEdges: %d\nSpeed: %.2f  Distance: %.0f\nUptime: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		stats.Particles, controls.Count, stats.Edges,
		controls.Speed, controls.MaxDistance,
		clock.FormatElapsed(time.Since(g.started)))
	ebitenutil.DebugPrint(screen, msg)
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// saveShot runs the save dialog for a pending screenshot. The dialog blocks
// the game goroutine until the user answers.
func (g *Game) saveShot() {
	shot := g.shot
	g.shot = nil
	path, err := saveScreenshotDialog(shot)
	switch {
	case err != nil:
		log.Printf("Screenshot failed: %v", err)
		g.setStatus("Screenshot failed: " + err.Error())
	case path != "":
		log.Printf("Saved screenshot to %s", path)
		g.setStatus("Saved " + path)
	}
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusUntil = time.Now().Add(statusDuration)
}

// Close releases audio resources.
func (g *Game) Close() {
	if g.player != nil {
		g.player.Close()
	}
}
