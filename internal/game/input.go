package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/MarcBasas/constellations/internal/input"
)

// poller turns ebiten's polled mouse state into discrete events.
type poller struct {
	lastX, lastY int
	primed       bool
}

func (p *poller) poll(q *input.Queue) {
	x, y := ebiten.CursorPosition()
	if p.primed && (x != p.lastX || y != p.lastY) {
		q.Push(input.Moved(x, y))
	}
	p.lastX, p.lastY, p.primed = x, y, true

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		q.Push(input.Pressed(x, y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		q.Push(input.Released(x, y))
	}
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		q.Push(input.QuitEvent())
	}
}
