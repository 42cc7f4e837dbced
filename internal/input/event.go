// Package input defines the pointer and quit events the frame loop consumes.
package input

import "fmt"

// Kind identifies an input event.
type Kind int

const (
	PointerPressed Kind = iota
	PointerReleased
	PointerMoved
	Quit
)

func (k Kind) String() string {
	switch k {
	case PointerPressed:
		return "pressed"
	case PointerReleased:
		return "released"
	case PointerMoved:
		return "moved"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is one discrete input. X and Y are screen coordinates and are
// unused for Quit.
type Event struct {
	Kind Kind
	X, Y int
}

func Pressed(x, y int) Event  { return Event{Kind: PointerPressed, X: x, Y: y} }
func Released(x, y int) Event { return Event{Kind: PointerReleased, X: x, Y: y} }
func Moved(x, y int) Event    { return Event{Kind: PointerMoved, X: x, Y: y} }
func QuitEvent() Event        { return Event{Kind: Quit} }
