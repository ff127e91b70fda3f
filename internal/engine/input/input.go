// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseMove
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Sym    byte // key symbol, see Symbol
	Shift  bool
	Width  int
	Height int
	MouseX int
	MouseY int
}

// Input handles all input processing.
type Input struct {
	events []Event
	mouseX int
	mouseY int
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			shift := e.Keysym.Mod&sdl.KMOD_SHIFT != 0
			sym, ok := Symbol(e.Keysym.Sym, shift)
			if !ok {
				continue
			}
			i.events = append(i.events, Event{
				Type:   EventKeyDown,
				Sym:    sym,
				Shift:  shift,
				MouseX: i.mouseX,
				MouseY: i.mouseY,
			})

		case *sdl.MouseMotionEvent:
			// Accumulated so motion keeps flowing in relative mouse mode
			i.mouseX += int(e.XRel)
			i.mouseY += int(e.YRel)
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: i.mouseX,
				MouseY: i.mouseY,
			})
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Symbol maps an SDL keycode to the byte the game binds actions to.
// Letters stay lower case, the game applies shift itself. The keypad and
// shifted '=' both produce '+'.
func Symbol(key sdl.Keycode, shift bool) (byte, bool) {
	switch key {
	case sdl.K_ESCAPE:
		return 27, true
	case sdl.K_KP_PLUS, sdl.K_PLUS:
		return '+', true
	case sdl.K_KP_MINUS, sdl.K_MINUS:
		return '-', true
	case sdl.K_EQUALS:
		if shift {
			return '+', true
		}
		return '=', true
	}
	if key >= 0x20 && key < 0x7f {
		return byte(key), true
	}
	return 0, false
}
