// Package backend provides terminal backend abstraction for the renderer.
package backend

import (
	"github.com/dshills/ares/internal/input/key"
	"github.com/dshills/ares/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventInterrupt wakes the event loop from another goroutine.
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int

	// Data is the payload of an EventInterrupt.
	Data any
}

// Backend defines the interface for terminal/display backends.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() Event

	// Interrupt posts an EventInterrupt carrying data. It is safe to call
	// from any goroutine.
	Interrupt(data any)
}

// SetString writes s starting at (x, y) and returns the column after it.
// Writing stops at the right edge.
func SetString(b Backend, x, y int, s string, style core.Style) int {
	width, _ := b.Size()
	for _, r := range s {
		if x >= width {
			break
		}
		b.SetCell(x, y, core.NewStyledCell(r, style))
		x++
	}
	return x
}
