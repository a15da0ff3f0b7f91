package mode

import (
	"github.com/dshills/ares/internal/engine/search"
	"github.com/dshills/ares/internal/input/key"
)

// Mode is one interactive prompt.
type Mode interface {
	// Name returns the unique mode identifier (e.g., "search").
	Name() string

	// Prompt returns the status-bar text for the current buffer.
	Prompt() string

	// Enter is called when the mode becomes active.
	Enter(h Host)

	// HandleKey applies one keystroke.
	HandleKey(ev key.Event, h Host) Transition
}

// Transition tells the Manager whether the mode stays active.
type Transition uint8

const (
	// Stay keeps the mode active.
	Stay Transition = iota
	// Exit leaves the mode.
	Exit
)

// String returns the transition name.
func (t Transition) String() string {
	if t == Exit {
		return "exit"
	}
	return "stay"
}

// Host is the editor as seen from a prompt mode.
type Host interface {
	// SetStatus shows a message in the message bar.
	SetStatus(format string, args ...any)

	// SaveAs saves the document under filename.
	SaveAs(filename string)

	// Search runs one incremental search step. fresh is true when the
	// query changed and the search restarts from the top.
	Search(query string, dir search.Direction, fresh bool)

	// EndSearch clears the match highlight. When accept is false the
	// cursor returns to where it was when the search started.
	EndSearch(accept bool)

	// GotoLine moves the cursor to the 1-based line.
	GotoLine(line int) error

	// Commit records the current file with message.
	Commit(message string)
}
