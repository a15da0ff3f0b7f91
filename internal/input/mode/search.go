package mode

import (
	"github.com/dshills/ares/internal/engine/search"
	"github.com/dshills/ares/internal/input/key"
)

// Search runs an incremental search, one step per keystroke. Arrow keys
// move to the next or previous match, Enter keeps the cursor on the match
// and Escape returns it to where the search started.
type Search struct {
	prompt
}

// NewSearch creates the Search mode.
func NewSearch() *Search {
	return &Search{prompt: prompt{format: "Search: %s (Use ESC/Arrows/Enter)"}}
}

// Name implements Mode.
func (m *Search) Name() string { return "search" }

// Enter implements Mode.
func (m *Search) Enter(Host) { m.reset() }

// HandleKey implements Mode.
func (m *Search) HandleKey(ev key.Event, h Host) Transition {
	switch {
	case ev.Is(key.KeyRight), ev.Is(key.KeyDown):
		h.Search(m.Text(), search.Forward, false)
		return Stay
	case ev.Is(key.KeyLeft), ev.Is(key.KeyUp):
		h.Search(m.Text(), search.Backward, false)
		return Stay
	}

	switch m.edit(ev) {
	case promptCancel:
		h.SetStatus("")
		h.EndSearch(false)
		return Exit
	case promptAccept:
		h.SetStatus("")
		h.EndSearch(true)
		return Exit
	case promptEdited:
		h.Search(m.Text(), search.Forward, true)
	}
	return Stay
}
