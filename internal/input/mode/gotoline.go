package mode

import (
	"strconv"
	"strings"

	"github.com/dshills/ares/internal/input/key"
)

// GotoLine asks for a line number and jumps to it.
type GotoLine struct {
	prompt
}

// NewGotoLine creates the Goto-Line mode.
func NewGotoLine() *GotoLine {
	return &GotoLine{prompt: prompt{format: "Go to line: %s (ESC to cancel)"}}
}

// Name implements Mode.
func (m *GotoLine) Name() string { return "goto-line" }

// Enter implements Mode.
func (m *GotoLine) Enter(Host) { m.reset() }

// HandleKey implements Mode.
func (m *GotoLine) HandleKey(ev key.Event, h Host) Transition {
	switch m.edit(ev) {
	case promptCancel:
		h.SetStatus("")
		return Exit
	case promptAccept:
		text := strings.TrimSpace(m.Text())
		n, err := strconv.Atoi(text)
		if err != nil {
			h.SetStatus("Not a line number: %s", text)
			return Exit
		}
		if err := h.GotoLine(n); err != nil {
			h.SetStatus("%v", err)
			return Exit
		}
		h.SetStatus("")
		return Exit
	}
	return Stay
}
