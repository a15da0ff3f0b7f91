package mode

import "github.com/dshills/ares/internal/input/key"

// SaveAs asks for a filename and saves under it.
type SaveAs struct {
	prompt
}

// NewSaveAs creates the Save-As mode.
func NewSaveAs() *SaveAs {
	return &SaveAs{prompt: prompt{format: "Save as: %s (ESC to cancel)"}}
}

// Name implements Mode.
func (m *SaveAs) Name() string { return "save-as" }

// Enter implements Mode.
func (m *SaveAs) Enter(Host) { m.reset() }

// HandleKey implements Mode.
func (m *SaveAs) HandleKey(ev key.Event, h Host) Transition {
	switch m.edit(ev) {
	case promptCancel:
		h.SetStatus("Save aborted")
		return Exit
	case promptAccept:
		h.SetStatus("")
		h.SaveAs(m.Text())
		return Exit
	}
	return Stay
}
