package mode

import "github.com/dshills/ares/internal/input/key"

// CommitMessage asks for a commit message and hands it to the host.
type CommitMessage struct {
	prompt
}

// NewCommitMessage creates the Commit-Message mode.
func NewCommitMessage() *CommitMessage {
	return &CommitMessage{prompt: prompt{format: "Commit message: %s (ESC to cancel)"}}
}

// Name implements Mode.
func (m *CommitMessage) Name() string { return "commit" }

// Enter implements Mode.
func (m *CommitMessage) Enter(Host) { m.reset() }

// HandleKey implements Mode.
func (m *CommitMessage) HandleKey(ev key.Event, h Host) Transition {
	switch m.edit(ev) {
	case promptCancel:
		h.SetStatus("Commit aborted")
		return Exit
	case promptAccept:
		h.SetStatus("")
		h.Commit(m.Text())
		return Exit
	}
	return Stay
}
