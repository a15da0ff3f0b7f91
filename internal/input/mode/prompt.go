package mode

import (
	"fmt"

	"github.com/dshills/ares/internal/input/key"
)

// promptAction is the result of feeding one key to a prompt buffer.
type promptAction uint8

const (
	promptEdited promptAction = iota
	promptUnchanged
	promptCancel
	promptAccept
)

// prompt is the line-editing buffer shared by every mode.
type prompt struct {
	format string
	buf    []byte
}

func (p *prompt) reset() {
	p.buf = p.buf[:0]
}

// Text returns the current buffer.
func (p *prompt) Text() string {
	return string(p.buf)
}

// Prompt formats the status-bar text.
func (p *prompt) Prompt() string {
	return fmt.Sprintf(p.format, p.buf)
}

// edit applies ev. Enter on an empty buffer is ignored.
func (p *prompt) edit(ev key.Event) promptAction {
	switch {
	case ev.Is(key.KeyEscape):
		return promptCancel
	case ev.Is(key.KeyEnter):
		if len(p.buf) == 0 {
			return promptUnchanged
		}
		return promptAccept
	case ev.Is(key.KeyBackspace), ev.Is(key.KeyDelete), ev.IsCtrl('h'):
		if len(p.buf) == 0 {
			return promptUnchanged
		}
		p.buf = p.buf[:len(p.buf)-1]
		return promptEdited
	}
	if c, ok := ev.Char(); ok && c != '\t' {
		p.buf = append(p.buf, c)
		return promptEdited
	}
	return promptUnchanged
}
