// Package statusline provides the status bar and message bar text.
package statusline

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultMessageTimeout is how long a message stays visible.
const DefaultMessageTimeout = 5 * time.Second

// Info is what the status bar shows.
type Info struct {
	Filename string // empty for an unnamed document
	NumRows  int
	Modified bool
	Syntax   string // empty when no syntax is active
	Row      int    // 1-based cursor row
}

// Left returns the left-aligned part: name, line count and modified flag.
func (i Info) Left() string {
	name := i.Filename
	if name == "" {
		name = "[No Name]"
	}
	if len(name) > 20 {
		name = name[:20]
	}
	modified := ""
	if i.Modified {
		modified = "(modified)"
	}
	return fmt.Sprintf("%s - %d lines %s", name, i.NumRows, modified)
}

// Right returns the right-aligned part: file type and cursor row.
func (i Info) Right() string {
	ft := i.Syntax
	if ft == "" {
		ft = "no ft"
	}
	return fmt.Sprintf("%s | %d/%d", ft, i.Row, i.NumRows)
}

// Compose lays out the status bar for a screen width. The right part is
// dropped when it does not fit next to the left part.
func Compose(i Info, width int) string {
	if width <= 0 {
		return ""
	}
	left, right := i.Left(), i.Right()
	if len(left) >= width {
		return left[:width]
	}
	if len(left)+len(right) > width {
		return left + strings.Repeat(" ", width-len(left))
	}
	return left + strings.Repeat(" ", width-len(left)-len(right)) + right
}

// Message is a status message that expires after a timeout.
type Message struct {
	mu      sync.RWMutex
	text    string
	at      time.Time
	timeout time.Duration
	now     func() time.Time
}

// NewMessage creates a message bar with the given timeout. A non-positive
// timeout uses DefaultMessageTimeout.
func NewMessage(timeout time.Duration) *Message {
	if timeout <= 0 {
		timeout = DefaultMessageTimeout
	}
	return &Message{timeout: timeout, now: time.Now}
}

// Set formats and shows a new message.
func (m *Message) Set(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = fmt.Sprintf(format, args...)
	m.at = m.now()
}

// Text returns the message, or "" once it has expired.
func (m *Message) Text() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.text == "" || m.now().Sub(m.at) >= m.timeout {
		return ""
	}
	return m.text
}

// Raw returns the last message regardless of expiry.
func (m *Message) Raw() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text
}
