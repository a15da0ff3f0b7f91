package key

import (
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a named key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// Ctrl returns the event for Ctrl plus the letter r.
func Ctrl(r rune) Event {
	return NewRuneEvent(unicode.ToLower(r), ModCtrl)
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true for a printable character without Ctrl or Alt.
// Tab counts as a character so it can be inserted.
func (e Event) IsChar() bool {
	if e.Key == KeyTab && e.Modifiers == ModNone {
		return true
	}
	return e.IsRune() && !e.Modifiers.Has(ModCtrl|ModAlt) && unicode.IsPrint(e.Rune)
}

// Char returns the byte to insert for a character event. It returns false
// for events that are not a single-byte character.
func (e Event) Char() (byte, bool) {
	if e.Key == KeyTab && e.Modifiers == ModNone {
		return '\t', true
	}
	if !e.IsChar() || e.Rune > unicode.MaxASCII {
		return 0, false
	}
	return byte(e.Rune), true
}

// IsCtrl returns true if this is Ctrl plus the letter r.
func (e Event) IsCtrl(r rune) bool {
	return e.Key == KeyRune && e.Modifiers.Has(ModCtrl) && unicode.ToLower(e.Rune) == unicode.ToLower(r)
}

// Is returns true if this is the named key k without modifiers.
func (e Event) Is(k Key) bool {
	return e.Key == k && e.Modifiers == ModNone
}

// String returns a representation like "Ctrl+s", "a" or "Enter".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
		if e.Rune == ' ' {
			name = "Space"
		}
	}
	mods := e.Modifiers
	if e.Key == KeyRune {
		mods &^= ModShift
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}
