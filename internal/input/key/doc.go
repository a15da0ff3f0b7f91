// Package key defines the logical key events the editor consumes.
//
// Terminal backends decode raw input into Event values; the editor never
// sees escape sequences. An Event is either a character (KeyRune with the
// Rune field set) or one of the named keys below, optionally combined with
// modifiers. Control characters arrive as KeyRune with ModCtrl and the
// lowercase letter, so Ctrl-S is Ctrl('s').
package key
