package highlight

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Flags enables optional highlighting classes.
type Flags uint8

const (
	// HighlightNumbers tags numeric literals.
	HighlightNumbers Flags = 1 << iota
	// HighlightStrings tags quoted strings.
	HighlightStrings
)

// Has returns true if f contains flag.
func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// ErrInvalidSyntax is returned when a syntax definition fails validation.
var ErrInvalidSyntax = errors.New("invalid syntax definition")

// Keyword is a parsed keyword entry.
type Keyword struct {
	Text      string
	Secondary bool
}

// Syntax is a language profile. It is treated as immutable once registered.
type Syntax struct {
	// Name is the display name (e.g. "c").
	Name string

	// FileMatch lists filename patterns. A pattern starting with '.' matches
	// the file extension; any other pattern matches as a substring.
	FileMatch []string

	// Keywords in match priority order. A trailing '|' marks a secondary
	// keyword; the bar is not part of the matched text.
	Keywords []string

	// SingleLineComment starts a comment running to the end of the row.
	SingleLineComment string

	// MultiLineStart and MultiLineEnd delimit block comments.
	MultiLineStart string
	MultiLineEnd   string

	Flags Flags

	parseOnce sync.Once
	parsed    []Keyword
}

// Validate checks the definition for obvious mistakes.
func (s *Syntax) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil", ErrInvalidSyntax)
	}
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidSyntax)
	}
	if (s.MultiLineStart == "") != (s.MultiLineEnd == "") {
		return fmt.Errorf("%w: %s: multi-line comment needs both delimiters", ErrInvalidSyntax, s.Name)
	}
	for _, kw := range s.Keywords {
		if strings.TrimSuffix(kw, "|") == "" {
			return fmt.Errorf("%w: %s: empty keyword", ErrInvalidSyntax, s.Name)
		}
	}
	return nil
}

// ParsedKeywords returns the keyword list with the secondary marker split off.
// The result is computed once and cached.
func (s *Syntax) ParsedKeywords() []Keyword {
	s.parseOnce.Do(func() {
		s.parsed = make([]Keyword, 0, len(s.Keywords))
		for _, kw := range s.Keywords {
			s.parsed = append(s.parsed, Keyword{
				Text:      strings.TrimSuffix(kw, "|"),
				Secondary: strings.HasSuffix(kw, "|"),
			})
		}
	})
	return s.parsed
}

// hasMultiLine reports whether block comments are configured.
func (s *Syntax) hasMultiLine() bool {
	return s.MultiLineStart != "" && s.MultiLineEnd != ""
}
