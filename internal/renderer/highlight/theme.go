package highlight

import (
	"fmt"

	"github.com/dshills/ares/internal/renderer/core"
)

// Theme maps highlight tags to display styles.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Styles maps tags to their styles. Missing tags use the default style.
	Styles map[Tag]core.Style
}

// DefaultTheme returns the default palette-based theme.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",
		Styles: map[Tag]core.Style{
			TagNormal:    core.DefaultStyle(),
			TagComment:   core.NewStyle(core.ColorFromIndex(6)),
			TagMLComment: core.NewStyle(core.ColorFromIndex(6)),
			TagKeyword1:  core.NewStyle(core.ColorFromIndex(3)),
			TagKeyword2:  core.NewStyle(core.ColorFromIndex(2)),
			TagString:    core.NewStyle(core.ColorFromIndex(5)),
			TagNumber:    core.NewStyle(core.ColorFromIndex(1)),
			TagMatch:     core.NewStyle(core.ColorFromIndex(4)).Reverse(),
		},
	}
}

// StyleFor returns the style for a tag.
func (t *Theme) StyleFor(tag Tag) core.Style {
	if style, ok := t.Styles[tag]; ok {
		return style
	}
	return core.DefaultStyle()
}

// Override replaces foreground colors from a map of tag name to hex color.
// Valid entries are applied even when others fail; the first failure is
// returned.
func (t *Theme) Override(colors map[string]string) error {
	var firstErr error
	for name, hex := range colors {
		tag, ok := ParseTag(name)
		if !ok {
			if firstErr == nil {
				firstErr = fmt.Errorf("theme: unknown highlight %q", name)
			}
			continue
		}
		c, err := core.ColorFromHex(hex)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("theme: %s: %w", name, err)
			}
			continue
		}
		style := t.StyleFor(tag)
		style.Foreground = c
		t.Styles[tag] = style
	}
	return firstErr
}
