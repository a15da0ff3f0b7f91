// Package highlight classifies every rendered byte of a row for display.
//
// Highlighting is driven by an immutable Syntax definition selected by
// filename. The only state carried between rows is whether a multi-line
// comment is still open at the end of a row; the caller feeds that flag to
// the next row and re-highlights it whenever the flag changes.
package highlight

// Tag classifies a single rendered byte.
type Tag uint8

// Highlight tags.
const (
	TagNormal Tag = iota
	TagComment
	TagMLComment
	TagKeyword1
	TagKeyword2
	TagString
	TagNumber
	TagMatch

	tagCount
)

var tagNames = [...]string{
	TagNormal:    "normal",
	TagComment:   "comment",
	TagMLComment: "mlcomment",
	TagKeyword1:  "keyword1",
	TagKeyword2:  "keyword2",
	TagString:    "string",
	TagNumber:    "number",
	TagMatch:     "match",
}

// String returns the string representation of a tag.
func (t Tag) String() string {
	if t < tagCount {
		return tagNames[t]
	}
	return "unknown"
}

// IsComment returns true for single-line and multi-line comment tags.
func (t Tag) IsComment() bool {
	return t == TagComment || t == TagMLComment
}

// IsKeyword returns true for primary and secondary keyword tags.
func (t Tag) IsKeyword() bool {
	return t == TagKeyword1 || t == TagKeyword2
}

// ParseTag converts a tag name back into a Tag.
func ParseTag(name string) (Tag, bool) {
	for i, n := range tagNames {
		if n == name {
			return Tag(i), true
		}
	}
	return TagNormal, false
}

// Tags returns every defined tag in declaration order.
func Tags() []Tag {
	out := make([]Tag, 0, tagCount)
	for t := TagNormal; t < tagCount; t++ {
		out = append(out, t)
	}
	return out
}
