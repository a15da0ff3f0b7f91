package highlight

import (
	"bytes"
	"strings"
)

// separators delimit identifiers, keywords and numbers in addition to
// whitespace and NUL.
const separators = ",.()+-/*=~%<>[];"

// IsSeparator reports whether c ends an identifier, keyword or number.
func IsSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0:
		return true
	}
	return strings.IndexByte(separators, c) >= 0
}

// Highlight classifies each byte of render using syn. commentOpen is the
// trailing comment state of the previous row. It returns one tag per byte of
// render and whether a multi-line comment is still open at the end of the
// row. A nil syn, or one without keywords, tags everything normal and
// reports no open comment.
func Highlight(render []byte, syn *Syntax, commentOpen bool) ([]Tag, bool) {
	hl := make([]Tag, len(render))
	if syn == nil {
		return hl, false
	}
	keywords := syn.ParsedKeywords()
	if len(keywords) == 0 {
		return hl, false
	}

	scs := []byte(syn.SingleLineComment)
	mcs := []byte(syn.MultiLineStart)
	mce := []byte(syn.MultiLineEnd)
	multi := syn.hasMultiLine()

	prevSep := true
	var inString byte
	inComment := commentOpen

	i := 0
	for i < len(render) {
		c := render[i]
		prevTag := TagNormal
		if i > 0 {
			prevTag = hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment && bytes.HasPrefix(render[i:], scs) {
			fill(hl[i:], TagComment)
			break
		}

		if multi && inString == 0 {
			if inComment {
				hl[i] = TagMLComment
				if bytes.HasPrefix(render[i:], mce) {
					fill(hl[i:i+len(mce)], TagMLComment)
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(render[i:], mcs) {
				fill(hl[i:i+len(mcs)], TagMLComment)
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if syn.Flags.Has(HighlightStrings) {
			if inString != 0 {
				hl[i] = TagString
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = TagString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				hl[i] = TagString
				i++
				continue
			}
		}

		if syn.Flags.Has(HighlightNumbers) {
			if (isDigit(c) && (prevSep || prevTag == TagNumber)) ||
				(c == '.' && prevTag == TagNumber) {
				hl[i] = TagNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, tag := matchKeyword(render[i:], keywords); n > 0 {
				fill(hl[i:i+n], tag)
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}

	return hl, inComment
}

// matchKeyword returns the length and tag of the first keyword, in list
// order, that is a prefix of s and is followed by a separator or the end.
func matchKeyword(s []byte, keywords []Keyword) (int, Tag) {
	for _, kw := range keywords {
		n := len(kw.Text)
		if n == 0 || n > len(s) || string(s[:n]) != kw.Text {
			continue
		}
		if n < len(s) && !IsSeparator(s[n]) {
			continue
		}
		if kw.Secondary {
			return n, TagKeyword2
		}
		return n, TagKeyword1
	}
	return 0, TagNormal
}

func fill(hl []Tag, tag Tag) {
	for i := range hl {
		hl[i] = tag
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
