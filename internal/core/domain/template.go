package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxGroupIndex is the highest capture group index a replacement
// template may reference. Larger indices are an authoring error.
const MaxGroupIndex = 99

// Segment is one piece of a parsed replacement template: either literal
// text or a capture group reference.
type Segment struct {
	// Literal text emitted verbatim. Unused for group references.
	Literal string

	// Group is the referenced capture group index. Valid only when Ref.
	Group int

	// Ref marks this segment as a group reference.
	Ref bool
}

// Template is a parsed replacement string. Concatenating all segments
// with group references resolved reproduces the intended output exactly.
//
// Dollar handling: a '$' starts a group reference only when immediately
// followed by ASCII digits, in which case the longest contiguous digit
// run is the group index ($12 is group 12, never group 1 then "2").
// '$$' emits a literal '$'. Any other '$' (end of string, or followed by
// a non-digit) is emitted verbatim, so "$request" stays "$request" and
// is never mis-parsed as a named group that renders empty.
type Template struct {
	raw      string
	segments []Segment
	maxRef   int
}

// ParseTemplate parses a replacement string into a Template.
// It fails with ErrGroupIndexOutOfRange when a group reference exceeds
// MaxGroupIndex; that is the only parse failure.
func ParseTemplate(raw string) (*Template, error) {
	t := &Template{raw: raw}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, Segment{Literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(raw); {
		c := raw[i]
		if c != '$' {
			lit.WriteByte(c)
			i++
			continue
		}
		switch {
		case i+1 < len(raw) && raw[i+1] == '$':
			lit.WriteByte('$')
			i += 2
		case i+1 < len(raw) && isDigit(raw[i+1]):
			j := i + 1
			for j < len(raw) && isDigit(raw[j]) {
				j++
			}
			idx, err := strconv.Atoi(raw[i+1 : j])
			if err != nil || idx > MaxGroupIndex {
				return nil, fmt.Errorf("%w: $%s", ErrGroupIndexOutOfRange, raw[i+1:j])
			}
			flush()
			t.segments = append(t.segments, Segment{Group: idx, Ref: true})
			if idx > t.maxRef {
				t.maxRef = idx
			}
			i = j
		default:
			// Trailing '$' or '$' before a non-digit: literal.
			lit.WriteByte('$')
			i++
		}
	}
	flush()

	return t, nil
}

// Raw returns the original replacement string.
func (t *Template) Raw() string {
	return t.raw
}

// MaxRef returns the highest group index referenced, 0 when none.
func (t *Template) MaxRef() int {
	return t.maxRef
}

// Render resolves the template against one match.
//
// Policy: a reference to a group the pattern does not define, or to a
// group that did not participate in this particular match, renders as
// the empty string rather than failing. Structurally impossible indices
// are rejected at parse time, so Render itself cannot fail.
func (t *Template) Render(m Match) string {
	var b strings.Builder
	for _, seg := range t.segments {
		if !seg.Ref {
			b.WriteString(seg.Literal)
			continue
		}
		if seg.Group < len(m.Groups) && m.Groups[seg.Group].Matched {
			b.WriteString(m.Groups[seg.Group].Text)
		}
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
