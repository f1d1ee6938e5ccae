package services

import (
	"strings"

	"github.com/Osso/regex-replace-mcp/internal/core/domain"
)

// buildEdits computes the span rewrites for one file. Matches must be
// in ascending offset order.
func buildEdits(matches []domain.Match, tmpl *domain.Template) []domain.Edit {
	edits := make([]domain.Edit, len(matches))
	for i, m := range matches {
		edits[i] = domain.Edit{
			Start: m.Start,
			End:   m.End,
			Line:  m.Line,
			Old:   m.Text,
			New:   tmpl.Render(m),
		}
	}
	return edits
}

// applyEdits splices the edits into the original content, copying
// unmatched spans verbatim. Replacement text is never rescanned, so a
// replacement that itself matches the pattern cannot expand infinitely.
func applyEdits(content string, edits []domain.Edit) string {
	var b strings.Builder
	b.Grow(len(content))

	prev := 0
	for _, e := range edits {
		b.WriteString(content[prev:e.Start])
		b.WriteString(e.New)
		prev = e.End
	}
	b.WriteString(content[prev:])

	return b.String()
}
