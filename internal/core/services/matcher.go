package services

import (
	"strings"

	"github.com/Osso/regex-replace-mcp/internal/core/domain"
)

// collectMatches applies a compiled pattern to one file's content and
// returns up to limit match records in document order. A negative limit
// collects all matches. Content is never mutated.
func collectMatches(p *domain.Pattern, path, content string, limit int) []domain.Match {
	idxs := p.Submatches(content, limit)
	if len(idxs) == 0 {
		return nil
	}

	matches := make([]domain.Match, 0, len(idxs))

	// Matches arrive in ascending offset order, so line numbers can be
	// computed with a single incremental scan.
	line := 1
	prev := 0

	for _, idx := range idxs {
		start, end := idx[0], idx[1]
		line += strings.Count(content[prev:start], "\n")
		prev = start

		groups := make([]domain.Group, 0, len(idx)/2)
		for g := 0; g < len(idx)/2; g++ {
			gs, ge := idx[2*g], idx[2*g+1]
			if gs < 0 {
				groups = append(groups, domain.Group{})
				continue
			}
			groups = append(groups, domain.Group{Text: content[gs:ge], Matched: true})
		}

		matches = append(matches, domain.Match{
			Path:   path,
			Start:  start,
			End:    end,
			Line:   line,
			Text:   content[start:end],
			Groups: groups,
		})
	}

	return matches
}
