package domain

import (
	"fmt"
	"regexp"
)

// Pattern is a compiled regular expression. It is immutable once built
// and owned by a single search or replace invocation; patterns are never
// cached across invocations.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// CompilePattern compiles a regex pattern (Go regexp syntax).
// A compile failure is wrapped in ErrInvalidPattern and carries the
// engine's original message for diagnostics.
func CompilePattern(expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return &Pattern{expr: expr, re: re}, nil
}

// Expr returns the original pattern string.
func (p *Pattern) Expr() string {
	return p.expr
}

// GroupCount returns the number of capturing groups in the pattern,
// not counting group 0 (the whole match).
func (p *Pattern) GroupCount() int {
	return p.re.NumSubexp()
}

// Submatches returns up to limit leftmost non-overlapping submatch index
// vectors in document order, as produced by the regexp engine. A negative
// limit returns all matches. Zero-length matches advance the scan position
// so enumeration always terminates.
func (p *Pattern) Submatches(content string, limit int) [][]int {
	return p.re.FindAllStringSubmatchIndex(content, limit)
}
