package domain

// Group is one capture group within a match. Index 0 is the whole match.
type Group struct {
	// Text is the captured text. Empty when the group did not participate.
	Text string

	// Matched is false when the group did not participate in this match
	// (e.g. an unused alternation branch).
	Matched bool
}

// Match is a single pattern occurrence inside a file. Matches are
// immutable once created and ordered by ascending offset.
type Match struct {
	// Path is the file the match was found in.
	Path string

	// Start and End are byte offsets into the file content.
	// Start is inclusive, End exclusive.
	Start int
	End   int

	// Line is the 1-based line number of Start.
	Line int

	// Text is the matched text.
	Text string

	// Groups holds the capture groups, index 0 being the whole match.
	Groups []Group
}

// Edit describes one span rewrite within a file.
type Edit struct {
	// Start and End are byte offsets of the replaced span in the
	// original content.
	Start int
	End   int

	// Line is the 1-based line number of Start in the original content.
	Line int

	// Old is the original span text, New the rendered replacement.
	Old string
	New string
}

// SearchOptions configures a search invocation.
type SearchOptions struct {
	// Limit caps the total number of matches across the whole batch.
	// Zero or negative uses the configured default.
	Limit int
}

// ReplaceOptions configures a replace invocation.
type ReplaceOptions struct {
	// DryRun computes edits without writing any file.
	DryRun bool

	// Limit caps the total number of replacements across the whole batch.
	// Zero means unlimited.
	Limit int
}
