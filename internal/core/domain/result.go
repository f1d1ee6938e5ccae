package domain

// FileResult aggregates the outcome for one file. A file with zero
// matches contributes an empty FileResult and is never written.
type FileResult struct {
	// Path is the file this result describes.
	Path string

	// Matches are the pattern occurrences found, in document order.
	Matches []Match

	// Edits are the span rewrites computed for a replace invocation.
	// Empty for search.
	Edits []Edit

	// NewContent is the rewritten content. Present only for replace
	// invocations with at least one match.
	NewContent string

	// Rewritten is true when NewContent differs from the original.
	Rewritten bool

	// Written is true when NewContent was persisted to disk.
	// Always false on dry-run.
	Written bool

	// Err records a per-file failure (read, write, not-text).
	// The batch continues past failed files.
	Err error
}

// BatchResult is the outcome of one search or replace invocation.
// Files appear in glob expansion order.
type BatchResult struct {
	// Files holds one result per file scanned, in expansion order.
	Files []FileResult

	// TotalMatches counts matches across all files.
	TotalMatches int

	// FilesChanged counts files whose content changed.
	FilesChanged int

	// Truncated is true when the match limit stopped enumeration before
	// all files and matches were examined.
	Truncated bool

	// DryRun mirrors the invocation's dry-run flag.
	DryRun bool
}
