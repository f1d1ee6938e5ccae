// Package domain defines the core entities for the regex replace engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Pattern: A compiled regular expression, owned by one invocation
//   - Template: A parsed replacement string (literals + group refs)
//   - Match: One pattern occurrence inside a file
//   - FileResult/BatchResult: Per-file and per-invocation outcomes
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
