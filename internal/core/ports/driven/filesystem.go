package driven

import "context"

// FileStore provides glob expansion and file access to core services.
type FileStore interface {
	// ExpandGlob resolves a glob pattern (doublestar syntax, e.g.
	// "src/**/*.go") to an ordered list of regular files. The order is
	// deterministic: the same pattern yields the same sequence.
	ExpandGlob(ctx context.Context, pattern string) ([]string, error)

	// ReadFile returns a file's content as text. It fails with
	// domain.ErrNotText for binary content and domain.ErrFileTooLarge
	// for files above the configured size cap.
	ReadFile(ctx context.Context, path string) (string, error)

	// WriteFile replaces a file's content, preserving its permissions.
	WriteFile(ctx context.Context, path, content string) error
}
