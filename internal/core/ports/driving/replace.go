package driving

import (
	"context"

	"github.com/Osso/regex-replace-mcp/internal/core/domain"
)

// ReplaceService rewrites regex pattern matches across glob-selected files.
type ReplaceService interface {
	// Replace applies the replacement to every match of pattern across
	// the files selected by glob. With DryRun set, edits are computed
	// but no file is written.
	Replace(ctx context.Context, pattern, replacement, glob string, opts domain.ReplaceOptions) (*domain.BatchResult, error)
}
