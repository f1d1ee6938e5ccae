package driving

import (
	"context"

	"github.com/Osso/regex-replace-mcp/internal/core/domain"
)

// SearchService finds regex pattern matches across glob-selected files.
type SearchService interface {
	// Search returns matches for pattern across the files selected by
	// glob, in expansion order, bounded by the batch-wide limit.
	Search(ctx context.Context, pattern, glob string, opts domain.SearchOptions) (*domain.BatchResult, error)
}
