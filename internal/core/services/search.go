package services

import (
	"context"
	"fmt"

	"github.com/Osso/regex-replace-mcp/internal/core/domain"
	"github.com/Osso/regex-replace-mcp/internal/core/ports/driven"
	"github.com/Osso/regex-replace-mcp/internal/core/ports/driving"
	"github.com/Osso/regex-replace-mcp/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// defaultSearchLimit caps the total matches per invocation when neither
// the caller nor the configuration specifies a limit.
const defaultSearchLimit = 50

// SearchService finds regex matches across glob-selected files.
// Each invocation compiles its own pattern and owns its own result
// tree; nothing is cached across invocations.
type SearchService struct {
	files  driven.FileStore
	config driven.ConfigStore
}

// NewSearchService creates a new search service.
// The config parameter is optional (can be nil).
func NewSearchService(files driven.FileStore, config driven.ConfigStore) *SearchService {
	return &SearchService{files: files, config: config}
}

// Search returns matches for pattern across the files selected by glob.
//
// The limit bounds the total number of matches across the whole batch,
// not per file. Once the cumulative count reaches the limit, enumeration
// stops, Truncated is set, and remaining files are not opened. Per-file
// read failures are recorded on that file's result without aborting the
// batch; only an invalid pattern is batch-fatal.
func (s *SearchService) Search(
	ctx context.Context, pattern, glob string, opts domain.SearchOptions,
) (*domain.BatchResult, error) {
	logger.Section("Regex Search")
	logger.Debug("Pattern: %q, glob: %q", pattern, glob)

	pat, err := domain.CompilePattern(pattern)
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.defaultLimit()
	}
	logger.Debug("Limit: %d", limit)

	paths, err := s.files.ExpandGlob(ctx, glob)
	if err != nil {
		return nil, fmt.Errorf("expand glob: %w", err)
	}
	logger.Debug("Glob resolved to %d files", len(paths))

	result := &domain.BatchResult{}
	remaining := limit

	for _, path := range paths {
		if remaining == 0 {
			result.Truncated = true
			break
		}

		content, err := s.files.ReadFile(ctx, path)
		if err != nil {
			logger.Warn("Skipping %s: %v", path, err)
			result.Files = append(result.Files, domain.FileResult{Path: path, Err: err})
			continue
		}

		// Probe one past the remaining budget so truncation inside a
		// file is detectable.
		matches := collectMatches(pat, path, content, remaining+1)
		if len(matches) > remaining {
			matches = matches[:remaining]
			result.Truncated = true
		}
		remaining -= len(matches)
		result.TotalMatches += len(matches)
		result.Files = append(result.Files, domain.FileResult{Path: path, Matches: matches})
	}

	logger.Info("Search complete: %d matches in %d files (truncated=%t)",
		result.TotalMatches, len(result.Files), result.Truncated)

	return result, nil
}

// defaultLimit returns the configured default match limit.
func (s *SearchService) defaultLimit() int {
	if s.config != nil {
		if n := s.config.GetInt("search.default_limit"); n > 0 {
			return n
		}
	}
	return defaultSearchLimit
}
