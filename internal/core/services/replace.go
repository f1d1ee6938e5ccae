package services

import (
	"context"
	"fmt"

	"github.com/Osso/regex-replace-mcp/internal/core/domain"
	"github.com/Osso/regex-replace-mcp/internal/core/ports/driven"
	"github.com/Osso/regex-replace-mcp/internal/core/ports/driving"
	"github.com/Osso/regex-replace-mcp/internal/logger"
)

// Ensure ReplaceService implements the interface.
var _ driving.ReplaceService = (*ReplaceService)(nil)

// ReplaceService rewrites regex matches across glob-selected files.
type ReplaceService struct {
	files  driven.FileStore
	config driven.ConfigStore
}

// NewReplaceService creates a new replace service.
// The config parameter is optional (can be nil).
func NewReplaceService(files driven.FileStore, config driven.ConfigStore) *ReplaceService {
	return &ReplaceService{files: files, config: config}
}

// Replace applies the replacement to every match of pattern across the
// files selected by glob, in expansion order.
//
// Pattern and template authoring errors abort the batch before any file
// is read, so a malformed request can never commit a partial rewrite.
// Per-file read/write failures are recorded on that file's result and
// the batch continues. With DryRun set, edits are computed but no file
// is written. A zero or negative limit means unlimited.
func (s *ReplaceService) Replace(
	ctx context.Context, pattern, replacement, glob string, opts domain.ReplaceOptions,
) (*domain.BatchResult, error) {
	logger.Section("Regex Replace")
	logger.Debug("Pattern: %q, replacement: %q, glob: %q, dry_run=%t",
		pattern, replacement, glob, opts.DryRun)

	pat, err := domain.CompilePattern(pattern)
	if err != nil {
		return nil, err
	}

	tmpl, err := domain.ParseTemplate(replacement)
	if err != nil {
		return nil, err
	}

	if tmpl.MaxRef() > pat.GroupCount() {
		logger.Warn("Replacement references group %d but pattern has %d groups; those references render empty",
			tmpl.MaxRef(), pat.GroupCount())
	}

	paths, err := s.files.ExpandGlob(ctx, glob)
	if err != nil {
		return nil, fmt.Errorf("expand glob: %w", err)
	}
	logger.Debug("Glob resolved to %d files", len(paths))

	limit := opts.Limit
	result := &domain.BatchResult{DryRun: opts.DryRun}
	remaining := limit

	for _, path := range paths {
		if limit > 0 && remaining == 0 {
			result.Truncated = true
			break
		}

		content, err := s.files.ReadFile(ctx, path)
		if err != nil {
			logger.Warn("Skipping %s: %v", path, err)
			result.Files = append(result.Files, domain.FileResult{Path: path, Err: err})
			continue
		}

		budget := -1
		if limit > 0 {
			budget = remaining + 1
		}
		matches := collectMatches(pat, path, content, budget)
		if limit > 0 && len(matches) > remaining {
			matches = matches[:remaining]
			result.Truncated = true
		}
		if limit > 0 {
			remaining -= len(matches)
		}

		fr := domain.FileResult{Path: path, Matches: matches}
		result.TotalMatches += len(matches)

		if len(matches) > 0 {
			fr.Edits = buildEdits(matches, tmpl)
			fr.NewContent = applyEdits(content, fr.Edits)
			fr.Rewritten = fr.NewContent != content

			if fr.Rewritten {
				result.FilesChanged++
				if opts.DryRun {
					logger.Debug("%s: %d replacements (dry run)", path, len(matches))
				} else if err := s.files.WriteFile(ctx, path, fr.NewContent); err != nil {
					logger.Warn("Write failed for %s: %v", path, err)
					fr.Err = err
				} else {
					fr.Written = true
					logger.Debug("%s: %d replacements written", path, len(matches))
				}
			}
		}

		result.Files = append(result.Files, fr)
	}

	logger.Info("Replace complete: %d replacements in %d files (dry_run=%t, truncated=%t)",
		result.TotalMatches, result.FilesChanged, result.DryRun, result.Truncated)

	return result, nil
}
