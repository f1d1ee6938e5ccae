package cli

import (
	"context"

	"github.com/Osso/regex-replace-mcp/internal/core/domain"
)

// mockSearchService returns a fixed batch result.
type mockSearchService struct {
	result *domain.BatchResult
	err    error
}

func (m *mockSearchService) Search(
	_ context.Context, _, _ string, _ domain.SearchOptions,
) (*domain.BatchResult, error) {
	if m.result == nil {
		return &domain.BatchResult{}, m.err
	}
	return m.result, m.err
}

// mockReplaceService returns a fixed batch result.
type mockReplaceService struct {
	result *domain.BatchResult
	err    error
}

func (m *mockReplaceService) Replace(
	_ context.Context, _, _, _ string, opts domain.ReplaceOptions,
) (*domain.BatchResult, error) {
	if m.result == nil {
		return &domain.BatchResult{DryRun: opts.DryRun}, m.err
	}
	return m.result, m.err
}

// setupTestServices swaps the package-level services for mocks with
// canned results and returns a cleanup function.
func setupTestServices() func() {
	oldSearch := searchService
	oldReplace := replaceService

	searchService = &mockSearchService{
		result: &domain.BatchResult{
			Files: []domain.FileResult{
				{
					Path: "src/a.go",
					Matches: []domain.Match{
						{Path: "src/a.go", Line: 3, Start: 20, End: 28, Text: "fn foo()"},
					},
				},
			},
			TotalMatches: 1,
		},
	}
	replaceService = &mockReplaceService{
		result: &domain.BatchResult{
			Files: []domain.FileResult{
				{
					Path:    "src/a.go",
					Matches: []domain.Match{{Text: "fn foo()"}},
					Edits: []domain.Edit{
						{Line: 3, Old: "fn foo()", New: "fn foo_v2()"},
					},
					Rewritten: true,
					Written:   true,
				},
			},
			TotalMatches: 1,
			FilesChanged: 1,
		},
	}

	return func() {
		searchService = oldSearch
		replaceService = oldReplace
	}
}
