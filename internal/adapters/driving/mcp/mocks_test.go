package mcp

import (
	"context"

	"github.com/Osso/regex-replace-mcp/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	result *domain.BatchResult
	err    error

	gotPattern string
	gotGlob    string
	gotOpts    domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	pattern, glob string,
	opts domain.SearchOptions,
) (*domain.BatchResult, error) {
	m.gotPattern = pattern
	m.gotGlob = glob
	m.gotOpts = opts
	if m.result == nil {
		return &domain.BatchResult{}, m.err
	}
	return m.result, m.err
}

// mockReplaceService is a mock implementation of driving.ReplaceService.
type mockReplaceService struct {
	result *domain.BatchResult
	err    error

	gotPattern     string
	gotReplacement string
	gotGlob        string
	gotOpts        domain.ReplaceOptions
}

func (m *mockReplaceService) Replace(
	_ context.Context,
	pattern, replacement, glob string,
	opts domain.ReplaceOptions,
) (*domain.BatchResult, error) {
	m.gotPattern = pattern
	m.gotReplacement = replacement
	m.gotGlob = glob
	m.gotOpts = opts
	if m.result == nil {
		return &domain.BatchResult{DryRun: opts.DryRun}, m.err
	}
	return m.result, m.err
}

// mockFileStore is a mock implementation of driven.FileStore.
type mockFileStore struct {
	paths []string
	err   error

	gotPattern string
}

func (m *mockFileStore) ExpandGlob(_ context.Context, pattern string) ([]string, error) {
	m.gotPattern = pattern
	return m.paths, m.err
}

func (m *mockFileStore) ReadFile(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (m *mockFileStore) WriteFile(_ context.Context, _, _ string) error {
	return nil
}
