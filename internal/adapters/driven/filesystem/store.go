// Package filesystem implements the driven.FileStore port against the
// local filesystem, with doublestar glob expansion.
package filesystem

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Osso/regex-replace-mcp/internal/core/domain"
	"github.com/Osso/regex-replace-mcp/internal/core/ports/driven"
	"github.com/Osso/regex-replace-mcp/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.FileStore = (*Store)(nil)

const (
	// defaultMaxFileSize caps file reads at 10MB unless configured.
	defaultMaxFileSize = 10 << 20

	// binaryProbeSize is how many leading bytes are scanned for NUL.
	binaryProbeSize = 8000
)

// Store accesses files on the local filesystem.
type Store struct {
	maxFileSize int64
}

// NewStore creates a filesystem store. A non-positive maxFileSize
// selects the 10MB default.
func NewStore(maxFileSize int64) *Store {
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxFileSize
	}
	return &Store{maxFileSize: maxFileSize}
}

// ExpandGlob resolves a doublestar glob to regular files, sorted
// lexically so the order is deterministic across calls.
func (s *Store) ExpandGlob(_ context.Context, pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Lstat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		paths = append(paths, m)
	}
	sort.Strings(paths)

	logger.Debug("Glob %q resolved to %d files", pattern, len(paths))
	return paths, nil
}

// ReadFile returns the file's content as text. Binary content fails
// with domain.ErrNotText, oversized files with domain.ErrFileTooLarge.
func (s *Store) ReadFile(_ context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > s.maxFileSize {
		return "", fmt.Errorf("%w: %s is %d bytes", domain.ErrFileTooLarge, path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !isText(data) {
		return "", fmt.Errorf("%w: %s", domain.ErrNotText, path)
	}

	return string(data), nil
}

// WriteFile replaces the file's content, keeping its existing
// permission bits when the file already exists.
func (s *Store) WriteFile(_ context.Context, path, content string) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(content), mode)
}

// isText reports whether data looks like text: no NUL byte in the
// leading probe window and valid UTF-8 throughout.
func isText(data []byte) bool {
	probe := data
	if len(probe) > binaryProbeSize {
		probe = probe[:binaryProbeSize]
	}
	if bytes.IndexByte(probe, 0) >= 0 {
		return false
	}
	return utf8.Valid(data)
}
