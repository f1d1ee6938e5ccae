package services

import (
	"context"
	"fmt"
	"os"
)

// mockFileStore is an in-memory driven.FileStore that records which
// files were opened and written.
type mockFileStore struct {
	// order is the glob expansion order.
	order []string

	// files maps path to content.
	files map[string]string

	// readErrs injects per-path read failures.
	readErrs map[string]error

	// writeErrs injects per-path write failures.
	writeErrs map[string]error

	globErr error

	opened  []string
	written map[string]string
}

func newMockFileStore() *mockFileStore {
	return &mockFileStore{
		files:     make(map[string]string),
		readErrs:  make(map[string]error),
		writeErrs: make(map[string]error),
		written:   make(map[string]string),
	}
}

func (m *mockFileStore) add(path, content string) {
	m.order = append(m.order, path)
	m.files[path] = content
}

func (m *mockFileStore) ExpandGlob(_ context.Context, _ string) ([]string, error) {
	if m.globErr != nil {
		return nil, m.globErr
	}
	return append([]string(nil), m.order...), nil
}

func (m *mockFileStore) ReadFile(_ context.Context, path string) (string, error) {
	m.opened = append(m.opened, path)
	if err := m.readErrs[path]; err != nil {
		return "", err
	}
	content, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}
	return content, nil
}

func (m *mockFileStore) WriteFile(_ context.Context, path, content string) error {
	if err := m.writeErrs[path]; err != nil {
		return err
	}
	m.files[path] = content
	m.written[path] = content
	return nil
}

// mockConfigStore is a map-backed driven.ConfigStore.
type mockConfigStore struct {
	data map[string]any
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if s, ok := m.data[key].(string); ok {
		return s
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	if n, ok := m.data[key].(int); ok {
		return n
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	if b, ok := m.data[key].(bool); ok {
		return b
	}
	return false
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.data[key] = value
	return nil
}

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return "" }
