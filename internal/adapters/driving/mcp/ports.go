package mcp

import (
	"github.com/Osso/regex-replace-mcp/internal/core/ports/driven"
	"github.com/Osso/regex-replace-mcp/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search finds pattern matches across files.
	Search driving.SearchService

	// Replace rewrites pattern matches across files.
	Replace driving.ReplaceService

	// Files backs the glob-preview resource. Optional.
	Files driven.FileStore

	// Config backs the config resource. Optional.
	Config driven.ConfigStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Replace == nil {
		return ErrMissingReplaceService
	}
	// Files and Config only feed resources; resources degrade without them.
	return nil
}
