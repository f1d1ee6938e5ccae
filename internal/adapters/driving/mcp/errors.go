// Package mcp provides an MCP (Model Context Protocol) server adapter
// for the regex replace engine. It exposes the regex_search and
// regex_replace tools to AI assistants over stdio or HTTP.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingReplaceService is returned when the replace service is not provided.
var ErrMissingReplaceService = errors.New("mcp: replace service is required")
