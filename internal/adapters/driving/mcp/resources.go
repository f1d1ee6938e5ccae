package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for server resources.
const uriScheme = "regexmcp://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource exposing the effective configuration.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "config",
		Name:        "config",
		Description: "Effective server configuration (limits, size caps)",
		MIMEType:    "application/json",
	}, s.handleConfigResource)

	// Template previewing which files a glob would select.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "files/{pattern}",
		Name:        "files",
		Description: "Files a glob pattern would select, in processing order",
		MIMEType:    "application/json",
	}, s.handleFilesResource)
}

// handleConfigResource returns the effective configuration values.
func (s *Server) handleConfigResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type configInfo struct {
		DefaultSearchLimit int    `json:"default_search_limit"`
		MaxFileSize        int    `json:"max_file_size"`
		ConfigPath         string `json:"config_path,omitempty"`
	}

	info := configInfo{DefaultSearchLimit: 50}
	if s.ports.Config != nil {
		if n := s.ports.Config.GetInt("search.default_limit"); n > 0 {
			info.DefaultSearchLimit = n
		}
		info.MaxFileSize = s.ports.Config.GetInt("files.max_size")
		info.ConfigPath = s.ports.Config.Path()
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleFilesResource lists the files a glob pattern resolves to.
func (s *Server) handleFilesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Files == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	pattern := extractGlobPattern(req.Params.URI)
	if pattern == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	paths, err := s.ports.Files.ExpandGlob(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("expanding glob: %w", err)
	}

	data, err := json.MarshalIndent(paths, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling paths: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractGlobPattern extracts the glob from a URI like regexmcp://files/{pattern}.
// The pattern segment is percent-decoded so globs with slashes survive.
func extractGlobPattern(uri string) string {
	const prefix = uriScheme + "files/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	raw := strings.TrimPrefix(uri, prefix)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
