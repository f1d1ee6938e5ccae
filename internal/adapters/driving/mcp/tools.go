package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Osso/regex-replace-mcp/internal/core/domain"
)

// SearchInput is the input schema for the regex_search tool.
type SearchInput struct {
	Pattern string `json:"pattern" jsonschema:"regex pattern to search for (Go regexp syntax)"`
	Files   string `json:"files" jsonschema:"glob pattern for files to search (e.g. 'src/**/*.go')"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum matches to return (default 50)"`
}

// ReplaceInput is the input schema for the regex_replace tool.
type ReplaceInput struct {
	Pattern     string `json:"pattern" jsonschema:"regex pattern to match (Go regexp syntax)"`
	Replacement string `json:"replacement" jsonschema:"replacement text; $1..$N insert capture groups, $0 the whole match, $$ a literal dollar"`
	Files       string `json:"files" jsonschema:"glob pattern for files to process (e.g. 'src/**/*.php')"`
	DryRun      bool   `json:"dry_run,omitempty" jsonschema:"preview changes without writing (default false)"`
	Limit       int    `json:"limit,omitempty" jsonschema:"maximum replacements to apply (default unlimited)"`
}

// MatchOutput is a single search hit.
type MatchOutput struct {
	Path   string   `json:"path"`
	Line   int      `json:"line"`
	Start  int      `json:"start"`
	End    int      `json:"end"`
	Text   string   `json:"text"`
	Groups []string `json:"groups,omitempty"`
}

// FileErrorOutput reports a per-file failure that did not abort the batch.
type FileErrorOutput struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// SearchOutput is the output schema for the regex_search tool.
type SearchOutput struct {
	Matches   []MatchOutput     `json:"matches"`
	Total     int               `json:"total"`
	Truncated bool              `json:"truncated"`
	Errors    []FileErrorOutput `json:"errors,omitempty"`
}

// EditOutput is one old/new span pair within a file.
type EditOutput struct {
	Line int    `json:"line"`
	Old  string `json:"old"`
	New  string `json:"new"`
}

// FileChangeOutput summarises the edits applied to one file.
type FileChangeOutput struct {
	Path         string       `json:"path"`
	Replacements int          `json:"replacements"`
	Written      bool         `json:"written"`
	Edits        []EditOutput `json:"edits"`
}

// ReplaceOutput is the output schema for the regex_replace tool.
type ReplaceOutput struct {
	Files             []FileChangeOutput `json:"files"`
	TotalReplacements int                `json:"total_replacements"`
	FilesChanged      int                `json:"files_changed"`
	DryRun            bool               `json:"dry_run"`
	Truncated         bool               `json:"truncated"`
	Errors            []FileErrorOutput  `json:"errors,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "regex_search",
		Description: "Search for regex pattern matches across files. " +
			"Returns matched text with file paths, line numbers and capture groups.",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "regex_replace",
		Description: "Replace text matching a regex pattern across multiple files. " +
			"Supports capture groups ($1, $2, etc.) in the replacement. " +
			"Returns the old/new spans per file.",
	}, s.handleReplace)
}

// handleSearch handles the regex_search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{Limit: input.Limit}
	result, err := s.ports.Search.Search(ctx, input.Pattern, input.Files, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Matches:   make([]MatchOutput, 0, result.TotalMatches),
		Total:     result.TotalMatches,
		Truncated: result.Truncated,
	}

	for i := range result.Files {
		fr := &result.Files[i]
		if fr.Err != nil {
			output.Errors = append(output.Errors, FileErrorOutput{
				Path:   fr.Path,
				Reason: fr.Err.Error(),
			})
			continue
		}
		for _, m := range fr.Matches {
			output.Matches = append(output.Matches, MatchOutput{
				Path:   m.Path,
				Line:   m.Line,
				Start:  m.Start,
				End:    m.End,
				Text:   m.Text,
				Groups: groupTexts(m.Groups),
			})
		}
	}

	return nil, output, nil
}

// handleReplace handles the regex_replace tool invocation.
func (s *Server) handleReplace(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReplaceInput,
) (*mcp.CallToolResult, ReplaceOutput, error) {
	opts := domain.ReplaceOptions{DryRun: input.DryRun, Limit: input.Limit}
	result, err := s.ports.Replace.Replace(ctx, input.Pattern, input.Replacement, input.Files, opts)
	if err != nil {
		return nil, ReplaceOutput{}, err
	}

	output := ReplaceOutput{
		Files:             make([]FileChangeOutput, 0, result.FilesChanged),
		TotalReplacements: result.TotalMatches,
		FilesChanged:      result.FilesChanged,
		DryRun:            result.DryRun,
		Truncated:         result.Truncated,
	}

	for i := range result.Files {
		fr := &result.Files[i]
		if fr.Err != nil {
			output.Errors = append(output.Errors, FileErrorOutput{
				Path:   fr.Path,
				Reason: fr.Err.Error(),
			})
			continue
		}
		if len(fr.Edits) == 0 {
			continue
		}

		change := FileChangeOutput{
			Path:         fr.Path,
			Replacements: len(fr.Matches),
			Written:      fr.Written,
			Edits:        make([]EditOutput, len(fr.Edits)),
		}
		for j, e := range fr.Edits {
			change.Edits[j] = EditOutput{Line: e.Line, Old: e.Old, New: e.New}
		}
		output.Files = append(output.Files, change)
	}

	return nil, output, nil
}

// groupTexts flattens capture groups to their text, empty for groups
// that did not participate in the match.
func groupTexts(groups []domain.Group) []string {
	texts := make([]string, len(groups))
	for i, g := range groups {
		if g.Matched {
			texts[i] = g.Text
		}
	}
	return texts
}
