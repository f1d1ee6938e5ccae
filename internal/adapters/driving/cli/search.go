package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Osso/regex-replace-mcp/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [pattern] [glob]",
	Short: "Search for regex matches across files",
	Long: `Searches for regex pattern matches across the files selected by a
glob pattern. Prints one line per match as path:line: text.

The limit bounds the total number of matches across all files; once it
is reached, remaining files are not even opened.`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of matches (default 50)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	pattern, glob := args[0], args[1]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	ctx := context.Background()
	opts := domain.SearchOptions{Limit: searchLimit}

	result, err := searchService.Search(ctx, pattern, glob, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, result)
	}

	return outputSearchText(cmd, result)
}

func outputJSON(cmd *cobra.Command, result *domain.BatchResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchText(cmd *cobra.Command, result *domain.BatchResult) error {
	if len(result.Files) == 0 {
		cmd.Println("No files matched the glob pattern.")
		return nil
	}
	if result.TotalMatches == 0 {
		cmd.Println("No matches found.")
		return nil
	}

	for i := range result.Files {
		fr := &result.Files[i]
		if fr.Err != nil {
			cmd.Printf("Skipping %s: %v\n", fr.Path, fr.Err)
			continue
		}
		for _, m := range fr.Matches {
			cmd.Printf("%s:%d: %s\n", m.Path, m.Line, strings.TrimSpace(m.Text))
		}
	}

	cmd.Println()
	if result.Truncated {
		cmd.Printf("Total: %d matches (truncated by limit)\n", result.TotalMatches)
	} else {
		cmd.Printf("Total: %d matches\n", result.TotalMatches)
	}

	return nil
}
