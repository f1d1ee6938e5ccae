package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Osso/regex-replace-mcp/internal/core/domain"
)

var (
	replaceDryRun bool
	replaceLimit  int
	replaceJSON   bool
)

var replaceCmd = &cobra.Command{
	Use:   "replace [pattern] [replacement] [glob]",
	Short: "Replace regex matches across files",
	Long: `Replaces regex pattern matches across the files selected by a glob
pattern. The replacement may reference capture groups: $1..$N insert
group text, $0 the whole match, $$ a literal dollar. A dollar followed
by anything other than digits stays literal, so "$request" is written
out unchanged.

With --dry-run, changes are computed and shown but no file is written.`,
	Args: cobra.ExactArgs(3),
	RunE: runReplace,
}

func init() {
	replaceCmd.Flags().BoolVar(&replaceDryRun, "dry-run", false, "preview changes without writing")
	replaceCmd.Flags().IntVarP(&replaceLimit, "limit", "n", 0, "maximum number of replacements (default unlimited)")
	replaceCmd.Flags().BoolVar(&replaceJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(replaceCmd)
}

func runReplace(cmd *cobra.Command, args []string) error {
	pattern, replacement, glob := args[0], args[1], args[2]

	if replaceService == nil {
		return errors.New("replace service not configured")
	}

	ctx := context.Background()
	opts := domain.ReplaceOptions{DryRun: replaceDryRun, Limit: replaceLimit}

	result, err := replaceService.Replace(ctx, pattern, replacement, glob, opts)
	if err != nil {
		return fmt.Errorf("replace failed: %w", err)
	}

	if replaceJSON {
		return outputJSON(cmd, result)
	}

	return outputReplaceText(cmd, result)
}

func outputReplaceText(cmd *cobra.Command, result *domain.BatchResult) error {
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
		if len(fr.Edits) == 0 {
			continue
		}

		cmd.Printf("--- %s\n", fr.Path)
		for _, e := range fr.Edits {
			cmd.Printf("%d:- %s\n", e.Line, e.Old)
			cmd.Printf("%d:+ %s\n", e.Line, e.New)
		}
		cmd.Println()
	}

	mode := ""
	if result.DryRun {
		mode = " (dry run)"
	}
	cmd.Printf("Total: %s in %s%s\n",
		plural(result.TotalMatches, "replacement"),
		plural(result.FilesChanged, "file"),
		mode)
	if result.Truncated {
		cmd.Println("Replacement limit reached; remaining files untouched.")
	}

	return nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
