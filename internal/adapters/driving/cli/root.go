// Package cli wires the cobra command tree to the core services.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/Osso/regex-replace-mcp/internal/adapters/driven/config/file"
	"github.com/Osso/regex-replace-mcp/internal/adapters/driven/filesystem"
	"github.com/Osso/regex-replace-mcp/internal/core/ports/driven"
	"github.com/Osso/regex-replace-mcp/internal/core/ports/driving"
	"github.com/Osso/regex-replace-mcp/internal/core/services"
	"github.com/Osso/regex-replace-mcp/internal/logger"
)

const version = "0.1.0"

var (
	verboseFlag   bool
	configDirFlag string

	fileStore      driven.FileStore
	configStore    driven.ConfigStore
	searchService  driving.SearchService
	replaceService driving.ReplaceService
)

var rootCmd = &cobra.Command{
	Use:   "regex-replace-mcp",
	Short: "Regex search and find-and-replace across files",
	Long: `Regex-based search and find-and-replace across glob-selected files.

Runs either as a one-shot CLI (search, replace) or as an MCP server
(mcp serve) exposing the regex_search and regex_replace tools to AI
assistants.`,
	PersistentPreRunE: initServices,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "configuration directory (default ~/.regexmcp)")
}

// initServices builds the adapter and service graph. Tests inject their
// own services before Execute, in which case wiring is skipped.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if searchService != nil && replaceService != nil {
		return nil
	}

	store, err := configfile.NewConfigStore(configDirFlag)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	configStore = store

	fileStore = filesystem.NewStore(int64(configStore.GetInt("files.max_size")))
	searchService = services.NewSearchService(fileStore, configStore)
	replaceService = services.NewReplaceService(fileStore, configStore)

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
