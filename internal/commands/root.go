package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/payapp-dev/payapp/internal/buildinfo"
	"github.com/payapp-dev/payapp/internal/config"
	"github.com/payapp-dev/payapp/internal/logging"
)

// ConfigFile is the workspace configuration file name.
const ConfigFile = "payapp.yaml"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var logLevel string
	var logFormat string

	rootCmd := &cobra.Command{
		Use:     "payapp",
		Short:   "Construction pay application extraction and billing",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(logging.Config{Level: logLevel, Format: logFormat})
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newComputeCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newExportCommand())

	return rootCmd
}

// loadConfig reads payapp.yaml from the workspace, falling back to
// defaults when the file does not exist.
func loadConfig(dir string) *config.Config {
	cfg, err := config.Load(filepath.Join(dir, ConfigFile))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		return config.Default("")
	}
	return cfg
}
