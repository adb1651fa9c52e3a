package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/nfrund/voxnote/internal/config"
	"github.com/nfrund/voxnote/internal/logging"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the voxnote command tree. Running it without a
// subcommand starts the web server.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "voxnote",
		Short: "VoxNote landing site",
		Long: `VoxNote serves the product landing page and relays Google sign-in
codes to the transcription backend.

Configuration is read from the environment and an optional .env file.

Use "voxnote [command] --help" for more information about a command.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.AddCommand(newServeCmd(), newExchangeCmd(), newVersionCmd())
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration and installs the default logger.
// Validation problems are returned separately: the config is always usable.
func loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	logging.New(cfg.LogFormat, cfg.LogLevel)
	if err != nil && !errors.Is(err, config.ErrMissingField) {
		slog.Warn("Configuration has invalid values", "error", err)
	}
	return cfg, err
}
