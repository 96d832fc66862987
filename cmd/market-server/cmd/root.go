// Package cmd implements the CLI commands of market-server.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chzzmarket/market-api/internal/config"
	"github.com/chzzmarket/market-api/pkg/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "market-server",
	Short: "Marketplace product API",
	Long: "An API server for a second-hand marketplace: paged pre-registration listings\n" +
		"by category, owner and likes, product details, and owner commands that\n" +
		"create, edit, delete, like and auction products.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(
		serveCommand(),
		migrateCommand(),
		usersCommand(),
		tokenCommand(),
		sweepCommand(),
		openapiCommand(),
		versionCommand(),
	)
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(logger.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: "market-server",
		Version: Version,
	})
	return cfg, log, nil
}
