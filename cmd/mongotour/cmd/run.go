package cmd

import (
	"context"
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/mongotour/internal/catalog"
	"github.com/dbsmedya/mongotour/internal/config"
	"github.com/dbsmedya/mongotour/internal/logger"
	"github.com/dbsmedya/mongotour/internal/runner"
	"github.com/dbsmedya/mongotour/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full operation tour against the configured collection",
	Long: `Run connects to the configured MongoDB collection, executes every
catalog entry in order, and prints each result. The first failing
operation aborts the remaining entries; mutations already applied are
not undone. The connection is released on every exit path.

Example:
  mongotour run --config mongotour.yaml`,
	RunE: runTour,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runTour(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.ConnectTimeout)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log = log.WithCollection(cfg.Store.Database, cfg.Store.Collection)

	log.Infow("Starting tour", "config", configFile)

	ctx := context.Background()

	// Connect to the store
	st, err := store.Open(ctx, &cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	defer func() {
		if closeErr := st.Close(context.Background()); closeErr != nil {
			log.Warnw("Error closing connection", "error", closeErr)
		}
		cmd.Println("connection closed")
	}()

	// Execute the catalog
	r := runner.New(st, log, cmd.OutOrStdout())
	if err := r.Run(ctx, catalog.New()); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), color.Red.Sprint(err.Error()))
		return fmt.Errorf("tour failed: %w", err)
	}

	log.Infow("Tour complete")
	return nil
}
