package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/mongotour/internal/config"
	"github.com/dbsmedya/mongotour/internal/logger"
	"github.com/dbsmedya/mongotour/internal/store"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify connectivity to the configured store",
	Long: `Check loads the configuration, connects to the store, pings it, and
releases the connection. Useful before running the tour.

Example:
  mongotour check --config mongotour.yaml`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.ConnectTimeout)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx := context.Background()

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

	if err := st.Ping(ctx); err != nil {
		return fmt.Errorf("connectivity check failed: %w", err)
	}

	cmd.Printf("connection OK: %s/%s\n", cfg.Store.Database, cfg.Store.Collection)
	return nil
}
