package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile        string
	logLevel       string
	logFormat      string
	connectTimeout int
)

var rootCmd = &cobra.Command{
	Use:   "mongotour",
	Short: "MongoDB Collection Tour",
	Long: `A CLI tool that runs a fixed catalog of queries, updates, aggregations,
index builds, and explain plans against one MongoDB collection, printing
each result as readable console lines.

The tour covers:
  - Filtered finds with projection, sorting, and pagination
  - A single-document update and a single-document delete
  - Grouping pipelines (averages, top counts, decade buckets)
  - Single-field and compound index creation
  - Explain-plan statistics before and after indexing`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "mongotour.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Connection overrides
	rootCmd.PersistentFlags().IntVar(&connectTimeout, "connect-timeout", 0,
		"Override connect timeout in seconds")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel       string
	LogFormat      string
	ConnectTimeout int
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:       logLevel,
		LogFormat:      logFormat,
		ConnectTimeout: connectTimeout,
	}
}
