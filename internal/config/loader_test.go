package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")

	configContent := `
store:
  uri: mongodb://db.example.com:27017
  database: library
  collection: novels
  connect_timeout_seconds: 5
  max_retries: 2

logging:
  level: debug
  format: text
  output: stderr
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Store.URI != "mongodb://db.example.com:27017" {
		t.Errorf("expected store uri 'mongodb://db.example.com:27017', got %s", cfg.Store.URI)
	}
	if cfg.Store.Database != "library" {
		t.Errorf("expected database 'library', got %s", cfg.Store.Database)
	}
	if cfg.Store.Collection != "novels" {
		t.Errorf("expected collection 'novels', got %s", cfg.Store.Collection)
	}
	if cfg.Store.ConnectTimeoutSeconds != 5 {
		t.Errorf("expected connect_timeout_seconds 5, got %d", cfg.Store.ConnectTimeoutSeconds)
	}
	if cfg.Store.MaxRetries != 2 {
		t.Errorf("expected max_retries 2, got %d", cfg.Store.MaxRetries)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected logging level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected logging format 'text', got %s", cfg.Logging.Format)
	}
}

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minimal.yaml")

	// Only override the database; everything else should fall back to defaults
	configContent := `
store:
  database: library
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Store.URI != "mongodb://localhost:27017" {
		t.Errorf("expected default uri, got %s", cfg.Store.URI)
	}
	if cfg.Store.Database != "library" {
		t.Errorf("expected database 'library', got %s", cfg.Store.Database)
	}
	if cfg.Store.Collection != "books" {
		t.Errorf("expected default collection 'books', got %s", cfg.Store.Collection)
	}
	if cfg.Store.MaxRetries != 3 {
		t.Errorf("expected default max_retries 3, got %d", cfg.Store.MaxRetries)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default logging level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing config file, got nil")
	}
}

func TestEnvVarSubstitution(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "env.yaml")

	configContent := `
store:
  uri: ${TEST_MONGO_URI}
  database: $TEST_MONGO_DB
  collection: books
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("TEST_MONGO_URI", "mongodb://secret-host:27017")
	t.Setenv("TEST_MONGO_DB", "secretdb")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Store.URI != "mongodb://secret-host:27017" {
		t.Errorf("expected substituted uri, got %s", cfg.Store.URI)
	}
	if cfg.Store.Database != "secretdb" {
		t.Errorf("expected substituted database, got %s", cfg.Store.Database)
	}
}

func TestEnvVarSubstitutionMissingVar(t *testing.T) {
	// Unset variables are left as-is
	result := expandEnvVar("${DEFINITELY_NOT_SET_mongotour}")
	if result != "${DEFINITELY_NOT_SET_mongotour}" {
		t.Errorf("expected unset variable to remain, got %s", result)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()

	cfg.ApplyOverrides("debug", "json", 30)

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level override 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected format override 'json', got %s", cfg.Logging.Format)
	}
	if cfg.Store.ConnectTimeoutSeconds != 30 {
		t.Errorf("expected connect timeout override 30, got %d", cfg.Store.ConnectTimeoutSeconds)
	}

	// Zero values must not override
	cfg.ApplyOverrides("", "", 0)
	if cfg.Logging.Level != "debug" {
		t.Errorf("empty override should not reset level, got %s", cfg.Logging.Level)
	}
	if cfg.Store.ConnectTimeoutSeconds != 30 {
		t.Errorf("zero override should not reset timeout, got %d", cfg.Store.ConnectTimeoutSeconds)
	}
}
