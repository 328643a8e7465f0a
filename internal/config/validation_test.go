package config

import (
	"strings"
	"testing"
)

func TestValidateDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got: %v", err)
	}
}

func TestValidateMissingURI(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.URI = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for missing uri")
	}
	if !strings.Contains(err.Error(), "store.uri") {
		t.Errorf("expected error to name store.uri, got: %v", err)
	}
}

func TestValidateBadScheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.URI = "mysql://localhost:3306"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for non-mongodb uri")
	}
	if !strings.Contains(err.Error(), "mongodb://") {
		t.Errorf("expected error to mention scheme, got: %v", err)
	}
}

func TestValidateSRVScheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.URI = "mongodb+srv://cluster0.example.net"

	if err := cfg.Validate(); err != nil {
		t.Errorf("mongodb+srv uri should be valid, got: %v", err)
	}
}

func TestValidateMissingNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.Database = ""
	cfg.Store.Collection = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors for missing names")
	}

	msg := err.Error()
	if !strings.Contains(msg, "store.database") {
		t.Errorf("expected error to name store.database, got: %v", err)
	}
	if !strings.Contains(msg, "store.collection") {
		t.Errorf("expected error to name store.collection, got: %v", err)
	}
}

func TestValidateNegativeValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.ConnectTimeoutSeconds = -1
	cfg.Store.MaxRetries = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors for negative values")
	}

	msg := err.Error()
	if !strings.Contains(msg, "connect_timeout_seconds") {
		t.Errorf("expected error to name connect_timeout_seconds, got: %v", err)
	}
	if !strings.Contains(msg, "max_retries") {
		t.Errorf("expected error to name max_retries, got: %v", err)
	}
}

func TestValidateLogging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{"valid debug/json", "debug", "json", false},
		{"valid empty", "", "", false},
		{"bad level", "trace", "text", true},
		{"bad format", "info", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "store.uri", Message: "uri is required"},
		{Field: "store.database", Message: "database name is required"},
	}

	msg := errs.Error()
	if !strings.Contains(msg, "validation failed") {
		t.Errorf("expected header in message, got: %s", msg)
	}
	if !strings.Contains(msg, "store.uri: uri is required") {
		t.Errorf("expected first error in message, got: %s", msg)
	}

	var empty ValidationErrors
	if empty.Error() != "" {
		t.Errorf("empty ValidationErrors should render empty string")
	}
}
