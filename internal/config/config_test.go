package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var allKeys = []string{
	"SHELF_CATALOG", "SHELF_ERROR_PRIORITY", "SHELF_WARN_PRIORITY",
	"SHELF_AUTO_APPLY_THRESHOLD", "SHELF_OUTPUT", "SHELF_OUTPUT_FILE",
	"SHELF_OUTPUT_PRETTY", "SHELF_OUTPUT_MAX_SIZE", "SHELF_VERBOSITY",
	"SHELF_LOG_LEVEL",
}

// clearEnv unsets every Shelf variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Engine.CatalogPath != "" {
		t.Fatalf("expected empty CatalogPath, got %q", cfg.Engine.CatalogPath)
	}
	if cfg.Engine.ErrorPriority != 9 || cfg.Engine.WarnPriority != 7 {
		t.Fatalf("expected priorities 9/7, got %d/%d", cfg.Engine.ErrorPriority, cfg.Engine.WarnPriority)
	}
	if cfg.Engine.AutoApplyThreshold != 0.3 {
		t.Fatalf("expected default AutoApplyThreshold=0.3, got %v", cfg.Engine.AutoApplyThreshold)
	}
	if cfg.Output.Format != "ndjson" {
		t.Fatalf("expected default Format='ndjson', got %q", cfg.Output.Format)
	}
	if cfg.Output.Pretty {
		t.Fatal("expected default Pretty=false")
	}
	if cfg.Output.Verbosity != "standard" {
		t.Fatalf("expected default Verbosity='standard', got %q", cfg.Output.Verbosity)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default LogLevel='info', got %q", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate, got: %v", err)
	}
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHELF_ERROR_PRIORITY", "10")
	t.Setenv("SHELF_WARN_PRIORITY", "8")
	t.Setenv("SHELF_AUTO_APPLY_THRESHOLD", "0.55")
	t.Setenv("SHELF_OUTPUT", "text")
	t.Setenv("SHELF_OUTPUT_FILE", "/tmp/verdicts.ndjson")
	t.Setenv("SHELF_OUTPUT_PRETTY", "true")
	t.Setenv("SHELF_OUTPUT_MAX_SIZE", "1048576")
	t.Setenv("SHELF_VERBOSITY", "minimal")
	t.Setenv("SHELF_LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.Engine.ErrorPriority != 10 || cfg.Engine.WarnPriority != 8 {
		t.Fatalf("expected priorities 10/8, got %d/%d", cfg.Engine.ErrorPriority, cfg.Engine.WarnPriority)
	}
	if cfg.Engine.AutoApplyThreshold != 0.55 {
		t.Fatalf("expected AutoApplyThreshold=0.55, got %v", cfg.Engine.AutoApplyThreshold)
	}
	if cfg.Output.Format != "text" || !cfg.Output.Pretty || cfg.Output.Verbosity != "minimal" {
		t.Fatalf("unexpected output config: %+v", cfg.Output)
	}
	if cfg.Output.FilePath != "/tmp/verdicts.ndjson" || cfg.Output.MaxSize != 1048576 {
		t.Fatalf("unexpected file output config: %+v", cfg.Output)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected LogLevel='debug', got %q", cfg.LogLevel)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	env := "SHELF_OUTPUT_FILE=from-dotenv.ndjson\nSHELF_WARN_PRIORITY=6\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("SHELF_WARN_PRIORITY", "5")

	cfg := Load()

	if cfg.Output.FilePath != "from-dotenv.ndjson" {
		t.Fatalf("expected FilePath from .env, got %q", cfg.Output.FilePath)
	}
	if cfg.Engine.WarnPriority != 5 {
		t.Fatalf("expected environment to win over .env, got WarnPriority=%d", cfg.Engine.WarnPriority)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHELF_ERROR_PRIORITY", "high")
	t.Setenv("SHELF_AUTO_APPLY_THRESHOLD", "most")
	t.Setenv("SHELF_OUTPUT_PRETTY", "sometimes")

	cfg := Load()

	if cfg.Engine.ErrorPriority != 9 {
		t.Fatalf("expected fallback ErrorPriority=9, got %d", cfg.Engine.ErrorPriority)
	}
	if cfg.Engine.AutoApplyThreshold != 0.3 {
		t.Fatalf("expected fallback threshold 0.3, got %v", cfg.Engine.AutoApplyThreshold)
	}
	if cfg.Output.Pretty {
		t.Fatal("expected fallback Pretty=false")
	}
}

// --- Validation tests ---

func validConfig(t *testing.T) Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("rules: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return Config{
		Engine: EngineConfig{
			CatalogPath:        path,
			ErrorPriority:      9,
			WarnPriority:       7,
			AutoApplyThreshold: 0.3,
		},
		Output:   OutputConfig{Format: "ndjson", Verbosity: "standard"},
		LogLevel: "info",
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected nil error for valid config, got: %v", err)
	}
}

func TestValidate_Single(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing catalog", func(c *Config) { c.Engine.CatalogPath = "/nonexistent/catalog.yaml" }, "catalog"},
		{"inverted priorities", func(c *Config) { c.Engine.ErrorPriority = 6 }, "priority"},
		{"threshold above one", func(c *Config) { c.Engine.AutoApplyThreshold = 1.5 }, "threshold"},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, "format"},
		{"bad verbosity", func(c *Config) { c.Output.Verbosity = "full" }, "verbosity"},
		{"negative max size", func(c *Config) { c.Output.MaxSize = -1 }, "max size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error to mention %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := validConfig(t)
	cfg.Engine.AutoApplyThreshold = -0.1
	cfg.Output.Format = "xml"
	cfg.Output.Verbosity = "loud"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for multiple bad fields")
	}
	msg := err.Error()
	for _, want := range []string{"threshold", "format", "verbosity"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error to mention %q, got: %v", want, msg)
		}
	}
}

// --- getenvInt tests ---

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		envVal   string
		set      bool
		fallback int
		want     int
	}{
		{"empty uses fallback", "", false, 1000, 1000},
		{"valid int", "500", true, 1000, 500},
		{"zero", "0", true, 1000, 0},
		{"invalid falls back", "abc", true, 1000, 1000},
		{"negative", "-1", true, 1000, -1},
	}

	const key = "SHELF_TEST_GETENVINT"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv(key, tt.envVal)
			} else {
				os.Unsetenv(key)
			}
			got := getenvInt(key, tt.fallback)
			if got != tt.want {
				t.Errorf("getenvInt(%q, %d) = %d, want %d", tt.envVal, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestVersion_IsSet(t *testing.T) {
	if Version == "" {
		t.Fatal("expected non-empty Version constant")
	}
}
