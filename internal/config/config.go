package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Version is the current Shelf release.
const Version = "0.4.0"

// Config holds all Shelf configuration.
type Config struct {
	Engine   EngineConfig
	Output   OutputConfig
	LogLevel string
}

// EngineConfig holds classification engine settings.
type EngineConfig struct {
	CatalogPath        string // empty: built-in catalog
	ErrorPriority      int
	WarnPriority       int
	AutoApplyThreshold float64
}

// OutputConfig holds verdict output settings.
type OutputConfig struct {
	Format    string // "ndjson" or "text"
	FilePath  string // also write NDJSON here when set
	Pretty    bool
	MaxSize   int64  // file rotation threshold in bytes; 0 disables rotation
	Verbosity string // "minimal" or "standard"
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is read first; variables
// already set in the environment win over it.
func Load() Config {
	_ = godotenv.Load() // a missing .env is fine

	return Config{
		Engine: EngineConfig{
			CatalogPath:        os.Getenv("SHELF_CATALOG"),
			ErrorPriority:      getenvInt("SHELF_ERROR_PRIORITY", 9),
			WarnPriority:       getenvInt("SHELF_WARN_PRIORITY", 7),
			AutoApplyThreshold: getenvFloat("SHELF_AUTO_APPLY_THRESHOLD", 0.3),
		},
		Output: OutputConfig{
			Format:    getenv("SHELF_OUTPUT", "ndjson"),
			FilePath:  os.Getenv("SHELF_OUTPUT_FILE"),
			Pretty:    getenvBool("SHELF_OUTPUT_PRETTY", false),
			MaxSize:   int64(getenvInt("SHELF_OUTPUT_MAX_SIZE", 0)),
			Verbosity: getenv("SHELF_VERBOSITY", "standard"),
		},
		LogLevel: getenv("SHELF_LOG_LEVEL", "info"),
	}
}

// Validate checks the configuration and reports every problem at once.
func (c Config) Validate() error {
	var errs []error

	if c.Engine.CatalogPath != "" {
		if _, err := os.Stat(c.Engine.CatalogPath); err != nil {
			errs = append(errs, fmt.Errorf("catalog file: %w", err))
		}
	}
	if c.Engine.ErrorPriority < c.Engine.WarnPriority {
		errs = append(errs, fmt.Errorf("error priority %d must not be below warn priority %d",
			c.Engine.ErrorPriority, c.Engine.WarnPriority))
	}
	if c.Engine.AutoApplyThreshold < 0 || c.Engine.AutoApplyThreshold > 1 {
		errs = append(errs, fmt.Errorf("auto-apply threshold %v outside [0,1]", c.Engine.AutoApplyThreshold))
	}
	switch c.Output.Format {
	case "ndjson", "text":
	default:
		errs = append(errs, fmt.Errorf("output format %q: want ndjson or text", c.Output.Format))
	}
	switch c.Output.Verbosity {
	case "minimal", "standard":
	default:
		errs = append(errs, fmt.Errorf("verbosity %q: want minimal or standard", c.Output.Verbosity))
	}
	if c.Output.MaxSize < 0 {
		errs = append(errs, fmt.Errorf("output max size %d is negative", c.Output.MaxSize))
	}

	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
