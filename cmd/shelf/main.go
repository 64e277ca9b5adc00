package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/shelf/internal/catalog"
	"github.com/crimson-sun/shelf/internal/config"
	"github.com/crimson-sun/shelf/internal/engine"
	"github.com/crimson-sun/shelf/internal/engine/validator"
	"github.com/crimson-sun/shelf/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by every subcommand once the root pre-run has
// loaded configuration and built the engine.
type app struct {
	cfg     config.Config
	catalog catalog.Catalog
	engine  *engine.Engine

	catalogPath string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "shelf",
		Short: "Marketplace category classification and taxonomy checks",
		Long: `Shelf classifies Thai and English listing text into a marketplace category
tree, resolves external category labels, derives attribute forms, and warns
when a chosen subcategory contradicts the listing title.`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "catalog YAML file (default: built-in catalog, or $SHELF_CATALOG)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default: $SHELF_LOG_LEVEL or info)")

	root.AddCommand(
		newClassifyCmd(a),
		newResolveCmd(a),
		newAttrsCmd(a),
		newValidateCmd(a),
		newTreeCmd(a),
		newSearchCmd(a),
		newBreadcrumbCmd(a),
		newCheckCmd(a),
		newExportCmd(a),
	)
	return root
}

// setup loads configuration, applies flag overrides, and builds the engine.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Load()
	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Engine.CatalogPath = a.catalogPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	// JSON logs unless results are rendered as text.
	logging.Init(cmd.ErrOrStderr(), cfg.Output.Format != "text", logging.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	cat := catalog.Default()
	if cfg.Engine.CatalogPath != "" {
		var err error
		if cat, err = catalog.LoadFile(cfg.Engine.CatalogPath); err != nil {
			return err
		}
	}

	eng, err := engine.Build(cat, engine.Config{
		Policy: validator.Policy{
			ErrorPriority: cfg.Engine.ErrorPriority,
			WarnPriority:  cfg.Engine.WarnPriority,
		},
		AutoApplyThreshold: cfg.Engine.AutoApplyThreshold,
	})
	if err != nil {
		return err
	}
	slog.Debug("engine ready", "catalog", cfg.Engine.CatalogPath, "version", config.Version)

	a.cfg, a.catalog, a.engine = cfg, cat, eng
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
