package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/shelf/internal/config"
	"github.com/crimson-sun/shelf/internal/output"
	"github.com/crimson-sun/shelf/internal/output/file"
	"github.com/crimson-sun/shelf/internal/output/multi"
	"github.com/crimson-sun/shelf/internal/output/stdout"
	"github.com/crimson-sun/shelf/internal/output/text"
	"github.com/crimson-sun/shelf/internal/pipeline"
)

type checkFlags struct {
	format    string
	filePath  string
	verbosity string
	pretty    bool
	thai      bool
	noColor   bool
	workers   int
	batchSize int
}

func newCheckCmd(a *app) *cobra.Command {
	var f checkFlags
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check NDJSON draft listings and write one verdict per draft",
		Long: `Check reads draft listings, one JSON object per line, from file or stdin.
Each draft is classified, its selection reconciled and validated, and its
attributes checked. One verdict per draft is written in input order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ocfg := a.cfg.Output
			flags := cmd.Flags()
			if flags.Changed("output") {
				ocfg.Format = f.format
			}
			if flags.Changed("output-file") {
				ocfg.FilePath = f.filePath
			}
			if flags.Changed("verbosity") {
				ocfg.Verbosity = f.verbosity
			}
			if flags.Changed("pretty") {
				ocfg.Pretty = f.pretty
			}

			out, err := openOutput(cmd.OutOrStdout(), ocfg, f)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				fh, err := os.Open(args[0])
				if err != nil {
					out.Close()
					return err
				}
				defer fh.Close()
				in = fh
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			opts := []pipeline.Option{}
			if f.workers > 0 {
				opts = append(opts, pipeline.WithWorkers(f.workers))
			}
			if f.batchSize > 0 {
				opts = append(opts, pipeline.WithBatchSize(f.batchSize))
			}
			p := pipeline.New(a.engine, out, opts...)

			_, runErr := p.Run(ctx, in)
			closeErr := p.Close()
			if errors.Is(runErr, context.Canceled) {
				slog.Info("check interrupted")
				return closeErr
			}
			return errors.Join(runErr, closeErr)
		},
	}
	cmd.Flags().StringVar(&f.format, "output", "", "verdict format: ndjson or text (default: $SHELF_OUTPUT or ndjson)")
	cmd.Flags().StringVar(&f.filePath, "output-file", "", "also append NDJSON verdicts to this file")
	cmd.Flags().StringVar(&f.verbosity, "verbosity", "", "minimal or standard (default: $SHELF_VERBOSITY or standard)")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "indent NDJSON written to stdout")
	cmd.Flags().BoolVar(&f.thai, "thai", false, "text output in Thai")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable coloured text output")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "concurrent checks per batch (default: GOMAXPROCS)")
	cmd.Flags().IntVar(&f.batchSize, "batch-size", 0, "drafts checked per batch (default: 64)")
	return cmd
}

// openOutput builds the verdict output for ocfg: stdout in the chosen format,
// fanned out to a rotating file when a path is set.
func openOutput(w io.Writer, ocfg config.OutputConfig, f checkFlags) (output.Output, error) {
	verbosity, err := output.ParseVerbosity(ocfg.Verbosity)
	if err != nil {
		return nil, err
	}

	var primary output.Output
	switch ocfg.Format {
	case "ndjson", "":
		primary = stdout.New(w, verbosity, ocfg.Pretty)
	case "text":
		var opts []text.Option
		if f.noColor {
			opts = append(opts, text.WithColor(false))
		}
		if f.thai {
			opts = append(opts, text.WithThai())
		}
		primary = text.New(w, verbosity, opts...)
	default:
		return nil, fmt.Errorf("unknown output format %q", ocfg.Format)
	}

	if ocfg.FilePath == "" {
		return primary, nil
	}
	fo, err := file.New(ocfg.FilePath, verbosity, file.WithMaxSize(ocfg.MaxSize))
	if err != nil {
		return nil, err
	}
	return multi.New(primary, fo), nil
}
