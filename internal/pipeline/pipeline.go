package pipeline

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"github.com/crimson-sun/shelf/internal/model"
	"github.com/crimson-sun/shelf/internal/output"
)

const (
	defaultBatchSize = 64
	maxLineSize      = 1 << 20 // 1MB per draft
)

// Checker turns a draft into a verdict. *engine.Engine satisfies it.
type Checker interface {
	Check(d model.Draft) model.Verdict
}

// Stats summarises one run.
type Stats struct {
	Read        int // non-blank input lines
	Checked     int
	Skipped     int // malformed lines
	Publishable int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithBatchSize sets how many drafts are checked together before their
// verdicts are written. Default: 64.
func WithBatchSize(n int) Option {
	return func(p *Pipeline) { p.batchSize = n }
}

// WithWorkers caps concurrent checks within a batch. Default: GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(p *Pipeline) { p.workers = n }
}

// Pipeline connects a draft source, the engine, and an output.
type Pipeline struct {
	checker   Checker
	output    output.Output
	batchSize int
	workers   int
}

// New creates a Pipeline from the given components.
func New(checker Checker, out output.Output, opts ...Option) *Pipeline {
	p := &Pipeline{
		checker:   checker,
		output:    out,
		batchSize: defaultBatchSize,
		workers:   runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.batchSize < 1 {
		p.batchSize = 1
	}
	if p.workers < 1 {
		p.workers = 1
	}
	return p
}

// Run reads NDJSON drafts from r until EOF or cancellation and writes one
// verdict per draft, in input order. Blank lines are ignored; malformed
// lines are logged and skipped. A draft without an ID is given its line number.
func (p *Pipeline) Run(ctx context.Context, r io.Reader) (Stats, error) {
	var stats Stats
	buf := newBatch(p.checker, p.output, p.workers, p.batchSize)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		stats.Read++

		var d model.Draft
		if err := json.Unmarshal([]byte(text), &d); err != nil {
			slog.Warn("skipping malformed draft", "line", line, "error", err)
			stats.Skipped++
			continue
		}
		if d.ID == "" {
			d.ID = strconv.Itoa(line)
		}

		if buf.add(d) {
			if err := p.flush(ctx, buf, &stats); err != nil {
				return stats, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("pipeline read: %w", err)
	}
	if err := p.flush(ctx, buf, &stats); err != nil {
		return stats, err
	}

	slog.Info("batch check complete",
		"read", stats.Read,
		"checked", stats.Checked,
		"skipped", stats.Skipped,
		"publishable", stats.Publishable,
	)
	return stats, nil
}

// Check runs the pipeline over drafts already in memory.
func (p *Pipeline) Check(ctx context.Context, drafts []model.Draft) (Stats, error) {
	stats := Stats{Read: len(drafts)}
	buf := newBatch(p.checker, p.output, p.workers, p.batchSize)
	for _, d := range drafts {
		if buf.add(d) {
			if err := p.flush(ctx, buf, &stats); err != nil {
				return stats, err
			}
		}
	}
	if err := p.flush(ctx, buf, &stats); err != nil {
		return stats, err
	}
	return stats, nil
}

func (p *Pipeline) flush(ctx context.Context, buf *batch, stats *Stats) error {
	checked, publishable, err := buf.flush(ctx)
	stats.Checked += checked
	stats.Publishable += publishable
	if err != nil {
		return fmt.Errorf("pipeline output: %w", err)
	}
	return nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
