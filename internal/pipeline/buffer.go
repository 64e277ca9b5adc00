package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/crimson-sun/shelf/internal/model"
	"github.com/crimson-sun/shelf/internal/output"
)

// batch accumulates drafts and flushes them as ordered verdicts.
type batch struct {
	checker Checker
	out     output.Output
	workers int
	maxSize int

	pending []model.Draft
}

func newBatch(c Checker, out output.Output, workers, maxSize int) *batch {
	return &batch{
		checker: c,
		out:     out,
		workers: workers,
		maxSize: maxSize,
	}
}

// add appends a draft to the batch. Returns true if the batch is full and needs flushing.
func (b *batch) add(d model.Draft) bool {
	b.pending = append(b.pending, d)
	return len(b.pending) >= b.maxSize
}

// flush checks all pending drafts concurrently, then writes their verdicts
// in the order the drafts were added. It reports how many verdicts were
// written and how many of those were publishable.
func (b *batch) flush(ctx context.Context) (written, publishable int, err error) {
	drafts := b.pending
	b.pending = nil
	if len(drafts) == 0 {
		return 0, 0, nil
	}

	verdicts := make([]model.Verdict, len(drafts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, d := range drafts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			verdicts[i] = b.checker.Check(d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	for _, v := range verdicts {
		if err := b.out.Write(ctx, v); err != nil {
			return written, publishable, err
		}
		written++
		if v.Publishable {
			publishable++
		}
	}
	return written, publishable, nil
}
