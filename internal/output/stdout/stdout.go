package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/crimson-sun/shelf/internal/model"
	"github.com/crimson-sun/shelf/internal/output"
)

// Output writes JSON-encoded verdicts to a stream, normally the process's
// standard output.
type Output struct {
	enc       *json.Encoder
	verbosity output.Verbosity
}

// New creates an Output that writes to w with verbosity-aware field
// omission and optional pretty-printed JSON.
func New(w io.Writer, verbosity output.Verbosity, pretty bool) *Output {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{enc: enc, verbosity: verbosity}
}

func (o *Output) Write(_ context.Context, v model.Verdict) error {
	if err := o.enc.Encode(output.FormatVerdict(v, o.verbosity)); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
