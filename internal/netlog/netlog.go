// Package netlog centralizes transnet's internal diagnostic logging. CLI
// output meant for the operator's terminal (results, error summaries) stays
// plain fmt.Fprintf straight from cmd/transnet, exactly as the teacher's own
// command Run closures do; netlog only carries structured, leveled
// diagnostics (per-category row counts at the end of ingestion) that a host
// embedding transnet as a library may want to capture or silence.
package netlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a zerolog.Logger writing to w with an RFC3339 timestamp
// field. Passing a nil w logs to os.Stderr.
func New(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// Discard returns a logger that drops every event, for callers (library
// entry points, tests) that have no interest in diagnostics.
func Discard() zerolog.Logger {
	return zerolog.Nop()
}
