// Package diag provides the stderr diagnostics channel. Diagnostics
// are advisory: they never alter control flow or exit status, and they
// stay off stdout so JSON/CSV payloads remain parseable.
package diag

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console-format logger writing to w, normally stderr.
// When verbose is false everything is discarded. Timestamps are
// excluded; a one-shot CLI run has no use for them.
func New(w io.Writer, verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	cw := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(cw).Level(zerolog.InfoLevel)
}
