// internal/logx/logx.go
package logx

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds the CLI logger: console format on w, info level by default,
// errors only under quiet, debug under verbose. Quiet wins when both are
// set. Output stays plain so stderr pipes cleanly.
func New(w io.Writer, quiet, verbose bool) zerolog.Logger {
	lvl := zerolog.InfoLevel
	switch {
	case quiet:
		lvl = zerolog.ErrorLevel
	case verbose:
		lvl = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}
