// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"pwsim-core/engine"
)

// StreamText writes records as TSV as they arrive; rows reach the channel
// already in canonical order. render, when non-nil, appends a human-readable
// block after each row (--pretty).
func StreamText(w io.Writer, in <-chan engine.Record, header bool, render func(engine.Record) string) error {
	if header {
		if _, err := fmt.Fprintln(w, SimTSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
		if render != nil {
			if _, err := io.WriteString(w, render(r)); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteText is the buffered counterpart for callers that already hold the
// full record slice.
func WriteText(w io.Writer, list []engine.Record, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, SimTSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
