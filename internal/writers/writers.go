// internal/writers/writers.go
//
// Writer goroutines. Each Start* returns a send channel and an error channel;
// the error channel yields exactly one value after the send channel is closed
// and the output is finished. Rows must arrive already in canonical order.
package writers

import (
	"fmt"
	"io"

	"pwsim-core/engine"
	"pwsim-core/policy"
	"pwsim/internal/auditoutput"
	"pwsim/internal/output"
	"pwsim/internal/pretty"
)

// StartRecordWriter spins up the writer goroutine for simulation records.
// text/csv/jsonl stream row by row; json buffers to emit one array.
func StartRecordWriter(out io.Writer, format string, header, prettyBlocks bool, bufSize int) (chan<- engine.Record, <-chan error) {
	if format == output.FormatJSONL {
		return StartRecordJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []engine.Record
			for r := range in {
				buf = append(buf, r)
			}
			err = output.WriteJSON(out, buf)
		case output.FormatCSV:
			err = output.StreamCSV(out, in, header)
		case output.FormatText:
			var render func(engine.Record) string
			if prettyBlocks {
				render = pretty.RenderRecord
			}
			err = output.StreamText(out, in, header, render)
		default:
			err = fmt.Errorf("unsupported output format %q", format)
		}
		// Drain whatever is left so producers never block on a dead writer.
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}

// StartAuditWriter spins up the writer goroutine for policy verdicts.
func StartAuditWriter(out io.Writer, format string, header bool, bufSize int) (chan<- policy.Result, <-chan error) {
	if format == auditoutput.FormatJSONL {
		return StartAuditJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan policy.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case auditoutput.FormatJSON:
			var buf []policy.Result
			for r := range in {
				buf = append(buf, r)
			}
			err = auditoutput.WriteJSON(out, buf)
		case auditoutput.FormatCSV:
			err = auditoutput.StreamCSV(out, in, header)
		case auditoutput.FormatText:
			err = auditoutput.StreamText(out, in, header)
		default:
			err = fmt.Errorf("unsupported output format %q", format)
		}
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}
