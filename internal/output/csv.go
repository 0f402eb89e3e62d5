// internal/output/csv.go
package output

import (
	"encoding/csv"
	"io"

	"pwsim-core/engine"
)

// StreamCSV writes records in RFC 4180 form, one row per record. This is the
// format pwsim-report ingests.
func StreamCSV(w io.Writer, in <-chan engine.Record, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(SimCSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if err := cw.Write(RowStrings(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
