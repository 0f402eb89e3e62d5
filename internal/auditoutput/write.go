// internal/auditoutput/write.go
package auditoutput

import (
	"encoding/csv"
	"fmt"
	"io"

	"pwsim-core/policy"
	"pwsim/internal/jsonutil"
	"pwsim/pkg/api"
)

// StreamText writes verdicts as TSV as they arrive.
func StreamText(w io.Writer, in <-chan policy.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamCSV writes verdicts in RFC 4180 form.
func StreamCSV(w io.Writer, in <-chan policy.Result, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(CSVHeader); err != nil {
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

// WriteJSON emits one pretty-indented JSON array of v1 rows.
func WriteJSON(w io.Writer, list []policy.Result) error {
	rows := make([]api.AuditRowV1, 0, len(list))
	for _, r := range list {
		rows = append(rows, ToAPIRow(r))
	}
	return jsonutil.EncodePretty(w, rows)
}
