// internal/output/json.go
package output

import (
	"io"

	"pwsim-core/engine"
	"pwsim/internal/jsonutil"
	"pwsim/pkg/api"
)

// WriteJSON emits one pretty-indented JSON array of v1 records. JSON output
// is buffered by nature: the array cannot stream.
func WriteJSON(w io.Writer, list []engine.Record) error {
	recs := make([]api.SimulationRecordV1, 0, len(list))
	for _, r := range list {
		recs = append(recs, ToAPIRecord(r))
	}
	return jsonutil.EncodePretty(w, recs)
}
