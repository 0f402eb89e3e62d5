// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"pwsim-core/engine"
	"pwsim-core/policy"
	"pwsim/internal/auditoutput"
	"pwsim/internal/jsonlutil"
	"pwsim/internal/output"
)

// StartRecordJSONLWriter streams each simulation record as one JSON line (v1).
func StartRecordJSONLWriter(out io.Writer, bufSize int) (chan<- engine.Record, <-chan error) {
	return jsonlutil.Start[engine.Record](out, bufSize,
		func(enc *json.Encoder, r engine.Record) error {
			return enc.Encode(output.ToAPIRecord(r))
		},
		IsBrokenPipe,
	)
}

// StartAuditJSONLWriter streams each policy verdict as one JSON line (v1).
func StartAuditJSONLWriter(out io.Writer, bufSize int) (chan<- policy.Result, <-chan error) {
	return jsonlutil.Start[policy.Result](out, bufSize,
		func(enc *json.Encoder, r policy.Result) error {
			return enc.Encode(auditoutput.ToAPIRow(r))
		},
		IsBrokenPipe,
	)
}
