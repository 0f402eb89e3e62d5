// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"

	"pwsim-core/engine"
	"pwsim/pkg/api"
)

// ToAPIRecord converts a domain record to the stable v1 wire schema.
func ToAPIRecord(r engine.Record) api.SimulationRecordV1 {
	return api.SimulationRecordV1{
		Password:          r.Password,
		PolicyOK:          r.PolicyOK,
		Attacker:          r.Attacker,
		DictTimeSec:       api.Seconds(r.DictTimeSec),
		BruteForceTimeSec: api.Seconds(r.BruteForceTimeSec),
		EntropyBits:       r.EntropyBits,
	}
}

// FormatRowTSV renders the six columns, no trailing newline. Infinite times
// render as "inf", same as the CSV and JSON forms.
func FormatRowTSV(r engine.Record) string {
	return fmt.Sprintf("%s\t%t\t%s\t%s\t%s\t%s",
		r.Password,
		r.PolicyOK,
		r.Attacker,
		api.Seconds(r.DictTimeSec),
		api.Seconds(r.BruteForceTimeSec),
		formatBits(r.EntropyBits),
	)
}

// RowStrings returns the CSV field values in SimCSVHeader order.
func RowStrings(r engine.Record) []string {
	return []string{
		r.Password,
		strconv.FormatBool(r.PolicyOK),
		r.Attacker,
		api.Seconds(r.DictTimeSec).String(),
		api.Seconds(r.BruteForceTimeSec).String(),
		formatBits(r.EntropyBits),
	}
}

func formatBits(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
