// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"math"
	"strings"

	"pwsim-core/engine"
)

// Options controls the rendered block. Kept tiny on purpose.
type Options struct {
	Prefix string // prepended to every block line
}

// DefaultOptions is what --pretty uses.
var DefaultOptions = Options{Prefix: "  "}

// Duration humanizes a crack-time span for terminal output.
func Duration(sec float64) string {
	switch {
	case math.IsInf(sec, 1):
		return "never (attacker gives up)"
	case sec < 1:
		return "under a second"
	case sec < 60:
		return fmt.Sprintf("%.0f seconds", sec)
	case sec < 3600:
		return fmt.Sprintf("%.1f minutes", sec/60)
	case sec < 86400:
		return fmt.Sprintf("%.1f hours", sec/3600)
	case sec < 31536000:
		return fmt.Sprintf("%.1f days", sec/86400)
	case sec < 3153600000:
		return fmt.Sprintf("%.1f years", sec/31536000)
	default:
		return "centuries"
	}
}

// RenderRecord renders the block appended after a record's TSV row under
// --pretty.
func RenderRecord(r engine.Record) string {
	return RenderRecordWith(r, DefaultOptions)
}

// RenderRecordWith is RenderRecord with explicit options.
func RenderRecordWith(r engine.Record, o Options) string {
	var b strings.Builder
	verdict := "fails policy"
	if r.PolicyOK {
		verdict = "meets policy"
	}
	dict := "no dictionary hit"
	if !math.IsInf(r.DictTimeSec, 1) {
		dict = "dictionary hit (instant)"
	}
	fmt.Fprintf(&b, "%s%s vs %s: %s; brute force %s; %.1f bits; %s\n",
		o.Prefix, r.Password, r.Attacker, dict,
		Duration(r.BruteForceTimeSec), r.EntropyBits, verdict)
	return b.String()
}
