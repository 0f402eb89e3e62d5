// internal/output/common.go
package output

// Output format names accepted by --output.
const (
	FormatText  = "text"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// SimTSVHeader is the canonical header for simulation text output.
// Single source of truth; writers must not re-declare it.
const SimTSVHeader = "password\tpolicy_ok\tattacker\tdict_time_sec\tbruteforce_time_sec\tentropy_bits"

// SimCSVHeader lists the CSV column order. Same columns as the TSV form.
var SimCSVHeader = []string{
	"password", "policy_ok", "attacker",
	"dict_time_sec", "bruteforce_time_sec", "entropy_bits",
}
