// internal/auditoutput/rows.go
package auditoutput

import (
	"fmt"
	"strconv"

	"pwsim-core/policy"
	"pwsim/pkg/api"
)

// Output format names accepted by --output.
const (
	FormatText  = "text"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header for audit text output.
const TSVHeader = "password\tlength\tmin_length\thas_upper\thas_lower\thas_digit\thas_symbol\tblacklist_ok\tpolicy_ok"

// CSVHeader lists the CSV column order. Same columns as the TSV form.
var CSVHeader = []string{
	"password", "length", "min_length", "has_upper", "has_lower",
	"has_digit", "has_symbol", "blacklist_ok", "policy_ok",
}

// ToAPIRow converts a policy verdict to the stable v1 wire schema.
func ToAPIRow(r policy.Result) api.AuditRowV1 {
	return api.AuditRowV1{
		Password:    r.Password,
		Length:      r.Length,
		MinLength:   r.MinLength,
		HasUpper:    r.HasUpper,
		HasLower:    r.HasLower,
		HasDigit:    r.HasDigit,
		HasSymbol:   r.HasSymbol,
		BlacklistOK: r.BlacklistOK,
		PolicyOK:    r.PolicyOK,
	}
}

// FormatRowTSV renders the nine columns, no trailing newline.
func FormatRowTSV(r policy.Result) string {
	return fmt.Sprintf("%s\t%d\t%t\t%t\t%t\t%t\t%t\t%t\t%t",
		r.Password, r.Length, r.MinLength,
		r.HasUpper, r.HasLower, r.HasDigit, r.HasSymbol,
		r.BlacklistOK, r.PolicyOK,
	)
}

// RowStrings returns the CSV field values in CSVHeader order.
func RowStrings(r policy.Result) []string {
	return []string{
		r.Password,
		strconv.Itoa(r.Length),
		strconv.FormatBool(r.MinLength),
		strconv.FormatBool(r.HasUpper),
		strconv.FormatBool(r.HasLower),
		strconv.FormatBool(r.HasDigit),
		strconv.FormatBool(r.HasSymbol),
		strconv.FormatBool(r.BlacklistOK),
		strconv.FormatBool(r.PolicyOK),
	}
}
