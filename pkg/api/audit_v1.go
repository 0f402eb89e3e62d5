// pkg/api/audit_v1.go
package api

// AuditRowV1 is one policy audit verdict.
// Keep fields, names, and types stable. Additive changes only, with
// omitempty on any new field.
type AuditRowV1 struct {
	Password    string `json:"password"`
	Length      int    `json:"length"`
	MinLength   bool   `json:"min_length"`
	HasUpper    bool   `json:"has_upper"`
	HasLower    bool   `json:"has_lower"`
	HasDigit    bool   `json:"has_digit"`
	HasSymbol   bool   `json:"has_symbol"`
	BlacklistOK bool   `json:"blacklist_ok"`
	PolicyOK    bool   `json:"policy_ok"`
}
