// internal/common/strings.go
package common

// DedupePreserve drops duplicate strings, keeping the first occurrence of
// each in input order. Comparison is exact; case is preserved.
func DedupePreserve(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
