// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads resolves the --threads flag: zero or below means one
// worker per CPU.
func EffectiveThreads(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// Truncate applies the --limit flag before any work starts: a positive limit
// keeps only the first limit passwords.
func Truncate(passwords []string, limit int) []string {
	if limit > 0 && limit < len(passwords) {
		return passwords[:limit]
	}
	return passwords
}
