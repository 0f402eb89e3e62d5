// core/wordlist/matcher.go
package wordlist

import (
	"strings"

	"pwsim-core/mangle"
)

// revLeet undoes the common substitutions before the raw-set lookup.
// Applied once, never iterated.
var revLeet = strings.NewReplacer(
	"0", "o",
	"@", "a",
	"1", "i",
	"3", "e",
	"5", "s",
)

// Matcher answers "would a dictionary attacker know this password?".
// It holds the lowercase word set, a mangled-variant index over the first
// mangleLimit source words, and the distinct words in source order for the
// common-word shortlist. Built once, then read-only: safe for concurrent use.
type Matcher struct {
	raw   map[string]struct{} // lowercase words
	index map[string]string   // lowercase variant -> lowercase base
	order []string            // distinct lowercase words, source order
}

// NewMatcher indexes words. Only the first mangleLimit source entries, in
// order and duplicates included, are expanded through mangle.Set; on variant
// collisions the later base wins.
func NewMatcher(words []string, mangleLimit int) *Matcher {
	m := &Matcher{
		raw:   make(map[string]struct{}, len(words)),
		index: make(map[string]string),
	}
	for _, w := range words {
		lw := strings.ToLower(w)
		if _, dup := m.raw[lw]; dup {
			continue
		}
		m.raw[lw] = struct{}{}
		m.order = append(m.order, lw)
	}

	if mangleLimit < 0 {
		mangleLimit = 0
	}
	if mangleLimit > len(words) {
		mangleLimit = len(words)
	}
	for _, w := range words[:mangleLimit] {
		base := strings.ToLower(w)
		for v := range mangle.Set(w) {
			m.index[strings.ToLower(v)] = base
		}
	}
	return m
}

// IsKnown reports whether pwd matches the wordlist directly, via a mangled
// variant, or after reverse-leet normalization. A nil Matcher knows nothing.
func (m *Matcher) IsKnown(pwd string) bool {
	if m == nil {
		return false
	}
	pl := strings.ToLower(pwd)
	if _, ok := m.raw[pl]; ok {
		return true
	}
	if _, ok := m.index[pl]; ok {
		return true
	}
	_, ok := m.raw[revLeet.Replace(pl)]
	return ok
}

// Prefix returns the first n distinct words in source order, fewer when the
// list is shorter. A nil Matcher returns nil.
func (m *Matcher) Prefix(n int) []string {
	if m == nil || n <= 0 {
		return nil
	}
	if n > len(m.order) {
		n = len(m.order)
	}
	return m.order[:n]
}

// Words returns the number of distinct indexed words.
func (m *Matcher) Words() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}
