// core/mangle/mangle.go
package mangle

import (
	"strings"
	"unicode"
)

// leet is the substitution table. One substitution per variant: positions are
// replaced individually, never combined.
var leet = map[rune]rune{
	'a': '@',
	'o': '0',
	'i': '1',
	'e': '3',
	's': '5',
}

// digitAffixes are tried as both suffix and prefix. Every single digit is
// covered, plus the multi-digit picks people actually append.
var digitAffixes = []string{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"12", "123", "01", "07", "42", "99",
}

// symbolAffixes are tried as both suffix and prefix.
var symbolAffixes = []string{"!", "@", "#", "$"}

// Set expands a base word into the variants a dictionary attacker would try:
// case forms, one leet substitution per position, and digit/symbol affixes.
// Deterministic and side-effect free; the result always contains the base
// itself and its lowercase form.
func Set(base string) map[string]struct{} {
	out := make(map[string]struct{}, 4+len(base)+2*(len(digitAffixes)+len(symbolAffixes)))
	add := func(s string) { out[s] = struct{}{} }

	add(base)
	add(strings.ToLower(base))
	add(strings.ToUpper(base))
	add(capitalize(base))

	runes := []rune(base)
	for i, r := range runes {
		sub, ok := leet[unicode.ToLower(r)]
		if !ok {
			continue
		}
		v := make([]rune, len(runes))
		copy(v, runes)
		v[i] = sub
		add(string(v))
	}

	for _, d := range digitAffixes {
		add(base + d)
		add(d + base)
	}
	for _, s := range symbolAffixes {
		add(base + s)
		add(s + base)
	}
	return out
}

// capitalize returns the "Word" form: first rune upper, the rest lower.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
