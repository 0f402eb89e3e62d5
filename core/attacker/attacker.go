// core/attacker/attacker.go
package attacker

import "math"

// Profile models one adversary tier: how large a dictionary it can afford,
// how many guesses per second it sustains, and how many attempts it is
// willing to spend before giving up on brute force.
type Profile struct {
	Name                  string
	DictionarySize        int
	HashRate              float64 // guesses per second
	BruteForceMaxAttempts int64
}

// Horizon returns the point, in seconds, at which the attacker gives up:
// the time needed to spend BruteForceMaxAttempts at HashRate.
// Non-positive rates yield +Inf (the attacker cannot guess at all).
func (p Profile) Horizon() float64 {
	if p.HashRate <= 0 {
		return math.Inf(1)
	}
	return float64(p.BruteForceMaxAttempts) / p.HashRate
}

// Registry returns the built-in profiles in evaluation order.
// The slice is a fresh copy; callers may reorder or edit it freely.
func Registry() []Profile {
	return []Profile{
		{Name: "casual", DictionarySize: 10_000, HashRate: 1e3, BruteForceMaxAttempts: 1e8},
		{Name: "skilled", DictionarySize: 1_000_000, HashRate: 1e6, BruteForceMaxAttempts: 1e10},
		{Name: "state", DictionarySize: 100_000_000, HashRate: 1e9, BruteForceMaxAttempts: 1e12},
	}
}
