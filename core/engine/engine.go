// core/engine/engine.go
package engine

import (
	"math"
	"strings"
	"unicode/utf8"

	"pwsim-core/attacker"
	"pwsim-core/entropy"
	"pwsim-core/policy"
	"pwsim-core/wordlist"
)

// DefaultTopSlice bounds the common-word shortlist the casual attacker is
// assumed to try before anything else.
const DefaultTopSlice = 200

// fallbackWeak stands in for a dictionary when no wordlist is loaded.
var fallbackWeak = map[string]struct{}{
	"password": {},
	"123456":   {},
	"qwerty":   {},
}

// Config assembles an Engine. A nil Policy selects policy.Default(); a nil
// Matcher switches the dictionary model to the built-in weak-password
// heuristic; empty Profiles selects attacker.Registry(); TopSlice <= 0
// selects DefaultTopSlice.
type Config struct {
	Policy   *policy.Engine
	Matcher  *wordlist.Matcher
	Profiles []attacker.Profile
	TopSlice int
}

// Record is one simulated (password, attacker) outcome. Both attack times
// are reported and consumers decide how to combine them; +Inf marks "not
// cracked within the attacker's horizon".
type Record struct {
	Password          string
	PolicyOK          bool
	Attacker          string
	DictTimeSec       float64
	BruteForceTimeSec float64
	EntropyBits       float64
}

// Engine evaluates passwords against every attacker profile.
// Immutable after New; safe for concurrent use.
type Engine struct {
	pe       *policy.Engine
	matcher  *wordlist.Matcher
	profiles []attacker.Profile
	top      map[string]struct{} // casual attacker's shortlist, built once
}

// New resolves Config defaults and precomputes the shortlist.
func New(c Config) *Engine {
	e := &Engine{pe: c.Policy, matcher: c.Matcher, profiles: c.Profiles}
	if e.pe == nil {
		e.pe = policy.New(policy.Default())
	}
	if len(e.profiles) == 0 {
		e.profiles = attacker.Registry()
	}
	n := c.TopSlice
	if n <= 0 {
		n = DefaultTopSlice
	}
	if top := c.Matcher.Prefix(n); len(top) > 0 {
		e.top = make(map[string]struct{}, len(top))
		for _, w := range top {
			e.top[w] = struct{}{}
		}
	}
	return e
}

// Profiles returns the evaluation order.
func (e *Engine) Profiles() []attacker.Profile { return e.profiles }

// dictHit decides the dictionary outcome for one attacker tier. Without a
// matcher the weak-password heuristic applies: the hardcoded trio plus
// anything of six runes or fewer.
func (e *Engine) dictHit(pwd string, prof attacker.Profile) bool {
	if e.matcher == nil {
		if _, ok := fallbackWeak[strings.ToLower(pwd)]; ok {
			return true
		}
		return utf8.RuneCountInString(pwd) <= 6
	}
	if prof.Name == "casual" {
		if _, ok := e.top[strings.ToLower(pwd)]; ok {
			return true
		}
	}
	return e.matcher.IsKnown(pwd)
}

// Evaluate produces one Record per profile, in profile order. Policy and
// entropy are computed once per password and shared across the rows.
func (e *Engine) Evaluate(pwd string) []Record {
	res := e.pe.Check(pwd)
	bits := entropy.Estimate(pwd)

	out := make([]Record, 0, len(e.profiles))
	for _, prof := range e.profiles {
		dict := math.Inf(1)
		if e.dictHit(pwd, prof) {
			dict = 1 // a dictionary success is near-instant next to brute force
		}
		bf := entropy.BruteForceSeconds(bits, prof.HashRate)
		if bf > prof.Horizon() {
			bf = math.Inf(1) // attacker gives up
		}
		out = append(out, Record{
			Password:          pwd,
			PolicyOK:          res.PolicyOK,
			Attacker:          prof.Name,
			DictTimeSec:       dict,
			BruteForceTimeSec: bf,
			EntropyBits:       bits,
		})
	}
	return out
}

// Run evaluates passwords sequentially in input order. A positive limit
// truncates the input before any work starts; limit <= 0 means all.
func (e *Engine) Run(passwords []string, limit int) []Record {
	if limit > 0 && limit < len(passwords) {
		passwords = passwords[:limit]
	}
	out := make([]Record, 0, len(passwords)*len(e.profiles))
	for _, p := range passwords {
		out = append(out, e.Evaluate(p)...)
	}
	return out
}
