// internal/report/report.go

// Package report aggregates simulation records into crack-fraction series
// and renders them as a standalone HTML page.
package report

import (
	"math"

	"pwsim/pkg/api"
)

// Threshold is one point on the report's time axis.
type Threshold struct {
	Name    string
	Seconds float64
}

// Thresholds returns the fixed time axis, ascending.
func Thresholds() []Threshold {
	return []Threshold{
		{"1 min", 60},
		{"1 hour", 3600},
		{"1 day", 86400},
		{"1 year", 31536000},
		{"100 years", 3153600000},
	}
}

// AttackerSeries is the cracked fraction per threshold for one attacker.
// Fractions is indexed like Thresholds and non-decreasing.
type AttackerSeries struct {
	Attacker  string
	Fractions []float64
}

// crackTime is the attacker's effective time on one record: the faster of
// the dictionary and brute-force attacks.
func crackTime(rec api.SimulationRecordV1) float64 {
	return math.Min(float64(rec.DictTimeSec), float64(rec.BruteForceTimeSec))
}

// CrackedFractions computes, per attacker, the fraction of passwords cracked
// within each threshold. Attackers keep first-seen order; duplicate
// (password, attacker) rows count once, first row wins.
func CrackedFractions(records []api.SimulationRecordV1) []AttackerSeries {
	ts := Thresholds()

	type acc struct {
		seen   map[string]struct{}
		within []int
		total  int
	}
	byAttacker := make(map[string]*acc)
	var order []string

	for _, rec := range records {
		a := byAttacker[rec.Attacker]
		if a == nil {
			a = &acc{seen: make(map[string]struct{}), within: make([]int, len(ts))}
			byAttacker[rec.Attacker] = a
			order = append(order, rec.Attacker)
		}
		if _, dup := a.seen[rec.Password]; dup {
			continue
		}
		a.seen[rec.Password] = struct{}{}
		a.total++
		t := crackTime(rec)
		for i, th := range ts {
			if t <= th.Seconds {
				a.within[i]++
			}
		}
	}

	out := make([]AttackerSeries, 0, len(order))
	for _, name := range order {
		a := byAttacker[name]
		fr := make([]float64, len(ts))
		for i, n := range a.within {
			fr[i] = float64(n) / float64(a.total)
		}
		out = append(out, AttackerSeries{Attacker: name, Fractions: fr})
	}
	return out
}

// ScoreDistribution buckets the distinct passwords by a 0..4 strength score.
// Out-of-range scores are clamped.
func ScoreDistribution(records []api.SimulationRecordV1, score func(string) int) [5]int {
	var dist [5]int
	seen := make(map[string]struct{})
	for _, rec := range records {
		if _, dup := seen[rec.Password]; dup {
			continue
		}
		seen[rec.Password] = struct{}{}
		s := score(rec.Password)
		if s < 0 {
			s = 0
		} else if s > 4 {
			s = 4
		}
		dist[s]++
	}
	return dist
}
