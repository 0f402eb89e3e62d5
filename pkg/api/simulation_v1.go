// Package api defines the public, stable output schemas.
// Downstream tooling parses these; breaking changes require a new _v2 type.
package api

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Seconds is a crack-time span that may be infinite. Finite values marshal
// as JSON numbers; +Inf marshals as the string "inf", matching the text and
// CSV renderings.
type Seconds float64

// Inf reports whether the span is infinite.
func (s Seconds) Inf() bool { return math.IsInf(float64(s), 1) }

func (s Seconds) String() string {
	if s.Inf() {
		return "inf"
	}
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}

// ParseSeconds parses the text form produced by String: a float or "inf".
func ParseSeconds(str string) (Seconds, error) {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("bad seconds value %q", str)
	}
	return Seconds(f), nil
}

func (s Seconds) MarshalJSON() ([]byte, error) {
	if s.Inf() {
		return []byte(`"inf"`), nil
	}
	return json.Marshal(float64(s))
}

func (s *Seconds) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*s = Seconds(f)
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return fmt.Errorf("seconds: want a number or \"inf\", got %s", b)
	}
	v, err := ParseSeconds(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// SimulationRecordV1 is one (password, attacker) simulation outcome.
// Keep fields, names, and types stable. Additive changes only, with
// omitempty on any new field.
type SimulationRecordV1 struct {
	Password          string  `json:"password"`
	PolicyOK          bool    `json:"policy_ok"`
	Attacker          string  `json:"attacker"`
	DictTimeSec       Seconds `json:"dict_time_sec"`
	BruteForceTimeSec Seconds `json:"bruteforce_time_sec"`
	EntropyBits       float64 `json:"entropy_bits"`
}
