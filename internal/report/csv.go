// internal/report/csv.go
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"pwsim/pkg/api"
)

// want lists the simulation CSV columns the report needs. Columns are looked
// up by name, so extra columns and reordering are tolerated.
var want = []string{
	"password",
	"policy_ok",
	"attacker",
	"dict_time_sec",
	"bruteforce_time_sec",
	"entropy_bits",
}

// LoadCSV parses simulation records from CSV output (--output csv).
// The header row is mandatory.
func LoadCSV(r io.Reader) ([]api.SimulationRecordV1, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty input, expected a CSV header row")
	}
	if err != nil {
		return nil, err
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range want {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("header is missing column %q", name)
		}
	}

	var out []api.SimulationRecordV1
	for row := 2; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rec, err := parseRow(fields, col)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseRow(fields []string, col map[string]int) (api.SimulationRecordV1, error) {
	get := func(name string) (string, error) {
		i := col[name]
		if i >= len(fields) {
			return "", fmt.Errorf("short row, missing column %q", name)
		}
		return fields[i], nil
	}

	var rec api.SimulationRecordV1
	var err error
	if rec.Password, err = get("password"); err != nil {
		return rec, err
	}
	if rec.Attacker, err = get("attacker"); err != nil {
		return rec, err
	}

	s, err := get("policy_ok")
	if err != nil {
		return rec, err
	}
	if rec.PolicyOK, err = strconv.ParseBool(s); err != nil {
		return rec, fmt.Errorf("bad policy_ok %q", s)
	}

	if s, err = get("dict_time_sec"); err != nil {
		return rec, err
	}
	if rec.DictTimeSec, err = api.ParseSeconds(s); err != nil {
		return rec, err
	}
	if s, err = get("bruteforce_time_sec"); err != nil {
		return rec, err
	}
	if rec.BruteForceTimeSec, err = api.ParseSeconds(s); err != nil {
		return rec, err
	}

	if s, err = get("entropy_bits"); err != nil {
		return rec, err
	}
	if rec.EntropyBits, err = strconv.ParseFloat(s, 64); err != nil {
		return rec, fmt.Errorf("bad entropy_bits %q", s)
	}
	return rec, nil
}
