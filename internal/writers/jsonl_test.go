package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"pwsim-core/engine"
	"pwsim-core/policy"
	"pwsim/pkg/api"
)

func TestRecordJSONL_StreamsValidV1(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartRecordJSONLWriter(&buf, 2)
	in <- engine.Record{Password: "abc123", Attacker: "casual", DictTimeSec: 1, BruteForceTimeSec: math.Inf(1), EntropyBits: 31.02}
	in <- engine.Record{Password: "abc123", Attacker: "skilled", DictTimeSec: 1, BruteForceTimeSec: 1088.39, EntropyBits: 31.02}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}

	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	var n int
	for sc.Scan() {
		n++
		var v api.SimulationRecordV1
		if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
			t.Fatalf("bad json line %d: %v\n%s", n, err, sc.Text())
		}
		if n == 1 && !v.BruteForceTimeSec.Inf() {
			t.Fatalf("line 1 brute force = %v, want inf", v.BruteForceTimeSec)
		}
	}
	if n != 2 {
		t.Fatalf("want 2 lines, got %d", n)
	}
}

func TestAuditJSONL_StreamsValidV1(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartAuditJSONLWriter(&buf, 2)
	pe := policy.New(policy.Default())
	in <- pe.Check("abc123")
	in <- pe.Check("Tr0ub4dor&3")
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}

	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	var n int
	for sc.Scan() {
		n++
		var v api.AuditRowV1
		if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
			t.Fatalf("bad json line %d: %v\n%s", n, err, sc.Text())
		}
	}
	if n != 2 {
		t.Fatalf("want 2 lines, got %d", n)
	}
}
