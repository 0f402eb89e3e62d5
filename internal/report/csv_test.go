// internal/report/csv_test.go
package report

import (
	"strings"
	"testing"
)

const sampleCSV = `password,policy_ok,attacker,dict_time_sec,bruteforce_time_sec,entropy_bits
abc123,false,casual,1,inf,31.02
abc123,false,skilled,1,1088.39,31.02
Tr0ub4dor&3,true,casual,inf,inf,72.1
`

func TestLoadCSV(t *testing.T) {
	recs, err := LoadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}

	r := recs[0]
	if r.Password != "abc123" || r.Attacker != "casual" || r.PolicyOK {
		t.Errorf("record 0 = %+v", r)
	}
	if float64(r.DictTimeSec) != 1 {
		t.Errorf("dict_time_sec = %v, want 1", r.DictTimeSec)
	}
	if !r.BruteForceTimeSec.Inf() {
		t.Errorf("bruteforce_time_sec = %v, want inf", r.BruteForceTimeSec)
	}
	if r.EntropyBits != 31.02 {
		t.Errorf("entropy_bits = %v, want 31.02", r.EntropyBits)
	}
	if !recs[2].DictTimeSec.Inf() {
		t.Errorf("record 2 dict_time_sec = %v, want inf", recs[2].DictTimeSec)
	}
}

func TestLoadCSVReordersAndIgnoresExtraColumns(t *testing.T) {
	in := `attacker,password,extra,policy_ok,bruteforce_time_sec,dict_time_sec,entropy_bits
casual,hunter2,x,false,inf,1,36.2
`
	recs, err := LoadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(recs) != 1 || recs[0].Password != "hunter2" || recs[0].Attacker != "casual" {
		t.Fatalf("got %+v", recs)
	}
	if float64(recs[0].DictTimeSec) != 1 || !recs[0].BruteForceTimeSec.Inf() {
		t.Fatalf("times = %v, %v", recs[0].DictTimeSec, recs[0].BruteForceTimeSec)
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	in := "password,attacker\nabc,casual\n"
	if _, err := LoadCSV(strings.NewReader(in)); err == nil {
		t.Fatal("expected error for missing columns")
	}
}

func TestLoadCSVBadValueNamesRow(t *testing.T) {
	in := sampleCSV + "oops,notabool,casual,1,1,1\n"
	_, err := LoadCSV(strings.NewReader(in))
	if err == nil {
		t.Fatal("expected error for bad policy_ok")
	}
	if !strings.Contains(err.Error(), "row 5") {
		t.Errorf("error %q does not name row 5", err)
	}
}

func TestLoadCSVEmptyInput(t *testing.T) {
	if _, err := LoadCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}
