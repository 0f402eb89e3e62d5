package output

import (
	"strings"
	"testing"
)

// Downstream scripts key on these exact strings. If this test fails, you are
// about to break someone's parser: bump the api version instead.
func TestSimTSVHeaderSnapshot(t *testing.T) {
	const want = "password\tpolicy_ok\tattacker\tdict_time_sec\tbruteforce_time_sec\tentropy_bits"
	if SimTSVHeader != want {
		t.Fatalf("SimTSVHeader changed:\n got %q\nwant %q", SimTSVHeader, want)
	}
}

func TestCSVHeaderMatchesTSVColumns(t *testing.T) {
	if got := strings.Join(SimCSVHeader, "\t"); got != SimTSVHeader {
		t.Fatalf("CSV columns diverge from TSV header:\n got %q\nwant %q", got, SimTSVHeader)
	}
}
