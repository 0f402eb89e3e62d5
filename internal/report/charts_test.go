// internal/report/charts_test.go
package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderHTML(t *testing.T) {
	series := []AttackerSeries{
		{Attacker: "casual", Fractions: []float64{0.5, 0.5, 1, 1, 1}},
		{Attacker: "state", Fractions: []float64{1, 1, 1, 1, 1}},
	}
	dist := [5]int{2, 0, 0, 0, 0}

	var buf bytes.Buffer
	if err := RenderHTML(&buf, "nightly audit", series, dist); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	html := buf.String()

	for _, want := range []string{"echarts", "nightly audit", "casual", "state", "Strength scores"} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
