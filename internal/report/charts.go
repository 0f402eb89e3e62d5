// internal/report/charts.go
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// scoreLabels name the zxcvbn score buckets 0..4.
var scoreLabels = []string{"very weak", "weak", "fair", "strong", "very strong"}

// RenderHTML writes a standalone HTML page with the cracked-fraction line
// chart and the strength-score histogram.
func RenderHTML(w io.Writer, title string, series []AttackerSeries, dist [5]int) error {
	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(crackedLine(title, series), scoreBar(dist))
	return page.Render(w)
}

func crackedLine(title string, series []AttackerSeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "Fraction of passwords cracked within each time horizon",
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "fraction cracked", Max: 1}),
	)

	ts := Thresholds()
	x := make([]string, len(ts))
	for i, th := range ts {
		x[i] = th.Name
	}
	line.SetXAxis(x)

	t := true
	for _, s := range series {
		data := make([]opts.LineData, len(s.Fractions))
		for i, f := range s.Fractions {
			data[i] = opts.LineData{Value: f}
		}
		line.AddSeries(s.Attacker, data, charts.WithLabelOpts(opts.Label{Show: &t}))
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: &t}))
	return line
}

func scoreBar(dist [5]int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Strength scores",
			Subtitle: "zxcvbn score per distinct password",
		}),
	)

	x := make([]string, len(scoreLabels))
	data := make([]opts.BarData, len(scoreLabels))
	for i, name := range scoreLabels {
		x[i] = fmt.Sprintf("%d (%s)", i, name)
		data[i] = opts.BarData{Value: dist[i]}
	}
	bar.SetXAxis(x).AddSeries("passwords", data)
	return bar
}
