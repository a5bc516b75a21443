package render

import (
	"errors"
	"fmt"
	"io"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/statsgen/ghstats/internal/core"
)

// ErrNoChartData means the input has nothing to plot. Callers skip the chart
// rather than embedding an empty one.
var ErrNoChartData = errors.New("render: no chart data")

var accent = drawing.ColorFromHex("6495ed")

// LanguagePie renders the language histogram as a PNG pie chart, one slice
// per language with a percentage label. Slice order follows map iteration
// order.
func LanguagePie(languages map[string]int, width, height int, w io.Writer) error {
	var total int
	for _, n := range languages {
		total += n
	}
	if total == 0 {
		return ErrNoChartData
	}

	values := make([]chart.Value, 0, len(languages))
	for name, n := range languages {
		pct := float64(n) / float64(total) * 100.0
		values = append(values, chart.Value{
			Value: float64(n),
			Label: fmt.Sprintf("%s %.1f%%", name, pct),
		})
	}

	pie := chart.PieChart{
		Title:  "Language Distribution",
		Width:  width,
		Height: height,
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render: language pie: %w", err)
	}
	return nil
}

// ContributionLine renders the daily contribution series as a PNG line
// chart with month ticks. With shaded set, the area under the curve is
// filled.
func ContributionLine(days []core.ContributionDay, shaded bool, width, height int, w io.Writer) error {
	if len(days) == 0 {
		return ErrNoChartData
	}

	xs := make([]time.Time, 0, len(days))
	ys := make([]float64, 0, len(days))
	for _, d := range days {
		xs = append(xs, d.Date)
		ys = append(ys, float64(d.Count))
	}

	style := chart.Style{
		StrokeColor: accent,
		StrokeWidth: 1.5,
	}
	if shaded {
		style.FillColor = accent.WithAlpha(64)
	}

	graph := chart.Chart{
		Title:  "Contribution Activity",
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan"),
		},
		YAxis: chart.YAxis{
			ValueFormatter: chart.IntValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Style:   style,
				XValues: xs,
				YValues: ys,
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render: contribution line: %w", err)
	}
	return nil
}
