// Package charts renders analysis visualisations two ways: interactive
// go-echarts HTML pages served by the API, and gonum/plot PNGs embedded in
// responses as base64 data URIs.
package charts

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/MatthewKim323/HimAI-v2/internal/tension"
)

// estimatedForce maps an average rep velocity onto the normalised force
// scale used across every chart. Force and velocity are inversely related;
// slower reps sit higher on the curve.
func estimatedForce(velocity float64) float64 {
	return 100 - velocity*80
}

// ForceVelocityHTML renders the force-velocity profile as an interactive
// scatter page. Each point is one rep, coloured by its position in the set.
func ForceVelocityHTML(title string, reps []tension.Rep) ([]byte, error) {
	data := make([]opts.ScatterData, 0, len(reps))
	for i, rep := range reps {
		data = append(data, opts.ScatterData{
			Name:  fmt.Sprintf("Rep %d", rep.RepNumber),
			Value: []interface{}{rep.AvgVelocity, estimatedForce(rep.AvgVelocity), float64(i + 1)},
		})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Force-Velocity Profile", Theme: "dark", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Force-Velocity Profile", Subtitle: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Velocity (units/sec)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Estimated Force (normalized)", NameLocation: "middle", NameGap: 35}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        1,
			Max:        float32(len(reps)),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#31688e", "#35b779", "#fde725"}},
		}),
	)
	scatter.AddSeries("reps", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 14}))

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render force-velocity chart: %w", err)
	}
	return buf.Bytes(), nil
}

// RepComparisonHTML renders per-rep average velocity and duration as a
// grouped bar page, one bar pair per rep.
func RepComparisonHTML(title string, reps []tension.Rep) ([]byte, error) {
	labels := make([]string, 0, len(reps))
	velocities := make([]opts.BarData, 0, len(reps))
	durations := make([]opts.BarData, 0, len(reps))
	for _, rep := range reps {
		labels = append(labels, fmt.Sprintf("Rep %d", rep.RepNumber))
		velocities = append(velocities, opts.BarData{Value: rep.AvgVelocity})
		durations = append(durations, opts.BarData{Value: rep.Duration})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Rep Comparison", Theme: "dark", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Per-Rep Comparison", Subtitle: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Avg Velocity / Duration (sec)"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("avg velocity", velocities).
		AddSeries("duration", durations)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render rep comparison chart: %w", err)
	}
	return buf.Bytes(), nil
}
