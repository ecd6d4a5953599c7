package charts

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/MatthewKim323/HimAI-v2/internal/pose"
	"github.com/MatthewKim323/HimAI-v2/internal/tension"
)

var (
	velocityColor = color.RGBA{R: 0x26, G: 0x82, B: 0x8e, A: 0xff}
	repColor      = color.RGBA{R: 0xff, G: 0x52, B: 0x52, A: 0xff}
	barColor      = color.RGBA{R: 0x35, G: 0xb7, B: 0x79, A: 0xff}
)

// VelocityTimelinePNG plots the (smoothed or raw) speed stream over time,
// with the detected rep intervals overlaid as a second series so gaps in
// detection are visible at a glance.
func VelocityTimelinePNG(samples []pose.VelocitySample, reps []tension.Rep) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Movement Velocity Timeline"
	p.X.Label.Text = "Time (seconds)"
	p.Y.Label.Text = "Velocity (units/sec)"

	pts := make(plotter.XYs, 0, len(samples))
	for _, s := range samples {
		pts = append(pts, plotter.XY{X: s.Timestamp, Y: s.Speed})
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build velocity line: %w", err)
	}
	line.Width = vg.Points(1)
	line.Color = velocityColor
	p.Add(line)
	p.Legend.Add("velocity", line)

	// One horizontal segment per rep at its average speed.
	for _, rep := range reps {
		seg, err := plotter.NewLine(plotter.XYs{
			{X: rep.StartTime, Y: rep.AvgVelocity},
			{X: rep.EndTime, Y: rep.AvgVelocity},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build rep overlay: %w", err)
		}
		seg.Width = vg.Points(2)
		seg.Color = repColor
		p.Add(seg)
	}

	return renderPNG(p, 10*vg.Inch, 5*vg.Inch)
}

// ForceVelocityPNG renders the per-rep force-velocity scatter.
func ForceVelocityPNG(reps []tension.Rep) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Force-Velocity Profile"
	p.X.Label.Text = "Velocity (units/sec)"
	p.Y.Label.Text = "Estimated Force (normalized)"

	pts := make(plotter.XYs, 0, len(reps))
	for _, rep := range reps {
		pts = append(pts, plotter.XY{X: rep.AvgVelocity, Y: estimatedForce(rep.AvgVelocity)})
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build force-velocity scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(4)
	scatter.GlyphStyle.Color = velocityColor
	p.Add(scatter)

	return renderPNG(p, 8*vg.Inch, 6*vg.Inch)
}

// RepComparisonPNG renders average velocity per rep as a bar chart.
func RepComparisonPNG(reps []tension.Rep) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Average Velocity per Rep"
	p.X.Label.Text = "Rep Number"
	p.Y.Label.Text = "Avg Velocity"

	values := make(plotter.Values, 0, len(reps))
	labels := make([]string, 0, len(reps))
	for _, rep := range reps {
		values = append(values, rep.AvgVelocity)
		labels = append(labels, fmt.Sprintf("%d", rep.RepNumber))
	}
	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return nil, fmt.Errorf("failed to build rep comparison bars: %w", err)
	}
	bars.Color = barColor
	p.Add(bars)
	p.NominalX(labels...)

	return renderPNG(p, 8*vg.Inch, 5*vg.Inch)
}

// DataURI wraps rendered PNG bytes in the data-URI form clients embed
// directly in an <img> tag.
func DataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

func renderPNG(p *plot.Plot, w, h vg.Length) ([]byte, error) {
	writer, err := p.WriterTo(w, h, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to render plot: %w", err)
	}
	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode plot: %w", err)
	}
	return buf.Bytes(), nil
}
