// analyse runs the tension pipeline over a landmark-stream JSON file
// offline: handy for tuning profiles against recorded sets without running
// the server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/MatthewKim323/HimAI-v2/internal/charts"
	"github.com/MatthewKim323/HimAI-v2/internal/exercise"
	"github.com/MatthewKim323/HimAI-v2/internal/pose"
	"github.com/MatthewKim323/HimAI-v2/internal/tension"
)

var (
	input        = flag.String("input", "", "Path to landmark frames JSON (required)")
	exerciseName = flag.String("exercise", "default", "Exercise name")
	jointName    = flag.String("joint", "", "Joint to track (defaults to the profile's recommendation)")
	sideName     = flag.String("side", "left", "Body side: left or right")
	profilesPath = flag.String("profiles", "", "Optional JSON file with exercise profile overrides")
	outDir       = flag.String("out", "", "Directory to write chart PNGs (omit to skip charts)")
	asJSON       = flag.Bool("json", false, "Print the full report as JSON")
)

func main() {
	flag.Parse()
	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	registry, err := exercise.NewRegistry()
	if err != nil {
		log.Fatalf("failed to build exercise registry: %v", err)
	}
	if *profilesPath != "" {
		if err := registry.LoadOverrides(*profilesPath); err != nil {
			log.Fatalf("failed to load profile overrides: %v", err)
		}
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("failed to open input: %v", err)
	}
	frames, err := pose.DecodeFrames(f)
	f.Close()
	if err != nil {
		log.Fatalf("failed to decode frames: %v", err)
	}

	var joint pose.Joint
	if *jointName != "" {
		if joint, err = pose.ParseJoint(*jointName); err != nil {
			log.Fatal(err)
		}
	}
	side, err := pose.ParseSide(*sideName)
	if err != nil {
		log.Fatal(err)
	}

	result := tension.NewAnalyzer(registry).Analyze(frames, *exerciseName, joint, side)
	report := result.Report

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Fatalf("failed to encode report: %v", err)
		}
	} else {
		printReport(report)
	}

	if *outDir != "" && report.Success {
		writeCharts(*outDir, result)
	}
}

func printReport(report tension.Report) {
	if !report.Success {
		fmt.Printf("analysis failed: %s\n", report.Error)
		for _, rec := range report.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
		return
	}

	fmt.Printf("%s\n\n", report.AnalysisSummary)
	fmt.Printf("tension rating: %.1f/100\n", report.TensionRating)
	fmt.Printf("%-4s %-10s %-10s %-10s %-10s %s\n",
		"rep", "start", "duration", "avg vel", "max vel", "type")
	for _, rep := range report.Reps {
		fmt.Printf("%-4d %-10.2f %-10.2f %-10.3f %-10.3f %s\n",
			rep.RepNumber, rep.StartTime, rep.Duration, rep.AvgVelocity, rep.MaxVelocity, rep.RepType)
	}
	fmt.Println()
	for _, rec := range report.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
}

func writeCharts(dir string, result tension.Result) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("failed to create output dir: %v", err)
	}

	renderers := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{"force_velocity.png", func() ([]byte, error) { return charts.ForceVelocityPNG(result.Report.Reps) }},
		{"velocity_timeline.png", func() ([]byte, error) {
			return charts.VelocityTimelinePNG(result.Velocities, result.Report.Reps)
		}},
		{"rep_comparison.png", func() ([]byte, error) { return charts.RepComparisonPNG(result.Report.Reps) }},
	}
	for _, r := range renderers {
		png, err := r.render()
		if err != nil {
			log.Printf("failed to render %s: %v", r.name, err)
			continue
		}
		path := filepath.Join(dir, r.name)
		if err := os.WriteFile(path, png, 0o644); err != nil {
			log.Fatalf("failed to write %s: %v", path, err)
		}
		log.Printf("wrote %s", path)
	}
}
