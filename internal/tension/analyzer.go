package tension

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/stat"

	"github.com/MatthewKim323/HimAI-v2/internal/exercise"
	"github.com/MatthewKim323/HimAI-v2/internal/pose"
)

// Report is the outcome of one analysis, shaped for JSON clients. A stream
// the pipeline could not get reps out of yields Success=false with guidance;
// that is a normal outcome, not an error.
type Report struct {
	Success         bool       `json:"success"`
	Error           string     `json:"error,omitempty"`
	Exercise        string     `json:"exercise"`
	Joint           pose.Joint `json:"joint"`
	Side            pose.Side  `json:"side"`
	TensionRating   float64    `json:"tension_rating"`
	RepCount        int        `json:"rep_count"`
	Reps            []Rep      `json:"reps"`
	AnalysisSummary string     `json:"analysis_summary"`
	Recommendations []string   `json:"recommendations"`
}

// Result bundles the report with the intermediate velocity stream, which the
// chart renderers need but clients receive only as pictures.
type Result struct {
	Report     Report
	Velocities []pose.VelocitySample
	Profile    exercise.Profile
}

// Analyzer runs the full pipeline against a profile registry. It is
// stateless and safe for concurrent use.
type Analyzer struct {
	registry *exercise.Registry
}

func NewAnalyzer(registry *exercise.Registry) *Analyzer {
	return &Analyzer{registry: registry}
}

// Analyze runs extraction, segmentation, and scoring over a landmark stream.
// An empty exercise name selects the default profile; an empty joint selects
// the profile's recommended joint.
func (a *Analyzer) Analyze(frames []pose.Frame, exerciseName string, joint pose.Joint, side pose.Side) Result {
	if exerciseName == "" {
		exerciseName = exercise.DefaultProfileName
	}
	profile, known := a.registry.Lookup(exerciseName)
	if !known {
		log.Printf("analysis: unknown exercise %q, using %s profile", exerciseName, profile.Name)
	}
	if joint == "" {
		joint = profile.RecommendedJoint
	}
	if side == "" {
		side = pose.SideLeft
	}

	result := Result{Profile: profile}
	result.Report = Report{Exercise: exerciseName, Joint: joint, Side: side}

	if len(frames) == 0 {
		return errorResult(result, "No pose data provided")
	}

	velocities := ExtractVelocities(frames, joint, side)
	if len(velocities) == 0 {
		return errorResult(result, "Could not track joint movement")
	}
	result.Velocities = velocities
	log.Printf("analysis: %s joint=%s side=%s: %d velocity samples from %d frames",
		exerciseName, joint, side, len(velocities), len(frames))

	reps := SegmentReps(profile, velocities)
	if len(reps) == 0 {
		return errorResult(result, "No repetitions detected. Try recording a full set.")
	}

	rating := OverallRating(reps)
	log.Printf("analysis: %s: %d reps, rating %.1f/100", exerciseName, len(reps), rating)

	result.Report.Success = true
	result.Report.TensionRating = rating
	result.Report.RepCount = len(reps)
	result.Report.Reps = reps
	result.Report.AnalysisSummary = summarize(rating, reps)
	result.Report.Recommendations = recommend(rating, reps)
	return result
}

func errorResult(result Result, message string) Result {
	result.Report.Success = false
	result.Report.Error = message
	result.Report.Reps = []Rep{}
	result.Report.AnalysisSummary = message
	result.Report.Recommendations = []string{
		"Please upload a clear video showing the full exercise movement",
	}
	return result
}

// summarize produces the human-readable line shown above the rep table.
func summarize(rating float64, reps []Rep) string {
	avgDuration := 0.0
	avgVel := 0.0
	for _, r := range reps {
		avgDuration += r.Duration
		avgVel += r.AvgVelocity
	}
	avgDuration /= float64(len(reps))
	avgVel /= float64(len(reps))

	summary := fmt.Sprintf("Analyzed %d repetitions. ", len(reps))
	summary += fmt.Sprintf("Average time under tension: %.1fs per rep. ", avgDuration)
	summary += fmt.Sprintf("Average movement velocity: %.3f units/sec. ", avgVel)

	switch {
	case rating >= 80:
		summary += "Excellent mechanical tension! Your controlled tempo is maximizing muscle engagement."
	case rating >= 60:
		summary += "Good tension, but there's room for improvement. Try slowing down the eccentric phase."
	default:
		summary += "Low tension detected. Focus on slower, more controlled movements to increase time under tension."
	}
	return summary
}

// recommend builds the coaching list. When nothing fires, the lifter gets
// the positive pair instead of an empty list.
func recommend(rating float64, reps []Rep) []string {
	var recs []string

	if rating < 60 {
		recs = append(recs,
			"Slow down your repetitions - aim for 3-4 seconds per phase",
			"Focus on the eccentric (lowering) portion of the movement")
	}

	avgDuration := 0.0
	velocities := make([]float64, len(reps))
	for i, r := range reps {
		avgDuration += r.Duration
		velocities[i] = r.AvgVelocity
	}
	avgDuration /= float64(len(reps))
	if avgDuration < 2.0 {
		recs = append(recs, "Increase time under tension - each rep should take at least 2-3 seconds")
	}
	if len(velocities) > 1 && stat.PopStdDev(velocities, nil) > 0.1 {
		recs = append(recs, "Try to maintain consistent tempo across all reps")
	}

	if len(recs) == 0 {
		recs = append(recs,
			"Great form! Maintain this tempo and focus on progressive overload",
			"Consider adding a pause at peak contraction for even more tension")
	}
	return recs
}
