package tension

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RepScore computes the tension score for a single rep from its velocity
// profile. Slower average movement, a low peak velocity, and a long duration
// all indicate higher mechanical tension; the three are combined 50/30/20.
func RepScore(rep Rep) float64 {
	velocityScore := math.Max(0, 100-rep.AvgVelocity*100)
	controlScore := math.Max(0, 100-rep.MaxVelocity*80)
	durationScore := math.Min(100, rep.Duration*20)

	score := velocityScore*0.5 + controlScore*0.3 + durationScore*0.2
	return clampScore(score)
}

// OverallRating aggregates per-rep data into the 0-100 session rating.
//
// Reps that carry inline tension scores are averaged with a decay bonus:
// when the second half of the set moves slower than the first the lifter was
// approaching failure, which is rewarded with up to 20 extra points. Reps
// without inline scores are scored here and averaged with weights rising
// linearly from 0.8 to 1.2, so later reps count slightly more.
func OverallRating(reps []Rep) float64 {
	if len(reps) == 0 {
		return 0
	}

	if reps[0].TensionScore != nil {
		scores := make([]float64, len(reps))
		for i, r := range reps {
			scores[i] = *r.TensionScore
		}
		rating := stat.Mean(scores, nil)
		if len(reps) > 1 {
			rating += decayBonus(reps)
		}
		return clampScore(round1(rating))
	}

	scores := make([]float64, len(reps))
	for i, r := range reps {
		scores[i] = RepScore(r)
	}
	if len(scores) == 1 {
		return clampScore(round1(scores[0]))
	}
	weights := make([]float64, len(scores))
	floats.Span(weights, 0.8, 1.2)
	return clampScore(round1(stat.Mean(scores, weights)))
}

// decayBonus rewards velocity decay across the set: up to 20 points when the
// second half averages slower than the first. A set that speeds up earns a
// negative bonus.
func decayBonus(reps []Rep) float64 {
	half := len(reps) / 2
	firstAvg := avgVelocity(reps[:half])
	secondAvg := avgVelocity(reps[half:])
	if firstAvg <= 0 {
		return 0
	}
	decay := (firstAvg - secondAvg) / firstAvg
	return math.Min(20, decay*50)
}

func avgVelocity(reps []Rep) float64 {
	sum := 0.0
	for _, r := range reps {
		sum += r.AvgVelocity
	}
	return sum / float64(len(reps))
}

func clampScore(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
