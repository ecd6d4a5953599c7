package tension

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scorePtr(v float64) *float64 { return &v }

func TestRepScore(t *testing.T) {
	t.Parallel()

	t.Run("slow controlled long rep maxes out", func(t *testing.T) {
		rep := Rep{AvgVelocity: 0, MaxVelocity: 0, Duration: 5}
		assert.InDelta(t, 100.0, RepScore(rep), 1e-9)
	})

	t.Run("weighted combination", func(t *testing.T) {
		rep := Rep{AvgVelocity: 0.2, MaxVelocity: 0.5, Duration: 2}
		// velocity 80*0.5 + control 60*0.3 + duration 40*0.2
		assert.InDelta(t, 66.0, RepScore(rep), 1e-9)
	})

	t.Run("fast sloppy rep scores near zero", func(t *testing.T) {
		rep := Rep{AvgVelocity: 1.0, MaxVelocity: 1.5, Duration: 0.5}
		assert.InDelta(t, 2.0, RepScore(rep), 1e-9)
	})

	t.Run("slower average velocity never scores lower", func(t *testing.T) {
		fast := Rep{AvgVelocity: 0.5, MaxVelocity: 0.6, Duration: 2}
		slow := Rep{AvgVelocity: 0.1, MaxVelocity: 0.6, Duration: 2}
		assert.Greater(t, RepScore(slow), RepScore(fast))
	})

	t.Run("never leaves the 0-100 range", func(t *testing.T) {
		extremes := []Rep{
			{AvgVelocity: 50, MaxVelocity: 50, Duration: 0},
			{AvgVelocity: 0, MaxVelocity: 0, Duration: 1000},
			{AvgVelocity: -1, MaxVelocity: -1, Duration: -5},
		}
		for _, rep := range extremes {
			score := RepScore(rep)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	})
}

func TestOverallRating(t *testing.T) {
	t.Parallel()

	t.Run("no reps is zero", func(t *testing.T) {
		assert.Zero(t, OverallRating(nil))
	})

	t.Run("inline scores averaged", func(t *testing.T) {
		reps := []Rep{
			{AvgVelocity: 0.2, TensionScore: scorePtr(80)},
			{AvgVelocity: 0.2, TensionScore: scorePtr(90)},
		}
		// No velocity change between halves, so no decay bonus.
		assert.InDelta(t, 85.0, OverallRating(reps), 1e-9)
	})

	t.Run("velocity decay earns a bonus", func(t *testing.T) {
		reps := []Rep{
			{AvgVelocity: 0.2, TensionScore: scorePtr(70)},
			{AvgVelocity: 0.1, TensionScore: scorePtr(70)},
		}
		// Decay (0.2-0.1)/0.2 = 0.5, bonus capped at 20.
		assert.InDelta(t, 90.0, OverallRating(reps), 1e-9)
	})

	t.Run("speeding up is penalized", func(t *testing.T) {
		reps := []Rep{
			{AvgVelocity: 0.1, TensionScore: scorePtr(80)},
			{AvgVelocity: 0.2, TensionScore: scorePtr(80)},
		}
		// Decay is -1, so the "bonus" is -50 points.
		assert.InDelta(t, 30.0, OverallRating(reps), 1e-9)
	})

	t.Run("single inline rep has no bonus", func(t *testing.T) {
		reps := []Rep{{AvgVelocity: 0.2, TensionScore: scorePtr(77.25)}}
		assert.InDelta(t, 77.3, OverallRating(reps), 1e-9)
	})

	t.Run("bonus cannot push past 100", func(t *testing.T) {
		reps := []Rep{
			{AvgVelocity: 0.4, TensionScore: scorePtr(95)},
			{AvgVelocity: 0.1, TensionScore: scorePtr(95)},
		}
		assert.InDelta(t, 100.0, OverallRating(reps), 1e-9)
	})

	t.Run("scoreless reps use weighted average", func(t *testing.T) {
		slow := Rep{AvgVelocity: 0.1, MaxVelocity: 0.2, Duration: 3}
		fast := Rep{AvgVelocity: 0.6, MaxVelocity: 0.9, Duration: 1}
		s1, s2 := RepScore(slow), RepScore(fast)
		want := (0.8*s1 + 1.2*s2) / 2

		got := OverallRating([]Rep{slow, fast})
		assert.InDelta(t, want, got, 0.05+1e-9) // rating is rounded to one decimal
	})

	t.Run("later reps weigh more", func(t *testing.T) {
		slow := Rep{AvgVelocity: 0.1, MaxVelocity: 0.2, Duration: 3}
		fast := Rep{AvgVelocity: 0.8, MaxVelocity: 1.0, Duration: 0.5}
		slowLast := OverallRating([]Rep{fast, slow})
		fastLast := OverallRating([]Rep{slow, fast})
		assert.Greater(t, slowLast, fastLast)
	})

	t.Run("single scoreless rep", func(t *testing.T) {
		rep := Rep{AvgVelocity: 0.2, MaxVelocity: 0.5, Duration: 2}
		assert.InDelta(t, 66.0, OverallRating([]Rep{rep}), 1e-9)
	})
}
