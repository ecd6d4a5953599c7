package tension

import (
	"gonum.org/v1/gonum/stat"

	"github.com/MatthewKim323/HimAI-v2/internal/exercise"
	"github.com/MatthewKim323/HimAI-v2/internal/pose"
)

// Rep is one detected repetition with its velocity statistics. TensionScore
// is only present for strategies that score reps inline (bar movement);
// threshold-detected reps are scored at rating time instead.
type Rep struct {
	RepNumber    int      `json:"rep_number"`
	StartFrame   int      `json:"start_frame"`
	EndFrame     int      `json:"end_frame"`
	StartTime    float64  `json:"start_time"`
	EndTime      float64  `json:"end_time"`
	Duration     float64  `json:"duration"`
	AvgVelocity  float64  `json:"avg_velocity"`
	MaxVelocity  float64  `json:"max_velocity"`
	MinVelocity  float64  `json:"min_velocity"`
	TensionScore *float64 `json:"tension_score,omitempty"`
	RepType      string   `json:"rep_type"`
}

// SegmentReps splits a velocity stream into repetitions using the strategy
// the profile selects. The stream is smoothed with the profile's window
// first; the threshold strategy still measures per-rep statistics on the raw
// stream so smoothing cannot flatten the reported extrema.
func SegmentReps(p exercise.Profile, samples []pose.VelocitySample) []Rep {
	if len(samples) == 0 {
		return nil
	}
	smoothed := Smooth(samples, p.SmoothingWindow)
	switch p.Strategy {
	case exercise.StrategyBarMovement:
		return barMovementReps(smoothed)
	default:
		return thresholdReps(p, samples, smoothed)
	}
}

// thresholdReps runs the RESTING/IN_REP state machine over the smoothed
// stream. A rep starts when smoothed speed rises above the threshold after
// at least min_rest of quiet, and ends when it drops back below. Candidate
// intervals must last min_rep_duration and look like actual movement before
// they count. An interval still open when the stream ends is discarded.
func thresholdReps(p exercise.Profile, raw, smoothed []pose.VelocitySample) []Rep {
	var reps []Rep
	inRep := false
	startIdx := 0
	lastRepEnd := 0.0

	for i, s := range smoothed {
		switch {
		case !inRep && s.Speed > p.VelocityThreshold:
			if s.Timestamp-lastRepEnd >= p.MinRestDuration {
				inRep = true
				startIdx = i
			}
		case inRep && s.Speed < p.VelocityThreshold:
			interval := raw[startIdx : i+1]
			duration := interval[len(interval)-1].Timestamp - interval[0].Timestamp
			if duration >= p.MinRepDuration && significantMovement(interval) {
				reps = append(reps, newThresholdRep(len(reps)+1, interval, duration))
				lastRepEnd = interval[len(interval)-1].Timestamp
			}
			inRep = false
		}
	}
	return reps
}

func newThresholdRep(number int, interval []pose.VelocitySample, duration float64) Rep {
	speeds := make([]float64, len(interval))
	minV, maxV := interval[0].Speed, interval[0].Speed
	for i, s := range interval {
		speeds[i] = s.Speed
		if s.Speed < minV {
			minV = s.Speed
		}
		if s.Speed > maxV {
			maxV = s.Speed
		}
	}
	return Rep{
		RepNumber:   number,
		StartFrame:  interval[0].Frame,
		EndFrame:    interval[len(interval)-1].Frame,
		StartTime:   interval[0].Timestamp,
		EndTime:     interval[len(interval)-1].Timestamp,
		Duration:    duration,
		AvgVelocity: stat.Mean(speeds, nil),
		MaxVelocity: maxV,
		MinVelocity: minV,
		RepType:     "threshold",
	}
}

// significantMovement filters out jitter that crossed the threshold without
// being a real rep. A rep needs a speed range of at least 0.03, at least
// three samples, and a rise-peak-fall shape: the middle third of the
// interval must average strictly faster than both the first and last thirds.
func significantMovement(interval []pose.VelocitySample) bool {
	if len(interval) < 3 {
		return false
	}
	speeds := make([]float64, len(interval))
	minV, maxV := interval[0].Speed, interval[0].Speed
	for i, s := range interval {
		speeds[i] = s.Speed
		if s.Speed < minV {
			minV = s.Speed
		}
		if s.Speed > maxV {
			maxV = s.Speed
		}
	}
	if maxV-minV < 0.03 {
		return false
	}
	third := len(speeds) / 3
	if third == 0 {
		third = 1
	}
	first := stat.Mean(speeds[:third], nil)
	middle := stat.Mean(speeds[third:len(speeds)-third], nil)
	last := stat.Mean(speeds[len(speeds)-third:], nil)
	return middle > first && middle > last
}
