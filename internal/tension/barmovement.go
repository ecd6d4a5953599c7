package tension

import "github.com/MatthewKim323/HimAI-v2/internal/pose"

// Bar-movement segmentation detects reps from the vertical path of the
// tracked joint rather than its speed, which survives the slow, controlled
// tempo where threshold detection sees nothing. The vertical coordinate
// grows downward, so a pull registers as positive movement.

const barMovementThreshold = 0.005

type barMovement struct {
	frame     int
	timestamp float64
	delta     float64
}

type barPhase struct {
	startIdx, endIdx int
}

// barMovementReps matches pull phases with the release phase that follows
// each of them; a completed pull/release cycle is one rep. Velocity
// statistics come from the (smoothed) stream restricted to the rep's frame
// range, and each rep carries an inline tension score derived from its
// average speed.
func barMovementReps(samples []pose.VelocitySample) []Rep {
	movements := positionDeltas(samples)
	if len(movements) == 0 {
		return nil
	}

	pulls := pullPhases(movements)

	var reps []Rep
	for _, pull := range pulls {
		release, ok := releaseAfter(movements, pull.endIdx)
		if !ok {
			continue
		}
		start := movements[pull.startIdx]
		end := movements[release.endIdx]
		rep, ok := newBarMovementRep(len(reps)+1, samples, start, end)
		if !ok {
			continue
		}
		reps = append(reps, rep)
	}
	return reps
}

func positionDeltas(samples []pose.VelocitySample) []barMovement {
	if len(samples) < 2 {
		return nil
	}
	movements := make([]barMovement, 0, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		movements = append(movements, barMovement{
			frame:     samples[i].Frame,
			timestamp: samples[i].Timestamp,
			delta:     samples[i].Position - samples[i-1].Position,
		})
	}
	return movements
}

// pullPhases finds maximal runs of downward movement that open with a delta
// above the threshold. Single-sample runs are noise and are dropped.
func pullPhases(movements []barMovement) []barPhase {
	var phases []barPhase
	i := 0
	for i < len(movements) {
		if movements[i].delta <= barMovementThreshold {
			i++
			continue
		}
		start := i
		for i < len(movements) && movements[i].delta > 0 {
			i++
		}
		if end := i - 1; end > start {
			phases = append(phases, barPhase{startIdx: start, endIdx: end})
		}
	}
	return phases
}

// releaseAfter scans forward from the end of a pull for the next run of
// upward movement opening with a delta below -threshold.
func releaseAfter(movements []barMovement, pullEnd int) (barPhase, bool) {
	for i := pullEnd + 1; i < len(movements); i++ {
		if movements[i].delta >= -barMovementThreshold {
			continue
		}
		start := i
		for i < len(movements) && movements[i].delta < 0 {
			i++
		}
		return barPhase{startIdx: start, endIdx: i - 1}, true
	}
	return barPhase{}, false
}

func newBarMovementRep(number int, samples []pose.VelocitySample, start, end barMovement) (Rep, bool) {
	// Frame ranges can disagree with sample indices when the detector
	// dropped frames, so intersect by frame number.
	var speeds []float64
	for _, s := range samples {
		if s.Frame >= start.frame && s.Frame <= end.frame {
			speeds = append(speeds, s.Speed)
		}
	}
	if len(speeds) == 0 {
		return Rep{}, false
	}
	sum, minV, maxV := 0.0, speeds[0], speeds[0]
	for _, v := range speeds {
		sum += v
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	avg := sum / float64(len(speeds))
	score := 100 - avg*50
	if score < 0 {
		score = 0
	}
	return Rep{
		RepNumber:    number,
		StartFrame:   start.frame,
		EndFrame:     end.frame,
		StartTime:    start.timestamp,
		EndTime:      end.timestamp,
		Duration:     end.timestamp - start.timestamp,
		AvgVelocity:  avg,
		MaxVelocity:  maxV,
		MinVelocity:  minV,
		TensionScore: &score,
		RepType:      "bar_movement",
	}, true
}
