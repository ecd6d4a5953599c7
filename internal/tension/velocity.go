// Package tension implements the analysis pipeline: joint velocity
// extraction, smoothing, rep segmentation, tension scoring, and report
// assembly. The pipeline is pure computation over an in-memory landmark
// stream; persistence and transport live in the packages around it.
package tension

import (
	"math"

	"github.com/MatthewKim323/HimAI-v2/internal/pose"
)

// ExtractVelocities derives scalar joint speeds from consecutive landmark
// frames. Each sample covers the interval ending at its frame: speed is the
// Euclidean distance the joint travelled divided by the elapsed time. Frames
// where the detector lost the joint are skipped, so the distance is always
// between the two nearest frames that actually carry it. Non-increasing
// timestamps yield a zero-speed sample rather than an error or an infinity.
func ExtractVelocities(frames []pose.Frame, joint pose.Joint, side pose.Side) []pose.VelocitySample {
	var samples []pose.VelocitySample
	var prev pose.Position
	var prevTime float64
	havePrev := false

	for i := range frames {
		cur, ok := frames[i].JointPosition(joint, side)
		if !ok {
			continue
		}
		if havePrev {
			speed := 0.0
			if dt := frames[i].Timestamp - prevTime; dt > 0 {
				speed = distance(prev, cur) / dt
			}
			samples = append(samples, pose.VelocitySample{
				Frame:     frames[i].Frame,
				Timestamp: frames[i].Timestamp,
				Speed:     speed,
				Position:  cur.Y,
			})
		}
		prev = cur
		prevTime = frames[i].Timestamp
		havePrev = true
	}
	return samples
}

func distance(a, b pose.Position) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
