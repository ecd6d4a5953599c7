package tension

import "github.com/MatthewKim323/HimAI-v2/internal/pose"

// Smooth applies a centered moving average of the given window to the speed
// values, leaving frames, timestamps, and positions untouched. The window
// shrinks at the stream boundaries instead of padding. Streams shorter than
// the window are returned as-is; the input slice is never modified.
func Smooth(samples []pose.VelocitySample, window int) []pose.VelocitySample {
	if window <= 1 || len(samples) < window {
		return samples
	}
	half := window / 2
	smoothed := make([]pose.VelocitySample, len(samples))
	for i := range samples {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half + 1
		if hi > len(samples) {
			hi = len(samples)
		}
		sum := 0.0
		for _, s := range samples[lo:hi] {
			sum += s.Speed
		}
		smoothed[i] = samples[i]
		smoothed[i].Speed = sum / float64(hi-lo)
	}
	return smoothed
}
