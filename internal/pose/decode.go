package pose

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// DecodeFrames reads a JSON array of landmark frames, as produced by the
// pose-estimation collaborator. Frames are returned ordered by frame index;
// out-of-order input is tolerated and sorted rather than rejected because
// some detectors emit frames from worker pools.
func DecodeFrames(r io.Reader) ([]Frame, error) {
	var frames []Frame
	dec := json.NewDecoder(r)
	if err := dec.Decode(&frames); err != nil {
		return nil, fmt.Errorf("failed to decode landmark frames: %w", err)
	}
	sort.SliceStable(frames, func(i, j int) bool {
		return frames[i].Frame < frames[j].Frame
	})
	return frames, nil
}
