// Package pose defines the joint vocabulary and the landmark stream records
// consumed from the upstream body-landmark detector. The engine never runs
// pose estimation itself; it receives per-frame joint positions that are
// already normalised and timestamped.
package pose

import "fmt"

// Joint identifies a tracked body joint.
type Joint string

// Joint constants match the landmark names emitted by the detector.
const (
	JointShoulder Joint = "shoulder"
	JointElbow    Joint = "elbow"
	JointWrist    Joint = "wrist"
	JointHip      Joint = "hip"
	JointKnee     Joint = "knee"
	JointAnkle    Joint = "ankle"
)

// ValidJoints contains all joints the engine can track.
var ValidJoints = []Joint{
	JointShoulder, JointElbow, JointWrist,
	JointHip, JointKnee, JointAnkle,
}

// Valid reports whether j is a known joint.
func (j Joint) Valid() bool {
	for _, v := range ValidJoints {
		if j == v {
			return true
		}
	}
	return false
}

// ParseJoint converts a string into a Joint, rejecting unknown names.
func ParseJoint(s string) (Joint, error) {
	j := Joint(s)
	if !j.Valid() {
		return "", fmt.Errorf("unknown joint %q (valid: shoulder, elbow, wrist, hip, knee, ankle)", s)
	}
	return j, nil
}

// Side selects the left or right instance of a joint.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Valid reports whether s is a known side.
func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight
}

// ParseSide converts a string into a Side. An empty string defaults to left,
// matching the detector's landmark ordering.
func ParseSide(s string) (Side, error) {
	if s == "" {
		return SideLeft, nil
	}
	side := Side(s)
	if !side.Valid() {
		return "", fmt.Errorf("unknown side %q (valid: left, right)", s)
	}
	return side, nil
}

// index returns the position of this side within a landmark slice.
// The detector always emits left first, right second.
func (s Side) index() int {
	if s == SideRight {
		return 1
	}
	return 0
}

// Position is one 3D landmark observation with the detector's visibility
// confidence.
type Position struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// Frame holds every landmark detected in a single video frame. Landmarks
// maps a joint name to its left/right positions (left at index 0).
type Frame struct {
	Frame     int                  `json:"frame"`
	Timestamp float64              `json:"timestamp"`
	Landmarks map[Joint][]Position `json:"landmarks"`
}

// JointPosition returns the position of the requested joint and side, and
// whether the frame contains it. Frames where the detector lost a joint
// simply omit it from the landmark map.
func (f *Frame) JointPosition(joint Joint, side Side) (Position, bool) {
	positions, ok := f.Landmarks[joint]
	if !ok {
		return Position{}, false
	}
	idx := side.index()
	if idx >= len(positions) {
		return Position{}, false
	}
	return positions[idx], true
}

// VelocitySample is one scalar speed observation derived from a pair of
// consecutive frames. Position carries the vertical coordinate of the
// tracked joint, which phase-based segmentation uses instead of speed.
type VelocitySample struct {
	Frame     int     `json:"frame"`
	Timestamp float64 `json:"timestamp"`
	Speed     float64 `json:"velocity"`
	Position  float64 `json:"position"`
}
