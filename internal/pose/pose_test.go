package pose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJoint(t *testing.T) {
	t.Parallel()

	t.Run("valid joints", func(t *testing.T) {
		for _, j := range ValidJoints {
			parsed, err := ParseJoint(string(j))
			require.NoError(t, err)
			assert.Equal(t, j, parsed)
		}
	})

	t.Run("unknown joint", func(t *testing.T) {
		_, err := ParseJoint("femur")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "femur")
	})

	t.Run("empty is not a joint", func(t *testing.T) {
		_, err := ParseJoint("")
		assert.Error(t, err)
	})
}

func TestParseSide(t *testing.T) {
	t.Parallel()

	t.Run("left and right", func(t *testing.T) {
		for _, s := range []string{"left", "right"} {
			parsed, err := ParseSide(s)
			require.NoError(t, err)
			assert.Equal(t, Side(s), parsed)
		}
	})

	t.Run("empty defaults to left", func(t *testing.T) {
		side, err := ParseSide("")
		require.NoError(t, err)
		assert.Equal(t, SideLeft, side)
	})

	t.Run("unknown side", func(t *testing.T) {
		_, err := ParseSide("middle")
		assert.Error(t, err)
	})
}

func TestJointPosition(t *testing.T) {
	t.Parallel()

	frame := Frame{
		Frame:     3,
		Timestamp: 0.1,
		Landmarks: map[Joint][]Position{
			JointWrist: {{X: 1}, {X: 2}},
			JointKnee:  {{X: 5}},
		},
	}

	t.Run("left is index zero", func(t *testing.T) {
		p, ok := frame.JointPosition(JointWrist, SideLeft)
		require.True(t, ok)
		assert.Equal(t, 1.0, p.X)
	})

	t.Run("right is index one", func(t *testing.T) {
		p, ok := frame.JointPosition(JointWrist, SideRight)
		require.True(t, ok)
		assert.Equal(t, 2.0, p.X)
	})

	t.Run("missing side", func(t *testing.T) {
		_, ok := frame.JointPosition(JointKnee, SideRight)
		assert.False(t, ok)
	})

	t.Run("missing joint", func(t *testing.T) {
		_, ok := frame.JointPosition(JointHip, SideLeft)
		assert.False(t, ok)
	})
}

func TestDecodeFrames(t *testing.T) {
	t.Parallel()

	t.Run("decodes and sorts by frame index", func(t *testing.T) {
		input := `[
			{"frame": 2, "timestamp": 0.066, "landmarks": {"wrist": [{"x": 0.2, "y": 0.4, "z": 0, "visibility": 0.98}]}},
			{"frame": 0, "timestamp": 0.0, "landmarks": {"wrist": [{"x": 0.1, "y": 0.3, "z": 0, "visibility": 0.99}]}},
			{"frame": 1, "timestamp": 0.033, "landmarks": {"wrist": [{"x": 0.15, "y": 0.35, "z": 0, "visibility": 0.99}]}}
		]`
		frames, err := DecodeFrames(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, frames, 3)
		assert.Equal(t, []int{0, 1, 2}, []int{frames[0].Frame, frames[1].Frame, frames[2].Frame})

		p, ok := frames[2].JointPosition(JointWrist, SideLeft)
		require.True(t, ok)
		assert.Equal(t, 0.4, p.Y)
		assert.Equal(t, 0.98, p.Visibility)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := DecodeFrames(strings.NewReader("{not json"))
		assert.Error(t, err)
	})

	t.Run("empty array", func(t *testing.T) {
		frames, err := DecodeFrames(strings.NewReader("[]"))
		require.NoError(t, err)
		assert.Empty(t, frames)
	})
}
