package exercise

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewKim323/HimAI-v2/internal/pose"
)

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry()
	require.NoError(t, err)

	t.Run("built-in table is valid", func(t *testing.T) {
		for _, name := range reg.Names() {
			p, known := reg.Lookup(name)
			assert.True(t, known)
			assert.NoError(t, p.Validate(), "profile %s", name)
			assert.Equal(t, 1, p.SmoothingWindow%2, "window must be odd for %s", name)
		}
	})

	t.Run("default profile exists", func(t *testing.T) {
		p, known := reg.Lookup(DefaultProfileName)
		assert.True(t, known)
		assert.Equal(t, 0.05, p.VelocityThreshold)
		assert.Equal(t, 0.6, p.MinRepDuration)
		assert.Equal(t, 0.2, p.MinRestDuration)
		assert.Equal(t, pose.JointElbow, p.RecommendedJoint)
	})

	t.Run("unknown exercise falls back to default", func(t *testing.T) {
		p, known := reg.Lookup("underwater_basket_weaving")
		assert.False(t, known)
		assert.Equal(t, DefaultProfileName, p.Name)
	})

	t.Run("lat pulldown uses bar movement", func(t *testing.T) {
		p, known := reg.Lookup("lat_pulldown")
		require.True(t, known)
		assert.Equal(t, StrategyBarMovement, p.Strategy)
		assert.Equal(t, 0.02, p.VelocityThreshold)
	})

	t.Run("names excludes default and is sorted", func(t *testing.T) {
		names := reg.Names()
		assert.NotContains(t, names, DefaultProfileName)
		assert.Contains(t, names, "deadlift")
		for i := 1; i < len(names); i++ {
			assert.Less(t, names[i-1], names[i])
		}
	})
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "profiles.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("partial override keeps other fields", func(t *testing.T) {
		t.Parallel()
		reg, err := NewRegistry()
		require.NoError(t, err)

		path := writeFile(t, `{"deadlift": {"velocity_threshold": 0.1}}`)
		require.NoError(t, reg.LoadOverrides(path))

		p, known := reg.Lookup("deadlift")
		require.True(t, known)
		assert.Equal(t, 0.1, p.VelocityThreshold)
		assert.Equal(t, 1.2, p.MinRepDuration)
		assert.Equal(t, pose.JointHip, p.RecommendedJoint)
	})

	t.Run("new exercise seeded from default", func(t *testing.T) {
		t.Parallel()
		reg, err := NewRegistry()
		require.NoError(t, err)

		path := writeFile(t, `{"farmer_carry": {"min_rep_duration": 2.5, "recommended_joint": "wrist"}}`)
		require.NoError(t, reg.LoadOverrides(path))

		p, known := reg.Lookup("farmer_carry")
		require.True(t, known)
		assert.Equal(t, "farmer_carry", p.Name)
		assert.Equal(t, 2.5, p.MinRepDuration)
		assert.Equal(t, pose.JointWrist, p.RecommendedJoint)
		assert.Equal(t, 0.05, p.VelocityThreshold)
	})

	t.Run("even smoothing window rejected", func(t *testing.T) {
		t.Parallel()
		reg, err := NewRegistry()
		require.NoError(t, err)

		path := writeFile(t, `{"squat": {"smoothing_window": 4}}`)
		err = reg.LoadOverrides(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "smoothing_window")
	})

	t.Run("unknown joint rejected", func(t *testing.T) {
		t.Parallel()
		reg, err := NewRegistry()
		require.NoError(t, err)

		path := writeFile(t, `{"squat": {"recommended_joint": "femur"}}`)
		assert.Error(t, reg.LoadOverrides(path))
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		t.Parallel()
		reg, err := NewRegistry()
		require.NoError(t, err)

		path := writeFile(t, `{"squat": `)
		assert.Error(t, reg.LoadOverrides(path))
	})

	t.Run("missing file rejected", func(t *testing.T) {
		t.Parallel()
		reg, err := NewRegistry()
		require.NoError(t, err)
		assert.Error(t, reg.LoadOverrides(filepath.Join(t.TempDir(), "nope.json")))
	})
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	t.Run("catalog entries resolve to registry profiles", func(t *testing.T) {
		reg, err := NewRegistry()
		require.NoError(t, err)
		for _, e := range Catalog() {
			p, known := reg.Lookup(e.Name)
			assert.True(t, known, "catalog entry %s missing from registry", e.Name)
			assert.Equal(t, p.RecommendedJoint, e.RecommendedJoint, e.Name)
			assert.Equal(t, p.MovementPattern, e.MovementPattern, e.Name)
		}
	})

	t.Run("detail lookup", func(t *testing.T) {
		e, ok := CatalogEntryFor("lat_pulldown")
		require.True(t, ok)
		assert.Equal(t, "Lat Pulldown", e.DisplayName)
		assert.NotEmpty(t, e.Tips)
		assert.NotEmpty(t, e.CommonMistakes)
	})

	t.Run("short alias detail lookup", func(t *testing.T) {
		e, ok := CatalogEntryFor("bicep_curl")
		require.True(t, ok)
		assert.Equal(t, "Bicep Curl", e.DisplayName)
	})

	t.Run("unknown exercise", func(t *testing.T) {
		_, ok := CatalogEntryFor("nonexistent")
		assert.False(t, ok)
	})

	t.Run("joint catalog covers every valid joint", func(t *testing.T) {
		infos := JointCatalog()
		assert.Len(t, infos, len(pose.ValidJoints))
		for _, info := range infos {
			assert.True(t, info.Name.Valid())
			assert.NotEmpty(t, info.Description)
		}
	})
}
