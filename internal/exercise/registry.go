package exercise

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/MatthewKim323/HimAI-v2/internal/pose"
)

// Registry maps exercise names to validated profiles. Construct it with
// NewRegistry; a zero Registry is not usable.
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry builds a registry from the built-in tuning table.
func NewRegistry() (*Registry, error) {
	r := &Registry{profiles: make(map[string]Profile)}
	for _, p := range builtinProfiles() {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("built-in profile table: %w", err)
		}
		if _, dup := r.profiles[p.Name]; dup {
			return nil, fmt.Errorf("built-in profile table: duplicate profile %q", p.Name)
		}
		r.profiles[p.Name] = p
	}
	if _, ok := r.profiles[DefaultProfileName]; !ok {
		return nil, fmt.Errorf("built-in profile table: missing %q profile", DefaultProfileName)
	}
	return r, nil
}

// overrideProfile mirrors Profile but with pointer fields so an override file
// can change a single parameter without restating the rest.
type overrideProfile struct {
	VelocityThreshold *float64  `json:"velocity_threshold"`
	MinRepDuration    *float64  `json:"min_rep_duration"`
	MinRestDuration   *float64  `json:"min_rest_duration"`
	SmoothingWindow   *int      `json:"smoothing_window"`
	PrimaryJoints     []string  `json:"primary_joints"`
	RecommendedJoint  *string   `json:"recommended_joint"`
	MovementPattern   *string   `json:"movement_pattern"`
	Difficulty        *string   `json:"difficulty"`
	Strategy          *Strategy `json:"strategy"`
}

// LoadOverrides applies a JSON override file on top of the built-in table.
// Unknown exercise names create new profiles seeded from the default. The
// merged result is re-validated; a bad file is an error here, at startup,
// never later during analysis.
func (r *Registry) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read profile overrides %s: %w", path, err)
	}
	var overrides map[string]overrideProfile
	if err := json.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("failed to parse profile overrides %s: %w", path, err)
	}
	for name, o := range overrides {
		base, ok := r.profiles[name]
		if !ok {
			base = r.profiles[DefaultProfileName]
			base.Name = name
		}
		if o.VelocityThreshold != nil {
			base.VelocityThreshold = *o.VelocityThreshold
		}
		if o.MinRepDuration != nil {
			base.MinRepDuration = *o.MinRepDuration
		}
		if o.MinRestDuration != nil {
			base.MinRestDuration = *o.MinRestDuration
		}
		if o.SmoothingWindow != nil {
			base.SmoothingWindow = *o.SmoothingWindow
		}
		if o.PrimaryJoints != nil {
			base.PrimaryJoints = base.PrimaryJoints[:0:0]
			for _, j := range o.PrimaryJoints {
				joint, err := pose.ParseJoint(j)
				if err != nil {
					return fmt.Errorf("profile overrides %s: profile %q: %w", path, name, err)
				}
				base.PrimaryJoints = append(base.PrimaryJoints, joint)
			}
		}
		if o.RecommendedJoint != nil {
			joint, err := pose.ParseJoint(*o.RecommendedJoint)
			if err != nil {
				return fmt.Errorf("profile overrides %s: profile %q: %w", path, name, err)
			}
			base.RecommendedJoint = joint
		}
		if o.MovementPattern != nil {
			base.MovementPattern = *o.MovementPattern
		}
		if o.Difficulty != nil {
			base.Difficulty = *o.Difficulty
		}
		if o.Strategy != nil {
			base.Strategy = *o.Strategy
		}
		if err := base.Validate(); err != nil {
			return fmt.Errorf("profile overrides %s: %w", path, err)
		}
		r.profiles[name] = base
	}
	return nil
}

// Lookup returns the profile for the named exercise, falling back to the
// default profile for unknown names. The second return reports whether the
// name was known.
func (r *Registry) Lookup(name string) (Profile, bool) {
	if p, ok := r.profiles[name]; ok {
		return p, true
	}
	return r.profiles[DefaultProfileName], false
}

// Names returns every registered exercise name, sorted, excluding the
// default fallback entry.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		if name == DefaultProfileName {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
