// Package exercise holds the per-exercise tuning profiles that govern rep
// segmentation. The built-in table is the single source of defaults; an
// optional JSON file can override or extend it at startup.
package exercise

import (
	"fmt"

	"github.com/MatthewKim323/HimAI-v2/internal/pose"
)

// Strategy selects which segmentation algorithm a profile uses.
type Strategy string

const (
	// StrategyThreshold is the velocity threshold-crossing state machine.
	StrategyThreshold Strategy = "threshold"
	// StrategyBarMovement matches pull/release phases of the vertical joint
	// position. Reserved for exercises whose velocity signal is too faint
	// for reliable thresholding.
	StrategyBarMovement Strategy = "bar_movement"
)

// Valid reports whether s is a known segmentation strategy.
func (s Strategy) Valid() bool {
	return s == StrategyThreshold || s == StrategyBarMovement
}

// Profile is the tuned parameter set for one named exercise. Profiles are
// immutable once the registry is built.
type Profile struct {
	Name              string       `json:"name"`
	VelocityThreshold float64      `json:"velocity_threshold"`
	MinRepDuration    float64      `json:"min_rep_duration"`
	MinRestDuration   float64      `json:"min_rest_duration"`
	SmoothingWindow   int          `json:"smoothing_window"`
	PrimaryJoints     []pose.Joint `json:"primary_joints"`
	RecommendedJoint  pose.Joint   `json:"recommended_joint"`
	MovementPattern   string       `json:"movement_pattern"`
	Difficulty        string       `json:"difficulty,omitempty"`
	Strategy          Strategy     `json:"strategy,omitempty"`
}

// Validate checks the invariants the segmentation pipeline relies on.
// Registry construction calls this once per profile so nothing needs to be
// re-checked per frame.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile has no name")
	}
	if p.VelocityThreshold <= 0 {
		return fmt.Errorf("profile %q: velocity_threshold must be positive, got %v", p.Name, p.VelocityThreshold)
	}
	if p.MinRepDuration <= 0 {
		return fmt.Errorf("profile %q: min_rep_duration must be positive, got %v", p.Name, p.MinRepDuration)
	}
	if p.MinRestDuration < 0 {
		return fmt.Errorf("profile %q: min_rest_duration must be non-negative, got %v", p.Name, p.MinRestDuration)
	}
	if p.SmoothingWindow < 1 || p.SmoothingWindow%2 == 0 {
		return fmt.Errorf("profile %q: smoothing_window must be an odd integer >= 1, got %d", p.Name, p.SmoothingWindow)
	}
	if !p.RecommendedJoint.Valid() {
		return fmt.Errorf("profile %q: unknown recommended_joint %q", p.Name, p.RecommendedJoint)
	}
	for _, j := range p.PrimaryJoints {
		if !j.Valid() {
			return fmt.Errorf("profile %q: unknown primary joint %q", p.Name, j)
		}
	}
	if !p.Strategy.Valid() {
		return fmt.Errorf("profile %q: unknown strategy %q", p.Name, p.Strategy)
	}
	return nil
}

// DefaultProfileName is the registry key used when an exercise is unknown.
const DefaultProfileName = "default"

// builtinProfiles is the canonical tuning table. Smoothing windows are odd
// so the moving average stays centered.
func builtinProfiles() []Profile {
	return []Profile{
		// Upper body pushing
		{
			Name:              "barbell_bench_press",
			VelocityThreshold: 0.06,
			MinRepDuration:    1.2,
			MinRestDuration:   0.5,
			SmoothingWindow:   7,
			PrimaryJoints:     []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist},
			RecommendedJoint:  pose.JointElbow,
			MovementPattern:   "horizontal_push",
			Difficulty:        "intermediate",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "dumbbell_bench_press",
			VelocityThreshold: 0.05,
			MinRepDuration:    1.0,
			MinRestDuration:   0.4,
			SmoothingWindow:   7,
			PrimaryJoints:     []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist},
			RecommendedJoint:  pose.JointElbow,
			MovementPattern:   "horizontal_push",
			Difficulty:        "intermediate",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "incline_bench_press",
			VelocityThreshold: 0.06,
			MinRepDuration:    1.1,
			MinRestDuration:   0.4,
			SmoothingWindow:   7,
			PrimaryJoints:     []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist},
			RecommendedJoint:  pose.JointElbow,
			MovementPattern:   "incline_push",
			Difficulty:        "intermediate",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "push_up",
			VelocityThreshold: 0.06,
			MinRepDuration:    0.8,
			MinRestDuration:   0.3,
			SmoothingWindow:   5,
			PrimaryJoints:     []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist, pose.JointHip},
			RecommendedJoint:  pose.JointShoulder,
			MovementPattern:   "vertical_push",
			Difficulty:        "beginner",
			Strategy:          StrategyThreshold,
		},

		// Upper body pulling
		{
			// Very low thresholds: the velocity signal on a controlled
			// pulldown is close to detector noise, so segmentation runs on
			// bar movement instead of speed.
			Name:              "lat_pulldown",
			VelocityThreshold: 0.02,
			MinRepDuration:    0.2,
			MinRestDuration:   0.1,
			SmoothingWindow:   3,
			PrimaryJoints:     []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist},
			RecommendedJoint:  pose.JointShoulder,
			MovementPattern:   "vertical_pull",
			Difficulty:        "beginner",
			Strategy:          StrategyBarMovement,
		},
		{
			Name:              "pull_up",
			VelocityThreshold: 0.08,
			MinRepDuration:    1.0,
			MinRestDuration:   0.4,
			SmoothingWindow:   7,
			PrimaryJoints:     []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist},
			RecommendedJoint:  pose.JointShoulder,
			MovementPattern:   "vertical_pull",
			Difficulty:        "intermediate",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "seated_cable_row",
			VelocityThreshold: 0.05,
			MinRepDuration:    0.9,
			MinRestDuration:   0.3,
			SmoothingWindow:   5,
			PrimaryJoints:     []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist, pose.JointHip},
			RecommendedJoint:  pose.JointElbow,
			MovementPattern:   "horizontal_pull",
			Difficulty:        "beginner",
			Strategy:          StrategyThreshold,
		},

		// Arm isolation
		{
			Name:              "barbell_bicep_curl",
			VelocityThreshold: 0.04,
			MinRepDuration:    0.7,
			MinRestDuration:   0.2,
			SmoothingWindow:   3,
			PrimaryJoints:     []pose.Joint{pose.JointElbow, pose.JointWrist},
			RecommendedJoint:  pose.JointElbow,
			MovementPattern:   "horizontal_flexion",
			Difficulty:        "beginner",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "dumbbell_bicep_curl",
			VelocityThreshold: 0.04,
			MinRepDuration:    0.6,
			MinRestDuration:   0.2,
			SmoothingWindow:   3,
			PrimaryJoints:     []pose.Joint{pose.JointElbow, pose.JointWrist},
			RecommendedJoint:  pose.JointElbow,
			MovementPattern:   "horizontal_flexion",
			Difficulty:        "beginner",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "tricep_pushdown",
			VelocityThreshold: 0.05,
			MinRepDuration:    0.6,
			MinRestDuration:   0.2,
			SmoothingWindow:   3,
			PrimaryJoints:     []pose.Joint{pose.JointElbow, pose.JointWrist},
			RecommendedJoint:  pose.JointElbow,
			MovementPattern:   "vertical_extension",
			Difficulty:        "beginner",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "skull_crushers",
			VelocityThreshold: 0.04,
			MinRepDuration:    0.8,
			MinRestDuration:   0.3,
			SmoothingWindow:   5,
			PrimaryJoints:     []pose.Joint{pose.JointElbow, pose.JointWrist},
			RecommendedJoint:  pose.JointElbow,
			MovementPattern:   "horizontal_extension",
			Difficulty:        "intermediate",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "overhead_tricep_press",
			VelocityThreshold: 0.05,
			MinRepDuration:    0.8,
			MinRestDuration:   0.3,
			SmoothingWindow:   5,
			PrimaryJoints:     []pose.Joint{pose.JointElbow, pose.JointWrist, pose.JointShoulder},
			RecommendedJoint:  pose.JointElbow,
			MovementPattern:   "vertical_extension",
			Difficulty:        "intermediate",
			Strategy:          StrategyThreshold,
		},

		// Shoulders
		{
			Name:              "shoulder_press",
			VelocityThreshold: 0.06,
			MinRepDuration:    1.0,
			MinRestDuration:   0.4,
			SmoothingWindow:   7,
			PrimaryJoints:     []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist},
			RecommendedJoint:  pose.JointShoulder,
			MovementPattern:   "vertical_press",
			Difficulty:        "intermediate",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "lateral_raises",
			VelocityThreshold: 0.04,
			MinRepDuration:    0.8,
			MinRestDuration:   0.3,
			SmoothingWindow:   5,
			PrimaryJoints:     []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist},
			RecommendedJoint:  pose.JointShoulder,
			MovementPattern:   "lateral_abduction",
			Difficulty:        "beginner",
			Strategy:          StrategyThreshold,
		},

		// Lower body
		{
			Name:              "barbell_squat",
			VelocityThreshold: 0.08,
			MinRepDuration:    1.5,
			MinRestDuration:   0.6,
			SmoothingWindow:   9,
			PrimaryJoints:     []pose.Joint{pose.JointHip, pose.JointKnee, pose.JointAnkle, pose.JointShoulder},
			RecommendedJoint:  pose.JointKnee,
			MovementPattern:   "vertical_squat",
			Difficulty:        "intermediate",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "dumbbell_goblet_squat",
			VelocityThreshold: 0.07,
			MinRepDuration:    1.3,
			MinRestDuration:   0.5,
			SmoothingWindow:   7,
			PrimaryJoints:     []pose.Joint{pose.JointHip, pose.JointKnee, pose.JointAnkle, pose.JointElbow},
			RecommendedJoint:  pose.JointKnee,
			MovementPattern:   "vertical_squat",
			Difficulty:        "beginner",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "deadlift",
			VelocityThreshold: 0.08,
			MinRepDuration:    1.2,
			MinRestDuration:   0.8,
			SmoothingWindow:   9,
			PrimaryJoints:     []pose.Joint{pose.JointHip, pose.JointKnee, pose.JointAnkle, pose.JointShoulder},
			RecommendedJoint:  pose.JointHip,
			MovementPattern:   "hip_hinge",
			Difficulty:        "intermediate",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "romanian_deadlift",
			VelocityThreshold: 0.07,
			MinRepDuration:    1.0,
			MinRestDuration:   0.6,
			SmoothingWindow:   7,
			PrimaryJoints:     []pose.Joint{pose.JointHip, pose.JointKnee, pose.JointAnkle, pose.JointShoulder},
			RecommendedJoint:  pose.JointHip,
			MovementPattern:   "hip_hinge",
			Difficulty:        "intermediate",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "lunges",
			VelocityThreshold: 0.06,
			MinRepDuration:    1.0,
			MinRestDuration:   0.4,
			SmoothingWindow:   7,
			PrimaryJoints:     []pose.Joint{pose.JointHip, pose.JointKnee, pose.JointAnkle},
			RecommendedJoint:  pose.JointKnee,
			MovementPattern:   "lunge",
			Difficulty:        "beginner",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "calf_raises",
			VelocityThreshold: 0.05,
			MinRepDuration:    0.6,
			MinRestDuration:   0.2,
			SmoothingWindow:   3,
			PrimaryJoints:     []pose.Joint{pose.JointAnkle, pose.JointKnee},
			RecommendedJoint:  pose.JointAnkle,
			MovementPattern:   "plantar_flexion",
			Difficulty:        "beginner",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "leg_press",
			VelocityThreshold: 0.07,
			MinRepDuration:    1.2,
			MinRestDuration:   0.5,
			SmoothingWindow:   7,
			PrimaryJoints:     []pose.Joint{pose.JointHip, pose.JointKnee, pose.JointAnkle},
			RecommendedJoint:  pose.JointKnee,
			MovementPattern:   "leg_press",
			Difficulty:        "beginner",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "hip_thrust",
			VelocityThreshold: 0.06,
			MinRepDuration:    1.0,
			MinRestDuration:   0.4,
			SmoothingWindow:   7,
			PrimaryJoints:     []pose.Joint{pose.JointHip, pose.JointKnee, pose.JointShoulder},
			RecommendedJoint:  pose.JointHip,
			MovementPattern:   "hip_extension",
			Difficulty:        "intermediate",
			Strategy:          StrategyThreshold,
		},

		// Short aliases kept for older clients
		{
			Name:              "bench_press",
			VelocityThreshold: 0.05,
			MinRepDuration:    0.8,
			MinRestDuration:   0.3,
			SmoothingWindow:   5,
			PrimaryJoints:     []pose.Joint{pose.JointShoulder, pose.JointElbow},
			RecommendedJoint:  pose.JointElbow,
			MovementPattern:   "horizontal_push",
			Difficulty:        "intermediate",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "bicep_curl",
			VelocityThreshold: 0.04,
			MinRepDuration:    0.6,
			MinRestDuration:   0.2,
			SmoothingWindow:   3,
			PrimaryJoints:     []pose.Joint{pose.JointWrist, pose.JointElbow},
			RecommendedJoint:  pose.JointElbow,
			MovementPattern:   "horizontal_flexion",
			Difficulty:        "beginner",
			Strategy:          StrategyThreshold,
		},
		{
			Name:              "squat",
			VelocityThreshold: 0.08,
			MinRepDuration:    1.0,
			MinRestDuration:   0.4,
			SmoothingWindow:   7,
			PrimaryJoints:     []pose.Joint{pose.JointHip, pose.JointKnee},
			RecommendedJoint:  pose.JointKnee,
			MovementPattern:   "vertical_squat",
			Difficulty:        "beginner",
			Strategy:          StrategyThreshold,
		},

		{
			Name:              DefaultProfileName,
			VelocityThreshold: 0.05,
			MinRepDuration:    0.6,
			MinRestDuration:   0.2,
			SmoothingWindow:   3,
			PrimaryJoints:     []pose.Joint{pose.JointWrist, pose.JointElbow},
			RecommendedJoint:  pose.JointElbow,
			MovementPattern:   "general",
			Strategy:          StrategyThreshold,
		},
	}
}
