package exercise

import (
	"github.com/MatthewKim323/HimAI-v2/internal/pose"
)

// CatalogEntry is the presentation record for one exercise, served by the
// catalog endpoints. Tips and CommonMistakes are only populated for the
// exercises that carry coaching notes.
type CatalogEntry struct {
	Name             string       `json:"name"`
	DisplayName      string       `json:"display_name"`
	Description      string       `json:"description"`
	Category         string       `json:"category,omitempty"`
	PrimaryJoints    []pose.Joint `json:"primary_joints"`
	RecommendedJoint pose.Joint   `json:"recommended_joint"`
	MovementPattern  string       `json:"movement_pattern"`
	Difficulty       string       `json:"difficulty"`
	Tips             []string     `json:"tips,omitempty"`
	CommonMistakes   []string     `json:"common_mistakes,omitempty"`
}

// JointInfo describes one selectable joint for the catalog.
type JointInfo struct {
	Name        pose.Joint `json:"name"`
	Description string     `json:"description"`
}

// JointCatalog lists the joints a client can ask the engine to track.
func JointCatalog() []JointInfo {
	return []JointInfo{
		{pose.JointShoulder, "Shoulder joint - good for pull-ups, shoulder press"},
		{pose.JointElbow, "Elbow joint - good for bicep curls, tricep work"},
		{pose.JointWrist, "Wrist joint - good for tracking bar path"},
		{pose.JointHip, "Hip joint - good for squats and deadlifts"},
		{pose.JointKnee, "Knee joint - good for squats and lunges"},
		{pose.JointAnkle, "Ankle joint - good for calf exercises"},
	}
}

// Sides lists the selectable body sides.
func Sides() []pose.Side {
	return []pose.Side{pose.SideLeft, pose.SideRight}
}

// Catalog returns the full exercise catalog, ordered by category then name.
func Catalog() []CatalogEntry {
	return catalogEntries
}

// CatalogEntryFor returns the catalog record for one exercise, including
// coaching tips when available.
func CatalogEntryFor(name string) (CatalogEntry, bool) {
	for _, e := range catalogEntries {
		if e.Name == name {
			return e, true
		}
	}
	if notes, ok := coachingNotes[name]; ok {
		return notes, true
	}
	return CatalogEntry{}, false
}

var catalogEntries = []CatalogEntry{
	// Upper body pushing
	{
		Name:             "barbell_bench_press",
		DisplayName:      "Barbell Bench Press",
		Description:      "Horizontal pushing exercise for chest and triceps",
		Category:         "Upper Body Pushing",
		PrimaryJoints:    []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist},
		RecommendedJoint: pose.JointElbow,
		MovementPattern:  "horizontal_push",
		Difficulty:       "intermediate",
	},
	{
		Name:             "dumbbell_bench_press",
		DisplayName:      "Dumbbell Bench Press",
		Description:      "Horizontal pushing with dumbbells for chest and triceps",
		Category:         "Upper Body Pushing",
		PrimaryJoints:    []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist},
		RecommendedJoint: pose.JointElbow,
		MovementPattern:  "horizontal_push",
		Difficulty:       "intermediate",
	},
	{
		Name:             "incline_bench_press",
		DisplayName:      "Incline Bench Press",
		Description:      "Inclined horizontal pushing for upper chest",
		Category:         "Upper Body Pushing",
		PrimaryJoints:    []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist},
		RecommendedJoint: pose.JointElbow,
		MovementPattern:  "incline_push",
		Difficulty:       "intermediate",
	},
	{
		Name:             "push_up",
		DisplayName:      "Push-up",
		Description:      "Bodyweight horizontal pushing exercise",
		Category:         "Upper Body Pushing",
		PrimaryJoints:    []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist, pose.JointHip},
		RecommendedJoint: pose.JointShoulder,
		MovementPattern:  "vertical_push",
		Difficulty:       "beginner",
		Tips: []string{
			"Keep your body in a straight line",
			"Lower your chest to the ground",
			"Push up explosively",
			"Engage your core throughout",
		},
		CommonMistakes: []string{
			"Sagging hips or raised butt",
			"Not going low enough",
			"Flaring elbows too wide",
			"Not maintaining straight body line",
		},
	},

	// Upper body pulling
	{
		Name:             "lat_pulldown",
		DisplayName:      "Lat Pulldown",
		Description:      "Vertical pulling exercise targeting lats and biceps",
		Category:         "Upper Body Pulling",
		PrimaryJoints:    []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist},
		RecommendedJoint: pose.JointShoulder,
		MovementPattern:  "vertical_pull",
		Difficulty:       "beginner",
		Tips: []string{
			"Keep your core engaged throughout the movement",
			"Pull the bar down to your chest, not behind your head",
			"Control the weight on both the concentric and eccentric phases",
			"Focus on squeezing your shoulder blades together",
		},
		CommonMistakes: []string{
			"Using momentum instead of muscle control",
			"Pulling the bar behind the head",
			"Not controlling the eccentric (lowering) phase",
			"Using too much weight",
		},
	},
	{
		Name:             "pull_up",
		DisplayName:      "Pull-up",
		Description:      "Bodyweight vertical pulling exercise",
		Category:         "Upper Body Pulling",
		PrimaryJoints:    []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist},
		RecommendedJoint: pose.JointShoulder,
		MovementPattern:  "vertical_pull",
		Difficulty:       "intermediate",
		Tips: []string{
			"Start from a dead hang position",
			"Pull your chest up to the bar",
			"Lower yourself with control",
			"Engage your lats and core",
		},
		CommonMistakes: []string{
			"Kipping or using momentum",
			"Not reaching full range of motion",
			"Not controlling the descent",
			"Using too narrow or too wide grip",
		},
	},
	{
		Name:             "seated_cable_row",
		DisplayName:      "Seated Cable Row",
		Description:      "Horizontal pulling exercise for back and biceps",
		Category:         "Upper Body Pulling",
		PrimaryJoints:    []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist, pose.JointHip},
		RecommendedJoint: pose.JointElbow,
		MovementPattern:  "horizontal_pull",
		Difficulty:       "beginner",
	},

	// Arm isolation
	{
		Name:             "barbell_bicep_curl",
		DisplayName:      "Barbell Bicep Curl",
		Description:      "Isolation exercise for biceps with barbell",
		Category:         "Arm Isolation",
		PrimaryJoints:    []pose.Joint{pose.JointElbow, pose.JointWrist},
		RecommendedJoint: pose.JointElbow,
		MovementPattern:  "horizontal_flexion",
		Difficulty:       "beginner",
	},
	{
		Name:             "dumbbell_bicep_curl",
		DisplayName:      "Dumbbell Bicep Curl",
		Description:      "Isolation exercise for biceps with dumbbells",
		Category:         "Arm Isolation",
		PrimaryJoints:    []pose.Joint{pose.JointElbow, pose.JointWrist},
		RecommendedJoint: pose.JointElbow,
		MovementPattern:  "horizontal_flexion",
		Difficulty:       "beginner",
	},
	{
		Name:             "tricep_pushdown",
		DisplayName:      "Tricep Pushdown",
		Description:      "Isolation exercise for triceps",
		Category:         "Arm Isolation",
		PrimaryJoints:    []pose.Joint{pose.JointElbow, pose.JointWrist},
		RecommendedJoint: pose.JointElbow,
		MovementPattern:  "vertical_extension",
		Difficulty:       "beginner",
	},
	{
		Name:             "skull_crushers",
		DisplayName:      "Skull Crushers",
		Description:      "Isolation exercise for triceps with barbell",
		Category:         "Arm Isolation",
		PrimaryJoints:    []pose.Joint{pose.JointElbow, pose.JointWrist},
		RecommendedJoint: pose.JointElbow,
		MovementPattern:  "horizontal_extension",
		Difficulty:       "intermediate",
	},
	{
		Name:             "overhead_tricep_press",
		DisplayName:      "Overhead Tricep Press",
		Description:      "Vertical tricep isolation exercise",
		Category:         "Arm Isolation",
		PrimaryJoints:    []pose.Joint{pose.JointElbow, pose.JointWrist, pose.JointShoulder},
		RecommendedJoint: pose.JointElbow,
		MovementPattern:  "vertical_extension",
		Difficulty:       "intermediate",
	},

	// Shoulders
	{
		Name:             "shoulder_press",
		DisplayName:      "Shoulder Press",
		Description:      "Vertical pressing exercise for shoulders",
		Category:         "Shoulder Exercises",
		PrimaryJoints:    []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist},
		RecommendedJoint: pose.JointShoulder,
		MovementPattern:  "vertical_press",
		Difficulty:       "intermediate",
	},
	{
		Name:             "lateral_raises",
		DisplayName:      "Lateral Raises",
		Description:      "Isolation exercise for shoulder deltoids",
		Category:         "Shoulder Exercises",
		PrimaryJoints:    []pose.Joint{pose.JointShoulder, pose.JointElbow, pose.JointWrist},
		RecommendedJoint: pose.JointShoulder,
		MovementPattern:  "lateral_abduction",
		Difficulty:       "beginner",
	},

	// Lower body
	{
		Name:             "barbell_squat",
		DisplayName:      "Barbell Squat",
		Description:      "Lower body compound movement with barbell",
		Category:         "Lower Body",
		PrimaryJoints:    []pose.Joint{pose.JointHip, pose.JointKnee, pose.JointAnkle, pose.JointShoulder},
		RecommendedJoint: pose.JointKnee,
		MovementPattern:  "vertical_squat",
		Difficulty:       "intermediate",
	},
	{
		Name:             "dumbbell_goblet_squat",
		DisplayName:      "Dumbbell Goblet Squat",
		Description:      "Lower body compound movement with dumbbell",
		Category:         "Lower Body",
		PrimaryJoints:    []pose.Joint{pose.JointHip, pose.JointKnee, pose.JointAnkle, pose.JointElbow},
		RecommendedJoint: pose.JointKnee,
		MovementPattern:  "vertical_squat",
		Difficulty:       "beginner",
	},
	{
		Name:             "deadlift",
		DisplayName:      "Deadlift",
		Description:      "Hip hinge movement for posterior chain",
		Category:         "Lower Body",
		PrimaryJoints:    []pose.Joint{pose.JointHip, pose.JointKnee, pose.JointAnkle, pose.JointShoulder},
		RecommendedJoint: pose.JointHip,
		MovementPattern:  "hip_hinge",
		Difficulty:       "intermediate",
	},
	{
		Name:             "romanian_deadlift",
		DisplayName:      "Romanian Deadlift",
		Description:      "Hip hinge movement focusing on hamstrings",
		Category:         "Lower Body",
		PrimaryJoints:    []pose.Joint{pose.JointHip, pose.JointKnee, pose.JointAnkle, pose.JointShoulder},
		RecommendedJoint: pose.JointHip,
		MovementPattern:  "hip_hinge",
		Difficulty:       "intermediate",
	},
	{
		Name:             "lunges",
		DisplayName:      "Lunges",
		Description:      "Unilateral lower body movement",
		Category:         "Lower Body",
		PrimaryJoints:    []pose.Joint{pose.JointHip, pose.JointKnee, pose.JointAnkle},
		RecommendedJoint: pose.JointKnee,
		MovementPattern:  "lunge",
		Difficulty:       "beginner",
	},
	{
		Name:             "calf_raises",
		DisplayName:      "Calf Raises",
		Description:      "Isolation exercise for calf muscles",
		Category:         "Lower Body",
		PrimaryJoints:    []pose.Joint{pose.JointAnkle, pose.JointKnee},
		RecommendedJoint: pose.JointAnkle,
		MovementPattern:  "plantar_flexion",
		Difficulty:       "beginner",
	},
	{
		Name:             "leg_press",
		DisplayName:      "Leg Press",
		Description:      "Machine-based lower body exercise",
		Category:         "Lower Body",
		PrimaryJoints:    []pose.Joint{pose.JointHip, pose.JointKnee, pose.JointAnkle},
		RecommendedJoint: pose.JointKnee,
		MovementPattern:  "leg_press",
		Difficulty:       "beginner",
	},
	{
		Name:             "hip_thrust",
		DisplayName:      "Hip Thrust",
		Description:      "Hip extension exercise for glutes",
		Category:         "Lower Body",
		PrimaryJoints:    []pose.Joint{pose.JointHip, pose.JointKnee, pose.JointShoulder},
		RecommendedJoint: pose.JointHip,
		MovementPattern:  "hip_extension",
		Difficulty:       "intermediate",
	},
}

// coachingNotes covers the short-alias exercise names that only exist on the
// detail endpoint.
var coachingNotes = map[string]CatalogEntry{
	"bicep_curl": {
		Name:             "bicep_curl",
		DisplayName:      "Bicep Curl",
		Description:      "Isolation exercise for biceps",
		PrimaryJoints:    []pose.Joint{pose.JointWrist, pose.JointElbow},
		RecommendedJoint: pose.JointElbow,
		MovementPattern:  "horizontal_flexion",
		Difficulty:       "beginner",
		Tips: []string{
			"Keep your elbows at your sides",
			"Control the weight throughout the full range of motion",
			"Squeeze your biceps at the top",
			"Don't swing the weight",
		},
		CommonMistakes: []string{
			"Using momentum to lift the weight",
			"Moving the elbows forward",
			"Not controlling the eccentric phase",
			"Using too much weight",
		},
	},
	"squat": {
		Name:             "squat",
		DisplayName:      "Squat",
		Description:      "Lower body compound movement",
		PrimaryJoints:    []pose.Joint{pose.JointHip, pose.JointKnee},
		RecommendedJoint: pose.JointKnee,
		MovementPattern:  "vertical_squat",
		Difficulty:       "beginner",
		Tips: []string{
			"Keep your chest up and core engaged",
			"Sit back into your hips",
			"Go down until thighs are parallel to floor",
			"Drive through your heels to stand up",
		},
		CommonMistakes: []string{
			"Knees caving in",
			"Not going deep enough",
			"Leaning too far forward",
			"Heels coming off the ground",
		},
	},
	"bench_press": {
		Name:             "bench_press",
		DisplayName:      "Bench Press",
		Description:      "Horizontal pushing exercise for chest and triceps",
		PrimaryJoints:    []pose.Joint{pose.JointShoulder, pose.JointElbow},
		RecommendedJoint: pose.JointElbow,
		MovementPattern:  "horizontal_push",
		Difficulty:       "intermediate",
		Tips: []string{
			"Keep your feet flat on the floor",
			"Retract your shoulder blades",
			"Lower the bar to your chest",
			"Press up explosively",
		},
		CommonMistakes: []string{
			"Bouncing the bar off your chest",
			"Not controlling the descent",
			"Flaring elbows too wide",
			"Lifting feet off the ground",
		},
	},
}
