// Package exercise defines the supported exercise kinds and their static profiles.
package exercise

import "errors"

// ErrUnknownKind is returned when an exercise type is not in the supported set.
var ErrUnknownKind = errors.New("unknown exercise kind")

// Kind identifies a supported exercise type.
type Kind string

const (
	Pushup     Kind = "pushup"
	Pullup     Kind = "pullup"
	Plank      Kind = "plank"
	Squat      Kind = "squat"
	TricepDips Kind = "tricep_dips"
)

// Profile holds the static configuration for one exercise type.
// InputSize is the angle-vector dimensionality the classifier was trained with;
// it must match the number of angles the extractor produces and the length of
// the mean-angle vector in the statistics artifact.
type Profile struct {
	Kind        Kind
	Name        string
	InputSize   int
	ModelFile   string
	StatsFile   string
	Description string
	Benefits    []string
	Muscles     []string
}

var profiles = map[Kind]*Profile{
	Pushup: {
		Kind:        Pushup,
		Name:        "Push-ups",
		InputSize:   5,
		ModelFile:   "pushup_lstm_features.json",
		StatsFile:   "angle_stats_pushup.json",
		Description: "A classic bodyweight exercise that targets chest, shoulders, and triceps.",
		Benefits: []string{
			"Builds upper body strength",
			"Improves core stability",
			"Enhances cardiovascular fitness",
			"No equipment required",
			"Can be modified for all fitness levels",
		},
		Muscles: []string{"Chest", "Shoulders", "Triceps", "Core"},
	},
	Pullup: {
		Kind:        Pullup,
		Name:        "Pull-ups",
		InputSize:   2,
		ModelFile:   "pullup_lstm_features.json",
		StatsFile:   "angle_stats_pullup.json",
		Description: "An upper body strength exercise that primarily targets the back and biceps.",
		Benefits: []string{
			"Builds back and bicep strength",
			"Improves grip strength",
			"Enhances shoulder stability",
			"Develops functional pulling strength",
			"Great for posture improvement",
		},
		Muscles: []string{"Back", "Biceps", "Shoulders", "Core"},
	},
	Plank: {
		Kind:        Plank,
		Name:        "Plank",
		InputSize:   3,
		ModelFile:   "plank_lstm_features.json",
		StatsFile:   "angle_stats_plank.json",
		Description: "An isometric core exercise that builds stability and endurance.",
		Benefits: []string{
			"Strengthens entire core",
			"Improves posture",
			"Reduces back pain risk",
			"Enhances balance and stability",
			"Can be done anywhere",
		},
		Muscles: []string{"Core", "Shoulders", "Glutes", "Back"},
	},
	Squat: {
		Kind:        Squat,
		Name:        "Squats",
		InputSize:   5,
		ModelFile:   "squat_lstm_features.json",
		StatsFile:   "angle_stats_squat.json",
		Description: "A fundamental lower body exercise that targets legs and glutes.",
		Benefits: []string{
			"Builds leg and glute strength",
			"Improves functional movement",
			"Enhances balance and coordination",
			"Burns calories effectively",
			"Strengthens core muscles",
		},
		Muscles: []string{"Quadriceps", "Glutes", "Hamstrings", "Core"},
	},
	TricepDips: {
		Kind:        TricepDips,
		Name:        "Tricep Dips",
		InputSize:   4,
		ModelFile:   "tricep_dips_lstm_features.json",
		StatsFile:   "angle_stats_tricep_dips.json",
		Description: "An upper body exercise that specifically targets the triceps and shoulders.",
		Benefits: []string{
			"Builds tricep strength",
			"Strengthens shoulders",
			"Improves pushing power",
			"Can be done with minimal equipment",
			"Great for arm definition",
		},
		Muscles: []string{"Triceps", "Shoulders", "Chest", "Core"},
	},
}

// Lookup returns the profile for the given kind, or ErrUnknownKind.
func Lookup(kind Kind) (*Profile, error) {
	p, ok := profiles[kind]
	if !ok {
		return nil, ErrUnknownKind
	}
	return p, nil
}

// Kinds returns all supported exercise kinds.
func Kinds() []Kind {
	return []Kind{Pushup, Pullup, Plank, Squat, TricepDips}
}
