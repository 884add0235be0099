// ABOUTME: User profile and preference models.
// ABOUTME: Holds fitness level, goals, equipment, and the display weight unit.
package models

import "fmt"

// FitnessLevel is the self-reported training experience.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// IsValidFitnessLevel checks if a string is a valid fitness level.
func IsValidFitnessLevel(s string) bool {
	switch FitnessLevel(s) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Preferences are the defaults used when asking the AI for a plan.
type Preferences struct {
	WorkoutDuration  int      `json:"workoutDuration" yaml:"workout_duration"`   // minutes
	WorkoutFrequency int      `json:"workoutFrequency" yaml:"workout_frequency"` // per week
	Equipment        []string `json:"equipment" yaml:"equipment"`
}

// Profile describes the single local user.
type Profile struct {
	Name         string       `json:"name" yaml:"name"`
	FitnessLevel FitnessLevel `json:"fitnessLevel" yaml:"fitness_level"`
	Goals        []string     `json:"goals" yaml:"goals"`
	Preferences  Preferences  `json:"preferences" yaml:"preferences"`
}

// DefaultProfile returns the profile used before the user sets one.
func DefaultProfile() *Profile {
	return &Profile{
		FitnessLevel: LevelIntermediate,
		Goals:        []string{"strength"},
		Preferences: Preferences{
			WorkoutDuration:  45,
			WorkoutFrequency: 3,
			Equipment:        []string{"bodyweight"},
		},
	}
}

// WeightUnit is the display unit for weights.
type WeightUnit string

const (
	UnitKG WeightUnit = "kg"
	UnitLB WeightUnit = "lb"
)

// ParseWeightUnit validates a unit string.
func ParseWeightUnit(s string) (WeightUnit, error) {
	switch WeightUnit(s) {
	case UnitKG, UnitLB:
		return WeightUnit(s), nil
	}
	return "", fmt.Errorf("unknown weight unit: %q (use kg or lb)", s)
}

// FormatWeight renders an optional weight with the unit label.
func FormatWeight(w *float64, unit WeightUnit) string {
	if w == nil || *w == 0 {
		return "bodyweight"
	}
	return fmt.Sprintf("%g %s", *w, unit)
}

const lbPerKG = 2.20462

// Convert converts a weight from one unit to another.
func Convert(w float64, from, to WeightUnit) float64 {
	switch {
	case from == to:
		return w
	case from == UnitKG && to == UnitLB:
		return w * lbPerKG
	default:
		return w / lbPerKG
	}
}
