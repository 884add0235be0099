// ABOUTME: Derived per-exercise progress records.
// ABOUTME: Never persisted; recomputed from completed workouts on demand.
package models

import "time"

// Performance is the measurable part of a completed set.
type Performance struct {
	Weight   *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Reps     int      `json:"reps" yaml:"reps"`
	Distance *float64 `json:"distance,omitempty" yaml:"distance,omitempty"`
	Duration *int     `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// PerformanceOf copies the measurable fields of a set.
func PerformanceOf(s WorkoutSet) Performance {
	return Performance{
		Weight:   s.Weight,
		Reps:     s.Reps,
		Distance: s.Distance,
		Duration: s.Duration,
	}
}

// BestPerformance is a Performance plus the date of the workout it came from.
type BestPerformance struct {
	Performance `yaml:",inline"`
	Date        time.Time `json:"date" yaml:"date"`
}

// ImprovementType names which dimension improved.
type ImprovementType string

const (
	ImprovementWeight   ImprovementType = "weight"
	ImprovementReps     ImprovementType = "reps"
	ImprovementBoth     ImprovementType = "both"
	ImprovementDistance ImprovementType = "distance"
	ImprovementDuration ImprovementType = "duration"
)

// Improvement describes how far the current session exceeds the recorded best.
type Improvement struct {
	Type       ImprovementType `json:"type" yaml:"type"`
	Percentage float64         `json:"percentage" yaml:"percentage"`
}

// Progress is the best-vs-current comparison for one exercise.
type Progress struct {
	ExerciseID     string          `json:"exerciseId" yaml:"exercise_id"`
	ExerciseName   string          `json:"exerciseName" yaml:"exercise_name"`
	Category       Category        `json:"category" yaml:"category"`
	PreviousBest   BestPerformance `json:"previousBest" yaml:"previous_best"`
	CurrentSession Performance     `json:"currentSession" yaml:"current_session"`
	Improvement    *Improvement    `json:"improvement,omitempty" yaml:"improvement,omitempty"`
}
