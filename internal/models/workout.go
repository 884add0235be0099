// ABOUTME: Workout and WorkoutSet models for session tracking.
// ABOUTME: Workouts carry exercise snapshots plus strength or cardio sets.
package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Workout represents a dated training session, in progress or completed.
type Workout struct {
	ID        string       `json:"id" yaml:"id"`
	Date      time.Time    `json:"date" yaml:"date"`
	Name      string       `json:"name" yaml:"name"`
	Exercises []Exercise   `json:"exercises" yaml:"exercises"`
	Sets      []WorkoutSet `json:"sets" yaml:"sets"`
	Duration  *int         `json:"duration,omitempty" yaml:"duration,omitempty"` // minutes
	Notes     *string      `json:"notes,omitempty" yaml:"notes,omitempty"`
	Completed bool         `json:"completed" yaml:"completed"`
}

// NewWorkout creates an empty, incomplete workout dated now.
func NewWorkout(name string) *Workout {
	return &Workout{
		ID:        uuid.NewString(),
		Date:      time.Now(),
		Name:      name,
		Exercises: []Exercise{},
		Sets:      []WorkoutSet{},
	}
}

// WithDuration sets the duration in minutes.
func (w *Workout) WithDuration(minutes int) *Workout {
	w.Duration = &minutes
	return w
}

// WithNotes sets notes on the workout.
func (w *Workout) WithNotes(notes string) *Workout {
	w.Notes = &notes
	return w
}

// WithDate sets a custom workout date.
func (w *Workout) WithDate(t time.Time) *Workout {
	w.Date = t
	return w
}

// ShortID returns the 8-character ID prefix shown in listings.
func (w *Workout) ShortID() string {
	if len(w.ID) <= 8 {
		return w.ID
	}
	return w.ID[:8]
}

// FindExercise returns the exercise snapshot with the given ID.
func (w *Workout) FindExercise(id string) (Exercise, bool) {
	for _, e := range w.Exercises {
		if e.ID == id {
			return e, true
		}
	}
	return Exercise{}, false
}

// FindSet returns the index of the set with the given ID, or -1.
func (w *Workout) FindSet(id string) int {
	for i := range w.Sets {
		if w.Sets[i].ID == id {
			return i
		}
	}
	return -1
}

// CompletedSets returns only the sets marked completed.
func (w *Workout) CompletedSets() []WorkoutSet {
	var out []WorkoutSet
	for _, s := range w.Sets {
		if s.Completed {
			out = append(out, s)
		}
	}
	return out
}

// SetGroup is the sets of one exercise, in the order the exercise first appears.
type SetGroup struct {
	ExerciseID string
	Sets       []WorkoutSet
}

// GroupSets groups sets by exercise, preserving first-appearance order.
func (w *Workout) GroupSets() []SetGroup {
	index := make(map[string]int)
	var groups []SetGroup
	for _, s := range w.Sets {
		i, ok := index[s.ExerciseID]
		if !ok {
			i = len(groups)
			index[s.ExerciseID] = i
			groups = append(groups, SetGroup{ExerciseID: s.ExerciseID})
		}
		groups[i].Sets = append(groups[i].Sets, s)
	}
	return groups
}

// WorkoutSet is one recorded performance unit: reps/weight for strength,
// duration/distance for cardio.
type WorkoutSet struct {
	ID         string   `json:"id" yaml:"id"`
	ExerciseID string   `json:"exerciseId" yaml:"exercise_id"`
	Reps       int      `json:"reps" yaml:"reps"`
	Weight     *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Duration   *int     `json:"duration,omitempty" yaml:"duration,omitempty"` // seconds
	Distance   *float64 `json:"distance,omitempty" yaml:"distance,omitempty"` // km
	RestTime   *int     `json:"restTime,omitempty" yaml:"rest_time,omitempty"` // seconds
	Completed  bool     `json:"completed" yaml:"completed"`
	IsCardio   bool     `json:"isCardio,omitempty" yaml:"is_cardio,omitempty"`
}

// NewStrengthSet creates an incomplete strength set.
func NewStrengthSet(exerciseID string, reps int, weight float64) WorkoutSet {
	return WorkoutSet{
		ID:         uuid.NewString(),
		ExerciseID: exerciseID,
		Reps:       reps,
		Weight:     &weight,
	}
}

// NewCardioSet creates an incomplete cardio set. Either value may be nil.
func NewCardioSet(exerciseID string, durationSeconds *int, distance *float64) WorkoutSet {
	return WorkoutSet{
		ID:         uuid.NewString(),
		ExerciseID: exerciseID,
		Duration:   durationSeconds,
		Distance:   distance,
		IsCardio:   true,
	}
}

// WeightValue returns the weight, treating a missing weight as zero.
func (s WorkoutSet) WeightValue() float64 {
	if s.Weight == nil {
		return 0
	}
	return *s.Weight
}

// CoerceBool interprets loosely typed completed flags: booleans, non-zero
// numbers, and "true"/"1"/"yes" strings count as true.
func CoerceBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		s := strings.TrimSpace(strings.ToLower(t))
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		return s == "yes"
	default:
		return false
	}
}
