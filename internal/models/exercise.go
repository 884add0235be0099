// ABOUTME: Exercise model and Category enum for the exercise catalog.
// ABOUTME: Exercises are keyed by slug IDs and deduplicated by ID on save.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Category represents the body region an exercise trains.
type Category string

const (
	CategoryChest     Category = "chest"
	CategoryBack      Category = "back"
	CategoryShoulders Category = "shoulders"
	CategoryArms      Category = "arms"
	CategoryLegs      Category = "legs"
	CategoryCore      Category = "core"
	CategoryCardio    Category = "cardio"
	CategoryFullBody  Category = "full-body"
	CategoryUpperBody Category = "upper-body"
	CategoryLowerBody Category = "lower-body"
)

// AllCategories returns all valid categories.
var AllCategories = []Category{
	CategoryChest, CategoryBack, CategoryShoulders, CategoryArms, CategoryLegs,
	CategoryCore, CategoryCardio, CategoryFullBody, CategoryUpperBody, CategoryLowerBody,
}

// IsValidCategory checks if a string is a valid category.
func IsValidCategory(s string) bool {
	for _, c := range AllCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Exercise is a catalog entry. Workouts keep snapshots of the exercises they used.
type Exercise struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Category     Category `json:"category" yaml:"category"`
	MuscleGroups []string `json:"muscleGroups" yaml:"muscle_groups"`
	Equipment    string   `json:"equipment,omitempty" yaml:"equipment,omitempty"`
	Instructions string   `json:"instructions,omitempty" yaml:"instructions,omitempty"`
}

// NewCustomExercise creates a user-defined exercise with a `custom-<unix-ms>` ID.
func NewCustomExercise(name string, category Category) *Exercise {
	return &Exercise{
		ID:           fmt.Sprintf("custom-%d", time.Now().UnixMilli()),
		Name:         name,
		Category:     category,
		MuscleGroups: []string{},
		Equipment:    "custom",
		Instructions: "Custom exercise",
	}
}

// WithMuscleGroups sets the trained muscle groups.
func (e *Exercise) WithMuscleGroups(groups ...string) *Exercise {
	e.MuscleGroups = groups
	return e
}

// IsCardio reports whether progress for this exercise is tracked by distance/duration.
func (e Exercise) IsCardio() bool {
	return e.Category == CategoryCardio
}

// Slugify turns an exercise name into a catalog ID ("Back Squat" -> "back-squat").
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
