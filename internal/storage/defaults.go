// ABOUTME: Built-in exercise catalog seeded on first use.
// ABOUTME: Missing built-ins are merged back into stored catalogs on every load.
package storage

import "github.com/harperreed/trainer/internal/models"

// DefaultExercises returns a fresh copy of the built-in catalog.
func DefaultExercises() []models.Exercise {
	return []models.Exercise{
		{
			ID: "bench-press", Name: "Bench Press", Category: models.CategoryChest,
			MuscleGroups: []string{"chest", "shoulders", "triceps"},
			Equipment:    "barbell",
			Instructions: "Lie on bench, grip bar slightly wider than shoulders, lower to chest, press up.",
		},
		{
			ID: "squat", Name: "Back Squat", Category: models.CategoryLegs,
			MuscleGroups: []string{"quadriceps", "glutes", "hamstrings"},
			Equipment:    "barbell",
			Instructions: "Stand with feet shoulder-width apart, lower hips back and down, drive through heels to stand.",
		},
		{
			ID: "deadlift", Name: "Deadlift", Category: models.CategoryBack,
			MuscleGroups: []string{"hamstrings", "glutes", "lower back", "traps"},
			Equipment:    "barbell",
			Instructions: "Stand with feet hip-width, grip bar, lift by extending hips and knees simultaneously.",
		},
		{
			ID: "pull-up", Name: "Pull-up", Category: models.CategoryBack,
			MuscleGroups: []string{"latissimus dorsi", "biceps", "rear delts"},
			Equipment:    "pull-up bar",
			Instructions: "Hang from bar with overhand grip, pull body up until chin clears bar.",
		},
		{
			ID: "overhead-press", Name: "Overhead Press", Category: models.CategoryShoulders,
			MuscleGroups: []string{"shoulders", "triceps", "core"},
			Equipment:    "barbell",
			Instructions: "Stand with feet hip-width, press bar from shoulders straight overhead.",
		},
		{
			ID: "push-up", Name: "Push-up", Category: models.CategoryChest,
			MuscleGroups: []string{"chest", "shoulders", "triceps"},
			Equipment:    "bodyweight",
			Instructions: "Start in plank position, lower chest to ground, push back up.",
		},
		{
			ID: "running", Name: "Running", Category: models.CategoryCardio,
			MuscleGroups: []string{"legs", "cardiovascular"},
			Equipment:    "none",
			Instructions: "Run at a steady pace. Track your distance and time.",
		},
		{
			ID: "cycling", Name: "Cycling", Category: models.CategoryCardio,
			MuscleGroups: []string{"legs", "cardiovascular"},
			Equipment:    "bike",
			Instructions: "Cycle at a comfortable pace. Track your distance and time.",
		},
		{
			ID: "swimming", Name: "Swimming", Category: models.CategoryCardio,
			MuscleGroups: []string{"full body", "cardiovascular"},
			Equipment:    "pool",
			Instructions: "Swim laps at a comfortable pace. Track your distance and time.",
		},
	}
}

// IsDefaultExercise reports whether id belongs to the built-in catalog.
func IsDefaultExercise(id string) bool {
	for _, e := range DefaultExercises() {
		if e.ID == id {
			return true
		}
	}
	return false
}
