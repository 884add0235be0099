// ABOUTME: Exercise catalog persistence.
// ABOUTME: Lists merge in missing built-ins; saves upsert by exercise ID.
package storage

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/harperreed/trainer/internal/kv"
	"github.com/harperreed/trainer/internal/models"
)

// ErrBuiltinExercise is returned when deleting a built-in catalog entry.
var ErrBuiltinExercise = errors.New("cannot delete built-in exercise")

// ListExercises returns the stored catalog with any missing built-ins added.
// Stored exercises come first in key order, followed by newly merged built-ins.
// Merged built-ins are saved unless the store is read-only.
func (r *Repository) ListExercises() ([]models.Exercise, error) {
	keys, err := r.store.Keys(ExercisePrefix)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	out := make([]models.Exercise, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		var e models.Exercise
		if _, err := r.getJSON(k, &e); err != nil {
			return nil, fmt.Errorf("list exercises: %w", err)
		}
		out = append(out, e)
		seen[e.ID] = true
	}

	readOnly := false
	for _, d := range DefaultExercises() {
		if seen[d.ID] {
			continue
		}
		if !readOnly {
			err := r.SaveExercise(&d)
			switch {
			case errors.Is(err, kv.ErrReadOnly):
				log.Debug().Err(err).Msg("read-only store, built-in exercises not saved")
				readOnly = true
			case err != nil:
				return nil, fmt.Errorf("seed exercise %s: %w", d.ID, err)
			}
		}
		out = append(out, d)
	}
	return out, nil
}

// GetExercise returns the exercise with the exact ID.
func (r *Repository) GetExercise(id string) (*models.Exercise, error) {
	var e models.Exercise
	found, err := r.getJSON(ExercisePrefix+id, &e)
	if err != nil {
		return nil, err
	}
	if !found {
		for _, d := range DefaultExercises() {
			if d.ID == id {
				return &d, nil
			}
		}
		return nil, fmt.Errorf("%w: exercise %s", ErrNotFound, id)
	}
	return &e, nil
}

// SaveExercise inserts or replaces an exercise by ID.
func (r *Repository) SaveExercise(e *models.Exercise) error {
	if e == nil || e.ID == "" {
		return fmt.Errorf("save exercise: missing id")
	}
	if e.MuscleGroups == nil {
		e.MuscleGroups = []string{}
	}
	if err := r.putJSON(ExercisePrefix+e.ID, e); err != nil {
		return fmt.Errorf("save exercise: %w", err)
	}
	return nil
}

// DeleteExercise removes a custom exercise. Built-ins are rejected since the
// next listing would restore them.
func (r *Repository) DeleteExercise(id string) error {
	if IsDefaultExercise(id) {
		return fmt.Errorf("%w: %s", ErrBuiltinExercise, id)
	}
	if _, err := r.GetExercise(id); err != nil {
		return err
	}
	if err := r.store.Delete(ExercisePrefix + id); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}

// EnsureExercises saves any exercises not already in the catalog.
// Used when an AI plan introduces new exercises.
func (r *Repository) EnsureExercises(exercises []models.Exercise) (int, error) {
	added := 0
	for i := range exercises {
		e := exercises[i]
		var existing models.Exercise
		found, err := r.getJSON(ExercisePrefix+e.ID, &existing)
		if err != nil {
			return added, err
		}
		if found || e.ID == "" {
			continue
		}
		if err := r.SaveExercise(&e); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
