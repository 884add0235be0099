// ABOUTME: Workout persistence with insertion-order listing.
// ABOUTME: Each record carries a sequence number so listings keep storage order.
package storage

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/harperreed/trainer/internal/kv"
	"github.com/harperreed/trainer/internal/models"
)

// workoutRecord is the persisted envelope for a workout.
type workoutRecord struct {
	Seq     int64           `json:"seq"`
	Workout *models.Workout `json:"workout"`
}

// SaveWorkout inserts or replaces a workout. Replacing keeps its storage position.
func (r *Repository) SaveWorkout(w *models.Workout) error {
	if w == nil || w.ID == "" {
		return fmt.Errorf("save workout: missing id")
	}
	key := WorkoutPrefix + w.ID

	var existing workoutRecord
	found, err := r.getJSON(key, &existing)
	if err != nil {
		return fmt.Errorf("save workout: %w", err)
	}

	rec := workoutRecord{Seq: existing.Seq, Workout: w}
	if !found {
		if rec.Seq, err = r.nextSeq(); err != nil {
			return fmt.Errorf("save workout: %w", err)
		}
	}
	if err := r.putJSON(key, rec); err != nil {
		return fmt.Errorf("save workout: %w", err)
	}
	return nil
}

func (r *Repository) nextSeq() (int64, error) {
	var seq int64
	data, err := r.store.Get(workoutSeqKey)
	switch {
	case errors.Is(err, kv.ErrNotFound):
	case err != nil:
		return 0, fmt.Errorf("read sequence: %w", err)
	default:
		if seq, err = strconv.ParseInt(string(data), 10, 64); err != nil {
			return 0, fmt.Errorf("parse sequence: %w", err)
		}
	}
	seq++
	if err := r.store.Set(workoutSeqKey, []byte(strconv.FormatInt(seq, 10))); err != nil {
		return 0, fmt.Errorf("write sequence: %w", err)
	}
	return seq, nil
}

// GetWorkout retrieves a workout by full ID or unique prefix.
func (r *Repository) GetWorkout(idOrPrefix string) (*models.Workout, error) {
	key, err := r.resolveKey(WorkoutPrefix, idOrPrefix)
	if err != nil {
		return nil, err
	}
	var rec workoutRecord
	if _, err := r.getJSON(key, &rec); err != nil {
		return nil, err
	}
	if rec.Workout == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}
	return rec.Workout, nil
}

// ListWorkouts returns all workouts in storage (insertion) order.
func (r *Repository) ListWorkouts() ([]models.Workout, error) {
	records, err := r.workoutRecords()
	if err != nil {
		return nil, err
	}
	out := make([]models.Workout, 0, len(records))
	for _, rec := range records {
		out = append(out, *rec.Workout)
	}
	return out, nil
}

// ListCompletedWorkouts returns completed workouts in storage order.
func (r *Repository) ListCompletedWorkouts() ([]models.Workout, error) {
	all, err := r.ListWorkouts()
	if err != nil {
		return nil, err
	}
	var out []models.Workout
	for _, w := range all {
		if w.Completed {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *Repository) workoutRecords() ([]workoutRecord, error) {
	keys, err := r.store.Keys(WorkoutPrefix)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	records := make([]workoutRecord, 0, len(keys))
	for _, k := range keys {
		var rec workoutRecord
		if _, err := r.getJSON(k, &rec); err != nil {
			return nil, fmt.Errorf("list workouts: %w", err)
		}
		if rec.Workout == nil {
			continue
		}
		records = append(records, rec)
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Seq != records[j].Seq {
			return records[i].Seq < records[j].Seq
		}
		return records[i].Workout.ID < records[j].Workout.ID
	})
	return records, nil
}

// DeleteWorkout removes a workout by full ID or unique prefix.
func (r *Repository) DeleteWorkout(idOrPrefix string) error {
	key, err := r.resolveKey(WorkoutPrefix, idOrPrefix)
	if err != nil {
		return err
	}
	if err := r.store.Delete(key); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}
