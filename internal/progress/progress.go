// ABOUTME: Folds completed workout history into per-exercise progress records.
// ABOUTME: Tracks a personal best and the latest session for each exercise.
package progress

import (
	"github.com/harperreed/trainer/internal/models"
)

// Compute returns one progress record per exercise with at least one completed
// set in a completed workout. Workouts are scanned in the given order.
//
// The current session is replaced whenever a workout is dated on or after the
// recorded best. It is compared against the best's date, not the latest date
// seen, so unordered input can leave a stale current session.
//
// Output order follows first encounter and is not part of the contract.
func Compute(workouts []models.Workout, catalog []models.Exercise) []models.Progress {
	byID := make(map[string]models.Exercise, len(catalog))
	for _, e := range catalog {
		byID[e.ID] = e
	}

	index := make(map[string]int)
	var out []models.Progress

	for _, w := range workouts {
		if !w.Completed {
			continue
		}
		for _, set := range w.Sets {
			if !set.Completed {
				continue
			}
			ex, ok := lookup(byID, &w, set.ExerciseID)
			if !ok {
				continue
			}

			i, seen := index[set.ExerciseID]
			if !seen {
				index[set.ExerciseID] = len(out)
				out = append(out, models.Progress{
					ExerciseID:     set.ExerciseID,
					ExerciseName:   ex.Name,
					Category:       ex.Category,
					PreviousBest:   models.BestPerformance{Performance: models.PerformanceOf(set), Date: w.Date},
					CurrentSession: models.PerformanceOf(set),
				})
				continue
			}

			p := &out[i]
			if !w.Date.Before(p.PreviousBest.Date) {
				p.CurrentSession = models.PerformanceOf(set)
			}
			if w.Date.After(p.PreviousBest.Date) && isBetter(set, p.PreviousBest.Performance, ex.IsCardio()) {
				p.PreviousBest = models.BestPerformance{Performance: models.PerformanceOf(set), Date: w.Date}
			}
		}
	}

	for i := range out {
		out[i].Improvement = improvement(out[i])
	}
	return out
}

// lookup finds the exercise in the catalog, then in the workout's own snapshots.
func lookup(catalog map[string]models.Exercise, w *models.Workout, id string) (models.Exercise, bool) {
	if e, ok := catalog[id]; ok {
		return e, true
	}
	return w.FindExercise(id)
}

// isBetter compares a set to the recorded best.
// Strength: heavier wins, equal weight with more reps wins.
// Cardio: longer distance when both have one, else longer duration when both have one.
func isBetter(set models.WorkoutSet, best models.Performance, cardio bool) bool {
	if cardio {
		switch {
		case positive(set.Distance) && positive(best.Distance):
			return *set.Distance > *best.Distance
		case positiveInt(set.Duration) && positiveInt(best.Duration):
			return *set.Duration > *best.Duration
		default:
			return false
		}
	}
	w, bw := deref(set.Weight), deref(best.Weight)
	return w > bw || (w == bw && set.Reps > best.Reps)
}

// improvement reports how far the current session exceeds the best, for display.
func improvement(p models.Progress) *models.Improvement {
	cur, best := p.CurrentSession, p.PreviousBest.Performance

	if p.Category == models.CategoryCardio {
		if positive(cur.Distance) && positive(best.Distance) && *cur.Distance > *best.Distance {
			return &models.Improvement{Type: models.ImprovementDistance, Percentage: pct(*cur.Distance, *best.Distance)}
		}
		if positiveInt(cur.Duration) && positiveInt(best.Duration) && *cur.Duration > *best.Duration {
			return &models.Improvement{Type: models.ImprovementDuration, Percentage: pct(float64(*cur.Duration), float64(*best.Duration))}
		}
		return nil
	}

	cw, bw := deref(cur.Weight), deref(best.Weight)
	heavier := cw > bw
	moreReps := cur.Reps > best.Reps
	switch {
	case heavier && moreReps:
		return &models.Improvement{Type: models.ImprovementBoth, Percentage: pct(cw, bw)}
	case heavier:
		return &models.Improvement{Type: models.ImprovementWeight, Percentage: pct(cw, bw)}
	case moreReps && cw == bw:
		return &models.Improvement{Type: models.ImprovementReps, Percentage: pct(float64(cur.Reps), float64(best.Reps))}
	}
	return nil
}

// FilterByCategory keeps records in the given category. An empty category keeps all.
func FilterByCategory(records []models.Progress, category models.Category) []models.Progress {
	if category == "" {
		return records
	}
	var out []models.Progress
	for _, p := range records {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the record for exerciseID.
func Find(records []models.Progress, exerciseID string) (models.Progress, bool) {
	for _, p := range records {
		if p.ExerciseID == exerciseID {
			return p, true
		}
	}
	return models.Progress{}, false
}

func pct(cur, base float64) float64 {
	if base == 0 {
		return 100
	}
	return (cur - base) / base * 100
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func positive(f *float64) bool { return f != nil && *f > 0 }

func positiveInt(i *int) bool { return i != nil && *i > 0 }
