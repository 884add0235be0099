// ABOUTME: Progress and stats views computed from stored workouts.
// ABOUTME: Nothing here is persisted; each call recomputes from history.
package storage

import (
	"time"

	"github.com/harperreed/trainer/internal/models"
	"github.com/harperreed/trainer/internal/progress"
)

// Progress computes per-exercise progress from completed workouts.
func (r *Repository) Progress() ([]models.Progress, error) {
	workouts, err := r.ListCompletedWorkouts()
	if err != nil {
		return nil, err
	}
	exercises, err := r.ListExercises()
	if err != nil {
		return nil, err
	}
	return progress.Compute(workouts, exercises), nil
}

// Dashboard computes the dashboard summary at now.
func (r *Repository) Dashboard(now time.Time) (progress.Dashboard, error) {
	workouts, err := r.ListWorkouts()
	if err != nil {
		return progress.Dashboard{}, err
	}
	exercises, err := r.ListExercises()
	if err != nil {
		return progress.Dashboard{}, err
	}
	return progress.BuildDashboard(workouts, len(exercises), now), nil
}

// Stats computes totals for the given period at now.
func (r *Repository) Stats(period progress.Period, now time.Time) (progress.Stats, error) {
	workouts, err := r.ListWorkouts()
	if err != nil {
		return progress.Stats{}, err
	}
	return progress.PeriodStats(workouts, period, now), nil
}
