// ABOUTME: Refreshes the cached recommendation set from stored history.
// ABOUTME: Shared by the CLI, MCP server, and HTTP API.
package ai

import (
	"context"
	"fmt"

	"github.com/harperreed/trainer/internal/models"
)

// History is the storage the refresh reads from and writes to.
type History interface {
	ListCompletedWorkouts() ([]models.Workout, error)
	Progress() ([]models.Progress, error)
	SaveRecommendations(items []models.Recommendation, fallback bool) (*models.RecommendationSet, error)
	CachedRecommendations() (*models.RecommendationSet, error)
}

// RefreshRecommendations generates a new recommendation set and caches it.
// Fallback sets are cached too, tagged as such.
func (t *Trainer) RefreshRecommendations(ctx context.Context, h History) (*models.RecommendationSet, error) {
	workouts, err := h.ListCompletedWorkouts()
	if err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}
	progress, err := h.Progress()
	if err != nil {
		return nil, fmt.Errorf("compute progress: %w", err)
	}

	res := t.Recommendations(ctx, workouts, progress)
	set, err := h.SaveRecommendations(res.Value, res.Fallback)
	if err != nil {
		return nil, fmt.Errorf("cache recommendations: %w", err)
	}
	return set, nil
}

// CachedOrRefresh returns the cached set, refreshing when none exists or force is set.
func (t *Trainer) CachedOrRefresh(ctx context.Context, h History, force bool) (*models.RecommendationSet, error) {
	if !force {
		set, err := h.CachedRecommendations()
		if err != nil {
			return nil, err
		}
		if set != nil {
			return set, nil
		}
	}
	return t.RefreshRecommendations(ctx, h)
}
