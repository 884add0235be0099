// ABOUTME: Preference, profile, and recommendation cache persistence.
// ABOUTME: Each lives under a single key.
package storage

import (
	"fmt"
	"time"

	"github.com/harperreed/trainer/internal/models"
)

// WeightUnit returns the display unit, defaulting to kg.
func (r *Repository) WeightUnit() (models.WeightUnit, error) {
	var u models.WeightUnit
	found, err := r.getJSON(unitKey, &u)
	if err != nil {
		return "", err
	}
	if !found || u == "" {
		return models.UnitKG, nil
	}
	return u, nil
}

// SetWeightUnit persists the display unit.
func (r *Repository) SetWeightUnit(u models.WeightUnit) error {
	if _, err := models.ParseWeightUnit(string(u)); err != nil {
		return err
	}
	return r.putJSON(unitKey, u)
}

// Profile returns the saved profile or the default one.
func (r *Repository) Profile() (*models.Profile, error) {
	p := models.DefaultProfile()
	if _, err := r.getJSON(profileKey, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SaveProfile persists the user profile.
func (r *Repository) SaveProfile(p *models.Profile) error {
	if err := r.putJSON(profileKey, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// SaveRecommendations replaces the cached recommendations.
func (r *Repository) SaveRecommendations(items []models.Recommendation, fallback bool) (*models.RecommendationSet, error) {
	if items == nil {
		items = []models.Recommendation{}
	}
	set := &models.RecommendationSet{Items: items, RefreshedAt: time.Now(), Fallback: fallback}
	if err := r.putJSON(recommendationsKey, set); err != nil {
		return nil, fmt.Errorf("save recommendations: %w", err)
	}
	return set, nil
}

// CachedRecommendations returns the last refresh, or nil if none exists.
func (r *Repository) CachedRecommendations() (*models.RecommendationSet, error) {
	var set models.RecommendationSet
	found, err := r.getJSON(recommendationsKey, &set)
	if err != nil || !found {
		return nil, err
	}
	return &set, nil
}
