// ABOUTME: AI recommendation model and the cached recommendation set.
// ABOUTME: Recommendations are stored verbatim until the next refresh.
package models

import "time"

// RecommendationType tags what kind of advice a recommendation gives.
type RecommendationType string

const (
	RecommendationProgression RecommendationType = "progression"
	RecommendationExercise    RecommendationType = "exercise"
	RecommendationRest        RecommendationType = "rest"
	RecommendationTechnique   RecommendationType = "technique"
)

// Priority ranks a recommendation.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Recommendation is one structured suggestion from the AI trainer.
type Recommendation struct {
	Type         RecommendationType `json:"type" yaml:"type"`
	ExerciseID   string             `json:"exerciseId,omitempty" yaml:"exercise_id,omitempty"`
	ExerciseName string             `json:"exerciseName,omitempty" yaml:"exercise_name,omitempty"`
	Title        string             `json:"title" yaml:"title"`
	Description  string             `json:"description" yaml:"description"`
	Reasoning    string             `json:"reasoning" yaml:"reasoning"`
	Confidence   float64            `json:"confidence" yaml:"confidence"` // 0-1
	Priority     Priority           `json:"priority" yaml:"priority"`
}

// RecommendationSet is the cached result of one refresh.
type RecommendationSet struct {
	Items       []Recommendation `json:"items" yaml:"items"`
	RefreshedAt time.Time        `json:"refreshedAt" yaml:"refreshed_at"`
	// Fallback is true when Items are the canned recommendations used after a failed AI call.
	Fallback bool `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}
