// ABOUTME: Canned values returned when the AI service is unavailable.
// ABOUTME: Mock recommendations, a sample workout, and the chat apology.
package ai

import (
	"github.com/harperreed/trainer/internal/models"
)

// Greeting opens a chat session.
const Greeting = "Hi! I'm Aila, your AI Personal Trainer. I can help you with workout advice, form tips, nutrition guidance, and answer any fitness questions you have. What would you like to know?"

// ChatApology replaces a chat reply when the AI call fails.
const ChatApology = "I'm sorry, I'm having trouble connecting right now. Please check your connection and try again."

// MockRecommendations are shown when recommendations cannot be fetched.
func MockRecommendations() []models.Recommendation {
	return []models.Recommendation{
		{
			Type:         models.RecommendationProgression,
			ExerciseID:   "bench-press",
			ExerciseName: "Bench Press",
			Title:        "Increase Weight",
			Description:  "You've been consistent with your current weight. Time to increase by 2-5 kgs.",
			Reasoning:    "You've completed all sets with proper form for the last 3 sessions.",
			Confidence:   0.85,
			Priority:     models.PriorityHigh,
		},
		{
			Type:        models.RecommendationExercise,
			Title:       "Add Incline Variations",
			Description: "Consider adding incline bench press to target your upper chest more effectively.",
			Reasoning:   "Your chest development could benefit from hitting different angles.",
			Confidence:  0.75,
			Priority:    models.PriorityMedium,
		},
		{
			Type:        models.RecommendationRest,
			Title:       "Recovery Day Needed",
			Description: "You've trained intensely this week. Consider taking a rest day or doing light cardio.",
			Reasoning:   "Consistent training without adequate rest can lead to overtraining.",
			Confidence:  0.9,
			Priority:    models.PriorityHigh,
		},
	}
}

// SampleWorkout is the plan used when generation fails.
func SampleWorkout(minutes int) *models.Workout {
	w := models.NewWorkout("Sample AI Workout")
	if minutes > 0 {
		w.WithDuration(minutes)
	}
	w.Exercises = []models.Exercise{
		{
			ID:           "push-up-sample",
			Name:         "Push-ups",
			Category:     models.CategoryChest,
			MuscleGroups: []string{"chest", "shoulders", "triceps"},
			Equipment:    "bodyweight",
			Instructions: "Start in plank position, lower chest to ground, push back up.",
		},
		{
			ID:           "squat-sample",
			Name:         "Bodyweight Squats",
			Category:     models.CategoryLegs,
			MuscleGroups: []string{"quadriceps", "glutes"},
			Equipment:    "bodyweight",
			Instructions: "Stand with feet shoulder-width apart, lower hips back and down.",
		},
	}
	w.Sets = []models.WorkoutSet{
		{ID: "set-1", ExerciseID: "push-up-sample", Reps: 12},
		{ID: "set-2", ExerciseID: "push-up-sample", Reps: 12},
		{ID: "set-3", ExerciseID: "squat-sample", Reps: 15},
		{ID: "set-4", ExerciseID: "squat-sample", Reps: 15},
	}
	return w
}
