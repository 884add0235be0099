// ABOUTME: Prompt builders for the trainer use cases.
// ABOUTME: Each prompt embeds the relevant history as JSON and names the reply shape.
package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harperreed/trainer/internal/models"
)

// HistoryWindow is how many recent workouts go into recommendation prompts.
const HistoryWindow = 5

func toJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}

func lastWorkouts(workouts []models.Workout, n int) []models.Workout {
	if len(workouts) <= n {
		return workouts
	}
	return workouts[len(workouts)-n:]
}

func recommendationsPrompt(history []models.Workout, progress []models.Progress) string {
	return fmt.Sprintf(`As an AI personal trainer, analyze the following workout history and current progress data to provide specific recommendations for the next workout session.

Workout History (last %d sessions):
%s

Current Progress:
%s

Reply with JSON only, in this format:
{
  "recommendations": [
    {
      "type": "progression",
      "exerciseId": "exercise_id",
      "exerciseName": "Exercise Name",
      "title": "Increase weight by 2.5kg",
      "description": "Based on your consistent performance, you're ready to increase the weight.",
      "reasoning": "You've completed all sets with proper form for the last 2 sessions.",
      "confidence": 0.85,
      "priority": "high"
    }
  ]
}

"type" is one of progression, exercise, rest, technique. "priority" is one of low, medium, high.

Focus on:
1. Weight/rep progressions based on performance trends
2. Exercise variations to prevent plateaus
3. Recovery recommendations if overtraining is detected
4. Form corrections if inconsistent performance is observed

Provide 3-5 specific, actionable recommendations.`,
		HistoryWindow, toJSON(lastWorkouts(history, HistoryWindow)), toJSON(progress))
}

func suggestionsPrompt(current []models.Exercise, goals []string, level string) string {
	return fmt.Sprintf(`As an AI personal trainer, suggest new exercises to add variety to the current workout routine.

Current Exercises:
%s

User Goals: %s
Fitness Level: %s

Reply with JSON only, suggesting 5-8 new exercises in this format:
{
  "exercises": [
    {
      "id": "exercise-slug",
      "name": "Exercise Name",
      "category": "chest|back|shoulders|arms|legs|core|cardio",
      "muscleGroups": ["muscle1", "muscle2"],
      "equipment": "equipment_needed",
      "instructions": "Brief instructions for proper form"
    }
  ]
}

Focus on:
1. Complementing existing exercises
2. Targeting underworked muscle groups
3. Progressive difficulty appropriate for fitness level
4. Variety in movement patterns`,
		toJSON(current), strings.Join(goals, ", "), level)
}

func planPrompt(req PlanRequest) string {
	return fmt.Sprintf(`Create a complete workout plan for today's session.

User Profile:
- Fitness Level: %s
- Workout Type: %s
- Goals: %s
- Available Time: %d minutes
- Available Equipment: %s

Reply with JSON only, in this format:
{
  "workout": {
    "name": "Workout Name",
    "exercises": [
      {
        "id": "exercise-slug",
        "name": "Exercise Name",
        "category": "chest|back|shoulders|arms|legs|core|cardio|full-body",
        "muscleGroups": ["muscle1", "muscle2"],
        "equipment": "equipment_needed",
        "instructions": "Form instructions"
      }
    ],
    "sets": [
      {
        "id": "set-1",
        "exerciseId": "exercise-slug",
        "reps": 12,
        "weight": 50,
        "restTime": 60,
        "completed": false
      }
    ],
    "duration": %d,
    "notes": "Any additional notes",
    "completed": false
  }
}

Create a balanced workout with appropriate sets, reps, and rest periods.`,
		req.FitnessLevel, req.WorkoutType, strings.Join(req.Goals, ", "), req.AvailableMinutes,
		strings.Join(req.Equipment, ", "), req.AvailableMinutes)
}

func chatPrompt(message string, history []ChatMessage, workouts []models.Workout, progress []models.Progress) string {
	var convo strings.Builder
	for _, m := range history {
		convo.WriteString(fmt.Sprintf("%s: %s\n", m.Role, m.Content))
	}
	return fmt.Sprintf(`You are Aila, a friendly and knowledgeable AI personal trainer. Answer the user's question using their training data where relevant. Keep answers concise and practical. Use markdown for lists.

Recent workouts (last %d):
%s

Progress:
%s

Conversation so far:
%s
user: %s
assistant:`,
		HistoryWindow, toJSON(lastWorkouts(workouts, HistoryWindow)), toJSON(progress), convo.String(), message)
}
