// ABOUTME: AI trainer use cases: recommendations, suggestions, plans, and chat.
// ABOUTME: Every failure is logged and replaced with a typed fallback.
package ai

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/harperreed/trainer/internal/models"
)

// Trainer wraps a Generator with the trainer prompts and fallbacks.
type Trainer struct {
	gen Generator
}

// NewTrainer creates a Trainer over gen.
func NewTrainer(gen Generator) *Trainer {
	return &Trainer{gen: gen}
}

// Recommendations asks for next-session advice. A failed call yields the mock
// recommendations; an unparseable reply yields none. Both are tagged Fallback.
func (t *Trainer) Recommendations(ctx context.Context, history []models.Workout, progress []models.Progress) Result[[]models.Recommendation] {
	text, err := t.gen.Generate(ctx, recommendationsPrompt(history, progress))
	if err != nil {
		log.Warn().Err(err).Str("op", "recommendations").Msg("ai call failed, using mock recommendations")
		return Result[[]models.Recommendation]{Value: MockRecommendations(), Fallback: true, Err: err}
	}

	var reply struct {
		Recommendations []recommendationReply `json:"recommendations"`
	}
	if err := Decode(text, &reply); err != nil {
		log.Warn().Err(err).Str("op", "recommendations").Msg("unparseable ai reply")
		return Result[[]models.Recommendation]{Value: []models.Recommendation{}, Fallback: true, Err: err}
	}
	out := make([]models.Recommendation, 0, len(reply.Recommendations))
	for _, r := range reply.Recommendations {
		out = append(out, r.model())
	}
	return Result[[]models.Recommendation]{Value: out}
}

// SuggestExercises asks for new exercises. Failures yield an empty list.
func (t *Trainer) SuggestExercises(ctx context.Context, current []models.Exercise, goals []string, level string) Result[[]models.Exercise] {
	empty := []models.Exercise{}
	text, err := t.gen.Generate(ctx, suggestionsPrompt(current, goals, level))
	if err != nil {
		log.Warn().Err(err).Str("op", "suggest").Msg("ai call failed")
		return Result[[]models.Exercise]{Value: empty, Fallback: true, Err: err}
	}

	var reply struct {
		Exercises []exerciseReply `json:"exercises"`
	}
	if err := Decode(text, &reply); err != nil {
		log.Warn().Err(err).Str("op", "suggest").Msg("unparseable ai reply")
		return Result[[]models.Exercise]{Value: empty, Fallback: true, Err: err}
	}

	out := empty
	for _, r := range reply.Exercises {
		if e := r.model(); normalizeExercise(&e) {
			out = append(out, e)
		}
	}
	return Result[[]models.Exercise]{Value: out}
}

// PlanRequest describes the workout to generate.
type PlanRequest struct {
	FitnessLevel     string
	WorkoutType      string
	Goals            []string
	AvailableMinutes int
	Equipment        []string
}

// WorkoutPlan generates a workout. Failures yield the sample workout.
func (t *Trainer) WorkoutPlan(ctx context.Context, req PlanRequest) Result[*models.Workout] {
	text, err := t.gen.Generate(ctx, planPrompt(req))
	if err != nil {
		log.Warn().Err(err).Str("op", "plan").Msg("ai call failed, using sample workout")
		return Result[*models.Workout]{Value: SampleWorkout(req.AvailableMinutes), Fallback: true, Err: err}
	}

	plan, err := decodePlan(text)
	if err != nil {
		log.Warn().Err(err).Str("op", "plan").Str("raw", truncate(text, 500)).Msg("unparseable ai plan, using sample workout")
		return Result[*models.Workout]{Value: SampleWorkout(req.AvailableMinutes), Fallback: true, Err: err}
	}

	w := models.NewWorkout(plan.Name)
	w.Notes = plan.Notes
	w.Duration = intPtr(plan.Duration)
	for _, r := range plan.Exercises {
		if e := r.model(); normalizeExercise(&e) {
			w.Exercises = append(w.Exercises, e)
		}
	}
	for _, r := range plan.Sets {
		w.Sets = append(w.Sets, r.model())
	}
	return Result[*models.Workout]{Value: w}
}

// decodePlan accepts {"workout": {...}} or the bare workout object.
func decodePlan(text string) (*planReply, error) {
	var reply struct {
		Wrapped *planReply `json:"workout"`
		planReply
	}
	if err := Decode(text, &reply); err != nil {
		return nil, err
	}
	plan := reply.Wrapped
	if plan == nil {
		plan = &reply.planReply
	}
	if len(plan.Sets) == 0 && len(plan.Exercises) == 0 {
		return nil, errors.New("plan has no exercises")
	}
	return plan, nil
}

// ChatMessage is one turn of a chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat answers a free-text question. Failures yield the apology text.
func (t *Trainer) Chat(ctx context.Context, message string, history []ChatMessage, workouts []models.Workout, progress []models.Progress) Result[string] {
	text, err := t.gen.Generate(ctx, chatPrompt(message, history, workouts, progress))
	if err != nil {
		log.Warn().Err(err).Str("op", "chat").Msg("ai call failed")
		return Result[string]{Value: ChatApology, Fallback: true, Err: err}
	}
	return Result[string]{Value: strings.TrimSpace(text)}
}

// normalizeExercise fills a missing ID from the name and an unknown category
// with full-body. Exercises without a name are dropped.
func normalizeExercise(e *models.Exercise) bool {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return false
	}
	if e.ID == "" {
		e.ID = models.Slugify(e.Name)
	}
	if !models.IsValidCategory(string(e.Category)) {
		e.Category = models.CategoryFullBody
	}
	if e.MuscleGroups == nil {
		e.MuscleGroups = []string{}
	}
	return true
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
