// ABOUTME: Loosely typed shapes of model replies and their mapping to models.
// ABOUTME: Scalars accept number, string, or bool forms so one slip keeps the reply.
package ai

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/harperreed/trainer/internal/models"
)

// flexBool decodes booleans, numbers, and "true"/"yes"/"1" strings.
type flexBool bool

func (f *flexBool) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexBool(models.CoerceBool(v))
	return nil
}

// flexFloat decodes numbers and numeric strings. Anything else reads as zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexFloat(toFloat(v))
	return nil
}

// flexInt decodes like flexFloat and rounds to the nearest integer.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	var v flexFloat
	if err := v.UnmarshalJSON(b); err != nil {
		return err
	}
	*f = flexInt(math.Round(float64(v)))
	return nil
}

// flexStrings decodes a list of strings or a single comma-separated string.
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	out := []string{}
	switch t := v.(type) {
	case string:
		for _, p := range strings.Split(t, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	}
	*f = out
	return nil
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	case bool:
		if t {
			return 1
		}
	}
	return 0
}

type recommendationReply struct {
	Type         string    `json:"type"`
	ExerciseID   string    `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Reasoning    string    `json:"reasoning"`
	Confidence   flexFloat `json:"confidence"`
	Priority     string    `json:"priority"`
}

func (r recommendationReply) model() models.Recommendation {
	return models.Recommendation{
		Type:         models.RecommendationType(r.Type),
		ExerciseID:   r.ExerciseID,
		ExerciseName: r.ExerciseName,
		Title:        r.Title,
		Description:  r.Description,
		Reasoning:    r.Reasoning,
		Confidence:   clamp01(float64(r.Confidence)),
		Priority:     models.Priority(r.Priority),
	}
}

type exerciseReply struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Category     string      `json:"category"`
	MuscleGroups flexStrings `json:"muscleGroups"`
	Equipment    string      `json:"equipment"`
	Instructions string      `json:"instructions"`
}

func (e exerciseReply) model() models.Exercise {
	return models.Exercise{
		ID:           e.ID,
		Name:         e.Name,
		Category:     models.Category(e.Category),
		MuscleGroups: []string(e.MuscleGroups),
		Equipment:    e.Equipment,
		Instructions: e.Instructions,
	}
}

type setReply struct {
	ID         string     `json:"id"`
	ExerciseID string     `json:"exerciseId"`
	Reps       flexInt    `json:"reps"`
	Weight     *flexFloat `json:"weight"`
	Duration   *flexInt   `json:"duration"`
	Distance   *flexFloat `json:"distance"`
	RestTime   *flexInt   `json:"restTime"`
	Completed  flexBool   `json:"completed"`
	IsCardio   flexBool   `json:"isCardio"`
}

func (s setReply) model() models.WorkoutSet {
	return models.WorkoutSet{
		ID:         s.ID,
		ExerciseID: s.ExerciseID,
		Reps:       int(s.Reps),
		Weight:     floatPtr(s.Weight),
		Duration:   intPtr(s.Duration),
		Distance:   floatPtr(s.Distance),
		RestTime:   intPtr(s.RestTime),
		Completed:  bool(s.Completed),
		IsCardio:   bool(s.IsCardio),
	}
}

type planReply struct {
	Name      string          `json:"name"`
	Exercises []exerciseReply `json:"exercises"`
	Sets      []setReply      `json:"sets"`
	Duration  *flexInt        `json:"duration"`
	Notes     *string         `json:"notes"`
}

func floatPtr(f *flexFloat) *float64 {
	if f == nil {
		return nil
	}
	v := float64(*f)
	return &v
}

func intPtr(i *flexInt) *int {
	if i == nil {
		return nil
	}
	v := int(*i)
	return &v
}
