// ABOUTME: Export and import functionality for trainer data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/trainer/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportVersion is written into every export file.
const ExportVersion = "1.0"

// ExportData represents the full export format for trainer data.
type ExportData struct {
	Version    string            `json:"version" yaml:"version"`
	ExportedAt time.Time         `json:"exported_at" yaml:"exported_at"`
	Tool       string            `json:"tool" yaml:"tool"`
	Unit       models.WeightUnit `json:"unit" yaml:"unit"`
	Profile    *models.Profile   `json:"profile,omitempty" yaml:"profile,omitempty"`
	Exercises  []models.Exercise `json:"exercises" yaml:"exercises"`
	Workouts   []models.Workout  `json:"workouts" yaml:"workouts"`
}

// GetAllData retrieves all data for export.
func (r *Repository) GetAllData() (*ExportData, error) {
	exercises, err := r.ListExercises()
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	workouts, err := r.ListWorkouts()
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	unit, err := r.WeightUnit()
	if err != nil {
		return nil, fmt.Errorf("read unit: %w", err)
	}
	profile, err := r.Profile()
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	return &ExportData{
		Version:    ExportVersion,
		ExportedAt: time.Now(),
		Tool:       "trainer",
		Unit:       unit,
		Profile:    profile,
		Exercises:  exercises,
		Workouts:   workouts,
	}, nil
}

// ImportData upserts exported exercises, workouts, profile, and unit.
func (r *Repository) ImportData(data *ExportData) error {
	for i := range data.Exercises {
		if err := r.SaveExercise(&data.Exercises[i]); err != nil {
			return fmt.Errorf("import exercise: %w", err)
		}
	}
	for i := range data.Workouts {
		if err := r.SaveWorkout(&data.Workouts[i]); err != nil {
			return fmt.Errorf("import workout: %w", err)
		}
	}
	if data.Profile != nil {
		if err := r.SaveProfile(data.Profile); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
	}
	if data.Unit != "" {
		if err := r.SetWeightUnit(data.Unit); err != nil {
			return fmt.Errorf("import unit: %w", err)
		}
	}
	return nil
}

// ExportJSON exports all data as JSON.
func (r *Repository) ExportJSON() ([]byte, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (r *Repository) ExportYAML() ([]byte, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ParseExport decodes an export file in JSON or YAML form.
func ParseExport(raw []byte) (*ExportData, error) {
	var data ExportData
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &data); err != nil {
			return nil, fmt.Errorf("parse json export: %w", err)
		}
	} else if err := yaml.Unmarshal(trimmed, &data); err != nil {
		return nil, fmt.Errorf("parse yaml export: %w", err)
	}
	if data.Version == "" {
		return nil, fmt.Errorf("parse export: missing version")
	}
	return &data, nil
}

// ExportMarkdown renders completed workouts as a Markdown log.
func (r *Repository) ExportMarkdown(since *time.Time) (string, error) {
	workouts, err := r.ListCompletedWorkouts()
	if err != nil {
		return "", err
	}
	exercises, err := r.ListExercises()
	if err != nil {
		return "", err
	}
	unit, err := r.WeightUnit()
	if err != nil {
		return "", err
	}
	names := make(map[string]string, len(exercises))
	for _, e := range exercises {
		names[e.ID] = e.Name
	}

	var sb strings.Builder
	now := time.Now()
	sb.WriteString(fmt.Sprintf("# Training Log - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	for _, w := range workouts {
		if since != nil && w.Date.Before(*since) {
			continue
		}
		for _, e := range w.Exercises {
			if _, ok := names[e.ID]; !ok {
				names[e.ID] = e.Name
			}
		}

		sb.WriteString(fmt.Sprintf("## %s - %s\n\n", w.Date.Format("2006-01-02"), w.Name))
		if w.Duration != nil {
			sb.WriteString(fmt.Sprintf("Duration: %d min\n\n", *w.Duration))
		}
		sb.WriteString("| Exercise | Reps | Weight | Distance | Time |\n")
		sb.WriteString("|----------|------|--------|----------|------|\n")
		for _, s := range w.Sets {
			name := names[s.ExerciseID]
			if name == "" {
				name = s.ExerciseID
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
				name, repsCell(s), weightCell(s, unit), distanceCell(s), durationCell(s)))
		}
		if w.Notes != nil && *w.Notes != "" {
			sb.WriteString(fmt.Sprintf("\n%s\n", *w.Notes))
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func repsCell(s models.WorkoutSet) string {
	if s.IsCardio {
		return ""
	}
	return fmt.Sprintf("%d", s.Reps)
}

func weightCell(s models.WorkoutSet, unit models.WeightUnit) string {
	if s.IsCardio {
		return ""
	}
	return models.FormatWeight(s.Weight, unit)
}

func distanceCell(s models.WorkoutSet) string {
	if s.Distance == nil {
		return ""
	}
	return fmt.Sprintf("%.2f km", *s.Distance)
}

func durationCell(s models.WorkoutSet) string {
	if s.Duration == nil {
		return ""
	}
	return models.FormatClock(*s.Duration)
}
