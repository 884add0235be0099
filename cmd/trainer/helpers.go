// ABOUTME: Shared CLI helpers for parsing, formatting, and status lines.
// ABOUTME: Weights are stored in kg and shown in the preferred unit.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/harperreed/trainer/internal/models"
)

var (
	faint  = color.New(color.Faint)
	bold   = color.New(color.Bold)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
)

func success(out io.Writer, format string, args ...any) {
	green.Fprintf(out, "✓ "+format+"\n", args...)
}

func warn(out io.Writer, format string, args ...any) {
	yellow.Fprintf(out, "⚠ "+format+"\n", args...)
}

// parseTime accepts a date, a date and time, or RFC3339.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q (use YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// confirm reads a yes/no answer. Anything but y or yes is no.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, _ := bufio.NewReader(in).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func preferredUnit() models.WeightUnit {
	u, err := repo.WeightUnit()
	if err != nil {
		return models.UnitKG
	}
	return u
}

// toKG converts user input in unit to the stored kg value.
func toKG(w float64, unit models.WeightUnit) float64 {
	return models.Convert(w, unit, models.UnitKG)
}

// showWeight renders a stored kg weight in unit, rounded to 0.1.
func showWeight(w *float64, unit models.WeightUnit) string {
	if w == nil || *w == 0 {
		return models.FormatWeight(nil, unit)
	}
	v := math.Round(models.Convert(*w, models.UnitKG, unit)*10) / 10
	return models.FormatWeight(&v, unit)
}

func formatSet(s models.WorkoutSet, unit models.WeightUnit) string {
	box := "[ ]"
	if s.Completed {
		box = green.Sprint("[✓]")
	}
	var detail string
	if s.IsCardio {
		parts := []string{}
		if s.Duration != nil {
			parts = append(parts, models.FormatClock(*s.Duration))
		}
		if s.Distance != nil {
			parts = append(parts, fmt.Sprintf("%g km", *s.Distance))
		}
		if len(parts) == 0 {
			parts = append(parts, "timer")
		}
		detail = strings.Join(parts, "  ")
	} else {
		detail = fmt.Sprintf("%d × %s", s.Reps, showWeight(s.Weight, unit))
	}
	return fmt.Sprintf("  %s %s  %s", box, faint.Sprint(shortID(s.ID)), detail)
}

func exerciseName(w *models.Workout, id string) string {
	if ex, ok := w.FindExercise(id); ok {
		return ex.Name
	}
	return id
}

func printWorkout(out io.Writer, w *models.Workout, unit models.WeightUnit) {
	bold.Fprintf(out, "%s\n", w.Name)
	fmt.Fprintf(out, "ID: %s\n", w.ID)
	fmt.Fprintf(out, "Date: %s\n", w.Date.Local().Format("2006-01-02 15:04"))
	if w.Duration != nil {
		fmt.Fprintf(out, "Duration: %d min\n", *w.Duration)
	}
	if w.Notes != nil && *w.Notes != "" {
		fmt.Fprintf(out, "Notes: %s\n", *w.Notes)
	}
	if w.Completed {
		fmt.Fprintf(out, "Status: completed (%d sets)\n", len(w.CompletedSets()))
	}

	groups := w.GroupSets()
	if len(groups) == 0 {
		faint.Fprintln(out, "\nNo exercises yet. Add one with 'trainer workout add <exercise-id>'.")
		return
	}
	for _, g := range groups {
		fmt.Fprintln(out)
		cyan.Fprintf(out, "%s\n", exerciseName(w, g.ExerciseID))
		for _, s := range g.Sets {
			fmt.Fprintln(out, formatSet(s, unit))
		}
	}
}
