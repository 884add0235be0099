// ABOUTME: Dashboard and per-period workout statistics.
// ABOUTME: All figures come from completed workouts only.
package progress

import (
	"fmt"
	"math"
	"time"

	"github.com/harperreed/trainer/internal/models"
)

// WeeklyGoal is the target number of workouts per week.
const WeeklyGoal = 3

// RecentLimit is how many recent workouts the dashboard shows.
const RecentLimit = 5

// Dashboard summarizes training history.
type Dashboard struct {
	TotalWorkouts    int              `json:"totalWorkouts"`
	ThisWeekWorkouts int              `json:"thisWeekWorkouts"`
	WeeklyGoal       int              `json:"weeklyGoal"`
	TotalExercises   int              `json:"totalExercises"`
	AverageDuration  int              `json:"averageDuration"` // minutes
	Recent           []models.Workout `json:"recent"`
}

// BuildDashboard computes dashboard figures. The week starts Sunday at local midnight.
func BuildDashboard(workouts []models.Workout, exerciseCount int, now time.Time) Dashboard {
	completed := Completed(workouts)
	weekStart := StartOfWeek(now)

	d := Dashboard{
		TotalWorkouts:   len(completed),
		WeeklyGoal:      WeeklyGoal,
		TotalExercises:  exerciseCount,
		AverageDuration: averageDuration(completed),
		Recent:          Recent(completed, RecentLimit),
	}
	for _, w := range completed {
		if !w.Date.Before(weekStart) {
			d.ThisWeekWorkouts++
		}
	}
	return d
}

// Period selects a time window for PeriodStats.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// ParsePeriod validates a period name.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodWeek, PeriodMonth, PeriodAll:
		return Period(s), nil
	case "":
		return PeriodAll, nil
	}
	return "", fmt.Errorf("unknown period: %q (use week, month, or all)", s)
}

// Since returns the start of the window ending at now. PeriodAll returns the zero time.
func (p Period) Since(now time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return now.AddDate(0, -1, 0)
	}
	return time.Time{}
}

// Stats are totals for completed workouts in a period.
type Stats struct {
	Period          Period `json:"period"`
	TotalWorkouts   int    `json:"totalWorkouts"`
	TotalSets       int    `json:"totalSets"`
	TotalDuration   int    `json:"totalDuration"`   // minutes
	AverageDuration int    `json:"averageDuration"` // minutes
}

// PeriodStats computes totals for completed workouts dated within the period.
func PeriodStats(workouts []models.Workout, period Period, now time.Time) Stats {
	filtered := InPeriod(Completed(workouts), period, now)
	s := Stats{
		Period:          period,
		TotalWorkouts:   len(filtered),
		AverageDuration: averageDuration(filtered),
	}
	for _, w := range filtered {
		s.TotalSets += len(w.CompletedSets())
		if w.Duration != nil {
			s.TotalDuration += *w.Duration
		}
	}
	return s
}

// InPeriod keeps workouts dated at or after the period start.
func InPeriod(workouts []models.Workout, period Period, now time.Time) []models.Workout {
	if period == PeriodAll || period == "" {
		return workouts
	}
	since := period.Since(now)
	var out []models.Workout
	for _, w := range workouts {
		if !w.Date.Before(since) {
			out = append(out, w)
		}
	}
	return out
}

// Completed keeps completed workouts in their original order.
func Completed(workouts []models.Workout) []models.Workout {
	var out []models.Workout
	for _, w := range workouts {
		if w.Completed {
			out = append(out, w)
		}
	}
	return out
}

// Recent returns the last n workouts, newest-stored first.
func Recent(workouts []models.Workout, n int) []models.Workout {
	start := len(workouts) - n
	if start < 0 {
		start = 0
	}
	out := make([]models.Workout, 0, len(workouts)-start)
	for i := len(workouts) - 1; i >= start; i-- {
		out = append(out, workouts[i])
	}
	return out
}

// StartOfWeek returns the most recent Sunday at local midnight.
func StartOfWeek(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, now.Location())
}

func averageDuration(workouts []models.Workout) int {
	if len(workouts) == 0 {
		return 0
	}
	total := 0
	for _, w := range workouts {
		if w.Duration != nil {
			total += *w.Duration
		}
	}
	return int(math.Round(float64(total) / float64(len(workouts))))
}
