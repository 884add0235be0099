// ABOUTME: Controller for the single in-progress workout and its timer.
// ABOUTME: Every mutation is followed by an explicit save through the Store.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/trainer/internal/models"
)

// DefaultName is used when a workout is started without a name.
const DefaultName = "New Workout"

var (
	ErrNoWorkout         = errors.New("no workout in progress")
	ErrWorkoutInProgress = errors.New("a workout is already in progress")
	ErrSetNotFound       = errors.New("set not found")
	ErrNoSets            = errors.New("add exercises to the workout before finishing")
	ErrNoCompletedSets   = errors.New("complete at least one set before finishing")
)

// Store persists the session and completed workouts.
type Store interface {
	LoadSession() (*models.Session, error)
	SaveSession(s *models.Session) error
	ClearSession() error
	SaveWorkout(w *models.Workout) error
}

// Controller owns the session state. It is not safe for concurrent use.
type Controller struct {
	store Store
	state *models.Session
}

// Load restores the saved session from store.
func Load(store Store) (*Controller, error) {
	s, err := store.LoadSession()
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = &models.Session{}
	}
	return &Controller{store: store, state: s}, nil
}

// State returns the session state. Callers must not mutate it.
func (c *Controller) State() *models.Session {
	return c.state
}

// Current returns the in-progress workout.
func (c *Controller) Current() (*models.Workout, error) {
	if c.state.Current == nil {
		return nil, ErrNoWorkout
	}
	return c.state.Current, nil
}

// InProgress reports whether a workout is in progress.
func (c *Controller) InProgress() bool {
	return c.state.Current != nil
}

func (c *Controller) save() error {
	if err := c.store.SaveSession(c.state); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// begin installs w as the current workout with a reset, stopped timer.
func (c *Controller) begin(w *models.Workout) (*models.Workout, error) {
	if c.state.Current != nil {
		return nil, ErrWorkoutInProgress
	}
	c.state = &models.Session{Current: w}
	if err := c.save(); err != nil {
		return nil, err
	}
	return w, nil
}

// Start begins an empty workout. The timer is not started.
func (c *Controller) Start(name string) (*models.Workout, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}
	return c.begin(models.NewWorkout(name))
}

// StartFromTemplate begins a workout copying name, exercises, notes, and sets
// from saved. Sets get new IDs and start incomplete.
func (c *Controller) StartFromTemplate(saved *models.Workout) (*models.Workout, error) {
	w := models.NewWorkout(saved.Name)
	w.Exercises = append(w.Exercises, saved.Exercises...)
	if saved.Notes != nil {
		w.WithNotes(*saved.Notes)
	}
	for _, s := range saved.Sets {
		s.ID = uuid.NewString()
		s.Completed = false
		w.Sets = append(w.Sets, s)
	}
	return c.begin(w)
}

// ApplyPlan makes a generated plan the current workout. Sets get new IDs;
// generated IDs are not trusted to be unique.
func (c *Controller) ApplyPlan(plan *models.Workout) (*models.Workout, error) {
	w := models.NewWorkout(plan.Name)
	if w.Name == "" {
		w.Name = DefaultName
	}
	w.Notes = plan.Notes
	w.Exercises = append(w.Exercises, plan.Exercises...)
	for _, s := range plan.Sets {
		s.ID = uuid.NewString()
		if ex, ok := w.FindExercise(s.ExerciseID); ok && ex.IsCardio() {
			s.IsCardio = true
		}
		w.Sets = append(w.Sets, s)
	}
	return c.begin(w)
}

// AddOptions configures the sets created by AddExercise.
type AddOptions struct {
	// Name renames the workout when non-empty.
	Name            string
	Sets            int
	Reps            int
	Weight          *float64
	DurationSeconds int
	Distance        float64
}

// AddExercise appends sets for ex. Cardio exercises get a single set with
// duration and distance; strength exercises get opts.Sets sets.
func (c *Controller) AddExercise(ex models.Exercise, opts AddOptions) ([]models.WorkoutSet, error) {
	w, err := c.Current()
	if err != nil {
		return nil, err
	}

	if _, ok := w.FindExercise(ex.ID); !ok {
		w.Exercises = append(w.Exercises, ex)
	}

	var added []models.WorkoutSet
	if ex.IsCardio() {
		var dur *int
		var dist *float64
		if opts.DurationSeconds > 0 {
			d := opts.DurationSeconds
			dur = &d
		}
		if opts.Distance > 0 {
			d := opts.Distance
			dist = &d
		}
		added = append(added, models.NewCardioSet(ex.ID, dur, dist))
	} else {
		weight := 0.0
		if opts.Weight != nil {
			weight = *opts.Weight
		}
		for i := 0; i < opts.Sets; i++ {
			added = append(added, models.NewStrengthSet(ex.ID, opts.Reps, weight))
		}
	}

	w.Sets = append(w.Sets, added...)
	if opts.Name != "" {
		w.Name = opts.Name
	}
	return added, c.save()
}

// AddSet appends one more set for exerciseID, copying values from the first
// existing set for that exercise.
func (c *Controller) AddSet(ex models.Exercise) (models.WorkoutSet, error) {
	w, err := c.Current()
	if err != nil {
		return models.WorkoutSet{}, err
	}

	s := models.WorkoutSet{
		ID:         uuid.NewString(),
		ExerciseID: ex.ID,
		IsCardio:   ex.IsCardio(),
	}
	for _, existing := range w.Sets {
		if existing.ExerciseID == ex.ID {
			s.Reps = existing.Reps
			s.Weight = copyFloat(existing.Weight)
			s.Duration = copyInt(existing.Duration)
			s.Distance = copyFloat(existing.Distance)
			break
		}
	}
	if _, ok := w.FindExercise(ex.ID); !ok {
		w.Exercises = append(w.Exercises, ex)
	}
	w.Sets = append(w.Sets, s)
	return s, c.save()
}

// ToggleSet flips a set's completed flag and returns the new value.
func (c *Controller) ToggleSet(id string) (bool, error) {
	s, err := c.findSet(id)
	if err != nil {
		return false, err
	}
	s.Completed = !s.Completed
	return s.Completed, c.save()
}

// CompleteAll marks every set completed and returns how many changed.
func (c *Controller) CompleteAll() (int, error) {
	w, err := c.Current()
	if err != nil {
		return 0, err
	}
	changed := 0
	for i := range w.Sets {
		if !w.Sets[i].Completed {
			w.Sets[i].Completed = true
			changed++
		}
	}
	return changed, c.save()
}

// SetEdit holds new values for a set. Cardio sets take Duration and Distance;
// strength sets take Reps and Weight.
type SetEdit struct {
	Reps     int
	Weight   *float64
	Duration *int
	Distance *float64
}

// EditSet replaces the editable values of a set.
func (c *Controller) EditSet(id string, edit SetEdit) (models.WorkoutSet, error) {
	s, err := c.findSet(id)
	if err != nil {
		return models.WorkoutSet{}, err
	}
	if s.IsCardio {
		s.Duration = edit.Duration
		s.Distance = edit.Distance
	} else {
		s.Reps = edit.Reps
		s.Weight = edit.Weight
	}
	return *s, c.save()
}

// RemoveSet deletes a set, by full ID or unique prefix, from the current workout.
func (c *Controller) RemoveSet(id string) error {
	s, err := c.findSet(id)
	if err != nil {
		return err
	}
	w := c.state.Current
	i := w.FindSet(s.ID)
	w.Sets = append(w.Sets[:i], w.Sets[i+1:]...)
	return c.save()
}

// findSet resolves a set by full ID or unique prefix.
func (c *Controller) findSet(id string) (*models.WorkoutSet, error) {
	w, err := c.Current()
	if err != nil {
		return nil, err
	}
	if i := w.FindSet(id); i >= 0 {
		return &w.Sets[i], nil
	}
	match := -1
	for i := range w.Sets {
		if id != "" && strings.HasPrefix(w.Sets[i].ID, id) {
			if match >= 0 {
				return nil, fmt.Errorf("%w: %s is ambiguous", ErrSetNotFound, id)
			}
			match = i
		}
	}
	if match < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSetNotFound, id)
	}
	return &w.Sets[match], nil
}

// Finish completes the current workout, saves it, and clears the session.
// Cardio sets without a duration take the timer value. Duration is the timer
// in minutes, or the completed cardio time when the timer never ran.
func (c *Controller) Finish(now time.Time) (*models.Workout, error) {
	w, err := c.Current()
	if err != nil {
		return nil, err
	}
	if len(w.Sets) == 0 {
		return nil, ErrNoSets
	}
	if len(w.CompletedSets()) == 0 {
		return nil, ErrNoCompletedSets
	}

	elapsed := c.Elapsed(now)
	var kept []models.WorkoutSet
	cardioSeconds := 0
	for _, s := range w.Sets {
		if !s.Completed {
			continue
		}
		if s.IsCardio {
			if s.Duration == nil || *s.Duration == 0 {
				d := elapsed
				s.Duration = &d
			}
			cardioSeconds += *s.Duration
		}
		kept = append(kept, s)
	}

	minutes := elapsed / 60
	if elapsed == 0 {
		minutes = cardioSeconds / 60
	}

	done := *w
	done.Sets = kept
	done.Completed = true
	done.WithDuration(minutes)

	if err := c.store.SaveWorkout(&done); err != nil {
		return nil, fmt.Errorf("save workout: %w", err)
	}
	if err := c.Clear(); err != nil {
		return nil, err
	}
	return &done, nil
}

// Clear discards the current workout and resets the timer.
func (c *Controller) Clear() error {
	c.state = &models.Session{}
	if err := c.store.ClearSession(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func copyInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
