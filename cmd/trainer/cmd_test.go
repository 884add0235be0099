// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Runs commands end to end against a temporary SQLite store.
package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/trainer/internal/ai"
	"github.com/harperreed/trainer/internal/config"
	"github.com/harperreed/trainer/internal/kv"
	"github.com/harperreed/trainer/internal/models"
	"github.com/harperreed/trainer/internal/session"
	"github.com/harperreed/trainer/internal/storage"
)

type stubGenerator struct {
	reply string
	err   error
}

func (g stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.reply, g.err
}

// setupTestCLI points config and data at temp dirs, uses SQLite, and stubs the AI.
func setupTestCLI(t *testing.T, gen ai.Generator) string {
	t.Helper()
	tmp := t.TempDir()
	dataDir := filepath.Join(tmp, "data")

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_DATA_HOME", tmp)
	t.Setenv("TRAINER_DATA_DIR", dataDir)
	t.Setenv("TRAINER_BACKEND", config.BackendSQLite)
	t.Setenv("TRAINER_LOG_LEVEL", "error")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("TRAINER_AI_API_KEY", "")

	color.NoColor = true

	orig := newGenerator
	newGenerator = func(*config.Config) ai.Generator { return gen }
	t.Cleanup(func() { newGenerator = orig })

	return dataDir
}

// resetFlags restores every flag to its default so runs don't leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the CLI with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, "", args...)
	require.NoError(t, err, "trainer %s", strings.Join(args, " "))
	return out
}

// openTestRepo opens the store the CLI wrote to. Callers close it.
func openTestRepo(t *testing.T, dataDir string) *storage.Repository {
	t.Helper()
	store, err := kv.OpenSQLite(filepath.Join(dataDir, "trainer.db"))
	require.NoError(t, err)
	r, err := storage.New(store)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"date and time with space", "2025-01-31 08:30", false},
		{"date and time with T", "2025-01-31T08:30", false},
		{"date only", "2025-01-31", false},
		{"RFC3339", "2025-01-31T08:30:00Z", false},
		{"RFC3339 with offset", "2025-01-31T08:30:00+05:00", false},
		{"invalid format", "31-01-2025", true},
		{"empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTime(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("parseTime(%q) unexpected error: %v", tt.input, err)
				return
			}
			if result.IsZero() {
				t.Errorf("parseTime(%q) returned zero time", tt.input)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Errorf("padRight should not truncate, got %q", got)
	}
}

func TestWeightConversion(t *testing.T) {
	kg := toKG(135, models.UnitLB)
	assert.InDelta(t, 61.23, kg, 0.01)
	assert.Equal(t, "135 lb", showWeight(&kg, models.UnitLB))
	assert.Equal(t, "61.2 kg", showWeight(&kg, models.UnitKG))
	assert.Equal(t, "bodyweight", showWeight(nil, models.UnitKG))
	assert.Equal(t, 100.0, toKG(100, models.UnitKG))
}

func TestLookupSet(t *testing.T) {
	w := models.NewWorkout("w")
	w.Sets = []models.WorkoutSet{
		{ID: "abc123", ExerciseID: "squat"},
		{ID: "abd456", ExerciseID: "squat"},
	}

	s, err := lookupSet(w, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc123", s.ID)

	_, err = lookupSet(w, "ab")
	assert.ErrorIs(t, err, session.ErrSetNotFound)

	_, err = lookupSet(w, "zzz")
	assert.ErrorIs(t, err, session.ErrSetNotFound)
}

func TestRootCmd(t *testing.T) {
	assert.Equal(t, "trainer", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{
		"workout", "set", "timer", "exercise", "progress", "stats", "dashboard",
		"recommend", "suggest", "chat", "settings", "profile", "export", "import",
		"migrate", "sync", "mcp", "serve", "reset", "install-skill",
	} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestWorkoutCmdSubcommands(t *testing.T) {
	assert.Contains(t, workoutCmd.Aliases, "w")
	names := map[string]bool{}
	for _, c := range workoutCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"start", "from", "plan", "show", "add", "finish", "clear", "list", "get", "delete"} {
		assert.True(t, names[want], "missing workout %s", want)
	}
}

func TestWorkoutAddCmdFlags(t *testing.T) {
	for name, short := range map[string]string{"sets": "s", "reps": "r", "weight": "w"} {
		f := workoutAddCmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, short, f.Shorthand)
	}
	assert.Equal(t, "3", workoutAddCmd.Flags().Lookup("sets").DefValue)
	assert.Equal(t, "10", workoutAddCmd.Flags().Lookup("reps").DefValue)
	assert.NotNil(t, workoutAddCmd.Flags().Lookup("duration"))
	assert.NotNil(t, workoutAddCmd.Flags().Lookup("distance"))
}

func TestExportCmdValidArgs(t *testing.T) {
	assert.ElementsMatch(t, []string{"json", "yaml", "markdown"}, exportCmd.ValidArgs)
	assert.Equal(t, "o", exportCmd.Flags().Lookup("output").Shorthand)
}

func TestStorageCommandsSkipStore(t *testing.T) {
	for _, c := range []*cobra.Command{migrateCmd, syncStatusCmd, syncLinkCmd, installSkillCmd, settingsBackendCmd} {
		assert.Equal(t, "true", c.Annotations[skipStore], c.CommandPath())
	}
}

func TestWorkoutLifecycle(t *testing.T) {
	dataDir := setupTestCLI(t, stubGenerator{err: errors.New("offline")})

	out := mustRun(t, "workout", "start", "Leg Day")
	assert.Contains(t, out, "Started Leg Day")

	out = mustRun(t, "workout", "add", "squat", "-s", "2", "-r", "5", "-w", "100")
	assert.Contains(t, out, "Added Back Squat (2 sets)")
	assert.Contains(t, out, "5 × 100 kg")

	out = mustRun(t, "workout", "show")
	assert.Contains(t, out, "Leg Day")
	assert.Contains(t, out, "Squat")
	assert.Contains(t, out, "paused")

	out = mustRun(t, "set", "done-all")
	assert.Contains(t, out, "Marked 2 sets done")

	out = mustRun(t, "workout", "finish")
	assert.Contains(t, out, "Saved Leg Day")

	out = mustRun(t, "workout", "show")
	assert.Contains(t, out, "No workout in progress")

	out = mustRun(t, "workout", "list")
	assert.Contains(t, out, "Leg Day")
	assert.Contains(t, out, "2 sets")

	out = mustRun(t, "progress")
	assert.Contains(t, out, "Squat")
	assert.Contains(t, out, "5 × 100 kg")

	out = mustRun(t, "stats", "--period", "week")
	assert.Contains(t, out, "Stats (week)")
	assert.Contains(t, out, "Completed sets:    2")

	out = mustRun(t, "dashboard")
	assert.Contains(t, out, "Workouts:          1")
	assert.Contains(t, out, "Leg Day")

	r := openTestRepo(t, dataDir)
	workouts, err := r.ListCompletedWorkouts()
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Len(t, workouts[0].Sets, 2)
}

func TestWorkoutStartTwice(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	mustRun(t, "workout", "start")
	_, err := run(t, "", "workout", "start", "Again")
	assert.ErrorIs(t, err, session.ErrWorkoutInProgress)
}

func TestWorkoutFinishRequiresCompletedSet(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	mustRun(t, "workout", "start")
	mustRun(t, "workout", "add", "push-up", "-s", "1")

	_, err := run(t, "", "workout", "finish")
	assert.ErrorIs(t, err, session.ErrNoCompletedSets)
}

func TestWorkoutAddUnknownExercise(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	mustRun(t, "workout", "start")
	_, err := run(t, "", "workout", "add", "nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestWorkoutClearNeedsConfirmation(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	mustRun(t, "workout", "start", "Keep Me")

	out, err := run(t, "n\n", "workout", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Canceled")
	assert.Contains(t, mustRun(t, "workout", "show"), "Keep Me")

	out = mustRun(t, "workout", "clear", "--yes")
	assert.Contains(t, out, "Discarded Keep Me")
}

func TestSetEditAndRemove(t *testing.T) {
	dataDir := setupTestCLI(t, stubGenerator{})
	mustRun(t, "workout", "start")
	mustRun(t, "workout", "add", "bench-press", "-s", "2", "-r", "8", "-w", "60")

	r := openTestRepo(t, dataDir)
	sess, err := r.LoadSession()
	require.NoError(t, err)
	require.Len(t, sess.Current.Sets, 2)
	first := sess.Current.Sets[0].ID
	second := sess.Current.Sets[1].ID
	require.NoError(t, r.Close())

	out := mustRun(t, "set", "edit", first, "-r", "6")
	assert.Contains(t, out, "6 × 60 kg")

	out = mustRun(t, "set", "toggle", first)
	assert.Contains(t, out, "done")

	mustRun(t, "set", "rm", second)

	r = openTestRepo(t, dataDir)
	sess, err = r.LoadSession()
	require.NoError(t, err)
	require.Len(t, sess.Current.Sets, 1)
	s := sess.Current.Sets[0]
	assert.Equal(t, 6, s.Reps)
	assert.Equal(t, 60.0, s.WeightValue())
	assert.True(t, s.Completed)
}

func TestSetAddCopiesFirstSet(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	mustRun(t, "workout", "start")
	mustRun(t, "workout", "add", "deadlift", "-s", "1", "-r", "3", "-w", "140")

	out := mustRun(t, "set", "add", "deadlift")
	assert.Contains(t, out, "Added a set of Deadlift")
	assert.Contains(t, out, "3 × 140 kg")
}

func TestCardioAdd(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	mustRun(t, "workout", "start", "Run")
	out := mustRun(t, "workout", "add", "running", "--duration", "30m", "--distance", "5")
	assert.Contains(t, out, "Added Running (1 sets)")
	assert.Contains(t, out, "30:00")
	assert.Contains(t, out, "5 km")

	mustRun(t, "set", "done-all")
	out = mustRun(t, "workout", "finish")
	assert.Contains(t, out, "Duration: 30 min")
}

func TestPoundsInputStoredAsKG(t *testing.T) {
	dataDir := setupTestCLI(t, stubGenerator{})
	mustRun(t, "settings", "unit", "lb")
	assert.Contains(t, mustRun(t, "settings", "unit"), "lb")

	mustRun(t, "workout", "start")
	out := mustRun(t, "workout", "add", "bench-press", "-s", "1", "-r", "5", "-w", "135")
	assert.Contains(t, out, "135 lb")

	r := openTestRepo(t, dataDir)
	sess, err := r.LoadSession()
	require.NoError(t, err)
	assert.InDelta(t, 61.23, sess.Current.Sets[0].WeightValue(), 0.01)
}

func TestSettingsUnitInvalid(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	_, err := run(t, "", "settings", "unit", "stone")
	assert.Error(t, err)
}

func TestTimerCommands(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	_, err := run(t, "", "timer", "start")
	assert.ErrorIs(t, err, session.ErrNoWorkout)

	mustRun(t, "workout", "start")
	out := mustRun(t, "timer", "start")
	assert.Contains(t, out, "Timer running")
	assert.Contains(t, mustRun(t, "timer", "status"), "running")

	out = mustRun(t, "timer", "pause")
	assert.Contains(t, out, "Timer paused")
	assert.Contains(t, mustRun(t, "timer", "status"), "paused")
}

func TestWorkoutFromTemplate(t *testing.T) {
	dataDir := setupTestCLI(t, stubGenerator{})
	mustRun(t, "workout", "start", "Pull Day")
	mustRun(t, "workout", "add", "pull-up", "-s", "3", "-r", "6")
	mustRun(t, "set", "done-all")
	mustRun(t, "workout", "finish")

	r := openTestRepo(t, dataDir)
	workouts, err := r.ListWorkouts()
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	id := workouts[0].ID
	require.NoError(t, r.Close())

	out := mustRun(t, "workout", "from", id[:8])
	assert.Contains(t, out, "Started Pull Day with 3 sets")
	assert.NotContains(t, mustRun(t, "workout", "show"), "[✓]")

	out = mustRun(t, "workout", "get", id[:8])
	assert.Contains(t, out, "Pull Day")

	mustRun(t, "workout", "delete", id[:8])
	assert.Contains(t, mustRun(t, "workout", "list"), "No workouts found")
}

func TestExerciseCommands(t *testing.T) {
	setupTestCLI(t, stubGenerator{})

	out := mustRun(t, "exercise", "list", "--category", "cardio")
	assert.Contains(t, out, "running")
	assert.NotContains(t, out, "squat")

	_, err := run(t, "", "exercise", "list", "--category", "nope")
	assert.Error(t, err)

	out = mustRun(t, "exercise", "add", "Sled Push", "--category", "legs", "-m", "quads")
	assert.Contains(t, out, "Added Sled Push")
	assert.Contains(t, mustRun(t, "exercise", "list"), "Sled Push")

	_, err = run(t, "", "exercise", "rm", "squat")
	assert.ErrorIs(t, err, storage.ErrBuiltinExercise)

	out = mustRun(t, "exercise", "edit", "squat", "--equipment", "safety bar")
	assert.Contains(t, out, "Updated Back Squat")
	assert.Contains(t, mustRun(t, "exercise", "show", "squat"), "Equipment: safety bar")
}

func TestExerciseAddRequiresCategory(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	_, err := run(t, "", "exercise", "add", "Mystery")
	assert.Error(t, err)
}

func TestProfileSetAndShow(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	mustRun(t, "profile", "set", "--level", "advanced", "--goal", "power", "--goal", "speed", "--minutes", "60")

	out := mustRun(t, "profile")
	assert.Contains(t, out, "advanced")
	assert.Contains(t, out, "power, speed")
	assert.Contains(t, out, "60 min")

	_, err := run(t, "", "profile", "set", "--level", "elite")
	assert.Error(t, err)
}

func TestSettingsBackendWritesConfig(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	out := mustRun(t, "settings", "backend", "badger")
	assert.Contains(t, out, "Backend set to badger")

	c, err := config.LoadFile()
	require.NoError(t, err)
	assert.Equal(t, config.BackendBadger, c.Backend)

	_, err = run(t, "", "settings", "backend", "floppy")
	assert.Error(t, err)
}

func TestExportImportRoundTrip(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	mustRun(t, "workout", "start", "Export Me")
	mustRun(t, "workout", "add", "squat", "-s", "1", "-r", "5", "-w", "80")
	mustRun(t, "set", "done-all")
	mustRun(t, "workout", "finish")

	file := filepath.Join(t.TempDir(), "backup.json")
	out := mustRun(t, "export", "json", "-o", file)
	assert.Contains(t, out, "Exported to")

	md := mustRun(t, "export", "markdown")
	assert.Contains(t, md, "Export Me")

	mustRun(t, "reset", "--yes")
	assert.Contains(t, mustRun(t, "workout", "list"), "No workouts found")

	out = mustRun(t, "import", file)
	assert.Contains(t, out, "Imported 1 workouts")
	assert.Contains(t, mustRun(t, "workout", "list"), "Export Me")
}

func TestExportUnknownFormat(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	_, err := run(t, "", "export", "csv")
	assert.Error(t, err)
}

func TestWorkoutPlanFromAI(t *testing.T) {
	plan := `Here you go:
{"workout": {"name": "Quick Legs", "exercises": [
  {"id": "goblet-squat", "name": "Goblet Squat", "category": "legs", "muscleGroups": ["quads"]}
], "sets": [
  {"exerciseId": "goblet-squat", "reps": 12, "weight": 16}
]}}`
	dataDir := setupTestCLI(t, stubGenerator{reply: plan})

	out := mustRun(t, "workout", "plan", "--minutes", "20")
	assert.Contains(t, out, "Started Quick Legs")
	assert.Contains(t, out, "Goblet Squat")

	r := openTestRepo(t, dataDir)
	ex, err := r.GetExercise("goblet-squat")
	require.NoError(t, err)
	assert.Equal(t, "Goblet Squat", ex.Name)
}

func TestWorkoutPlanFallback(t *testing.T) {
	setupTestCLI(t, stubGenerator{err: ai.ErrNoAPIKey})
	out := mustRun(t, "workout", "plan", "--dry-run")
	assert.Contains(t, out, "using the sample workout")
	assert.Contains(t, mustRun(t, "workout", "show"), "No workout in progress")
}

func TestRecommendCachesResult(t *testing.T) {
	reply := `{"recommendations": [{"type": "rest", "title": "Take a rest day", "description": "You trained hard.", "reasoning": "Three days in a row.", "confidence": 0.8, "priority": "high"}]}`
	setupTestCLI(t, stubGenerator{reply: reply})

	out := mustRun(t, "recommend")
	assert.Contains(t, out, "Take a rest day")
	assert.Contains(t, out, "80%")

	newGenerator = func(*config.Config) ai.Generator { return stubGenerator{err: errors.New("should not be called")} }
	out = mustRun(t, "recommend")
	assert.Contains(t, out, "Take a rest day")
	assert.NotContains(t, out, "unavailable")
}

func TestRecommendFallback(t *testing.T) {
	setupTestCLI(t, stubGenerator{err: errors.New("offline")})
	out := mustRun(t, "recommend", "--refresh")
	assert.Contains(t, out, "AI service unavailable")
	for _, r := range ai.MockRecommendations() {
		assert.Contains(t, out, r.Title)
	}
}

func TestSuggestSave(t *testing.T) {
	reply := `{"exercises": [{"name": "Farmer Carry", "category": "full-body", "muscleGroups": ["grip"]}]}`
	dataDir := setupTestCLI(t, stubGenerator{reply: reply})

	out := mustRun(t, "suggest", "--save")
	assert.Contains(t, out, "Farmer Carry")
	assert.Contains(t, out, "Added 1 exercises")

	r := openTestRepo(t, dataDir)
	_, err := r.GetExercise("farmer-carry")
	assert.NoError(t, err)
}

func TestChat(t *testing.T) {
	setupTestCLI(t, stubGenerator{reply: "  Keep your chest up.  "})
	out := mustRun(t, "chat", "squat", "tips?")
	assert.Equal(t, "Keep your chest up.\n", out)
}

func TestChatFallback(t *testing.T) {
	setupTestCLI(t, stubGenerator{err: errors.New("offline")})
	out := mustRun(t, "chat", "hello")
	assert.Contains(t, out, ai.ChatApology)
}

func TestChatInteractive(t *testing.T) {
	setupTestCLI(t, stubGenerator{reply: "Drink water."})
	out, err := run(t, "what should I drink?\nexit\n", "chat")
	require.NoError(t, err)
	assert.Contains(t, out, ai.Greeting)
	assert.Equal(t, 1, strings.Count(out, "Drink water."))
}

func TestMigrateSQLiteToBadger(t *testing.T) {
	dataDir := setupTestCLI(t, stubGenerator{})
	mustRun(t, "workout", "start", "Move Me")
	mustRun(t, "workout", "add", "squat", "-s", "1")
	mustRun(t, "set", "done-all")
	mustRun(t, "workout", "finish")

	out := mustRun(t, "migrate", "--to", "badger")
	assert.Contains(t, out, "Migrated sqlite → badger")
	assert.Contains(t, out, "Workouts:  1")

	_, err := run(t, "", "migrate", "--to", "badger")
	assert.Error(t, err, "non-empty target without --force")

	store, err := kv.OpenBadger(filepath.Join(dataDir, "badger"))
	require.NoError(t, err)
	r, err := storage.New(store)
	require.NoError(t, err)
	defer r.Close()
	workouts, err := r.ListWorkouts()
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, "Move Me", workouts[0].Name)
}

func TestMigrateSameBackend(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	_, err := run(t, "", "migrate", "--to", "sqlite")
	assert.Error(t, err)
}

func TestHasData(t *testing.T) {
	dir := t.TempDir()
	got, err := hasData(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, got)

	got, err = hasData(dir)
	require.NoError(t, err)
	assert.False(t, got)

	file := filepath.Join(dir, "trainer.db")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))
	got, err = hasData(file)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = hasData(dir)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestSyncStatusLocalBackend(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	out := mustRun(t, "sync", "status")
	assert.Contains(t, out, "Sync is off")
}

func TestInvalidBackendFlag(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	_, err := run(t, "", "--backend", "floppy", "workout", "list")
	assert.Error(t, err)
}

func TestFormatPerformance(t *testing.T) {
	w := 50.0
	d := 5.0
	secs := 1500
	assert.Equal(t, "8 × 50 kg", formatPerformance(models.Performance{Reps: 8, Weight: &w}, models.CategoryChest, models.UnitKG))
	assert.Equal(t, "5 km  25:00", formatPerformance(models.Performance{Distance: &d, Duration: &secs}, models.CategoryCardio, models.UnitKG))
	assert.Equal(t, "-", formatPerformance(models.Performance{}, models.CategoryCardio, models.UnitKG))
}

func TestConfiguredTrainer(t *testing.T) {
	cfg = &config.Config{}
	t.Cleanup(func() { cfg = nil })
	assert.Nil(t, configuredTrainer())

	cfg.AI.APIKey = "k"
	assert.NotNil(t, configuredTrainer())
}

func TestDashboardEmpty(t *testing.T) {
	setupTestCLI(t, stubGenerator{})
	out := mustRun(t, "dashboard")
	assert.Contains(t, out, "Workouts:          0")
	assert.Contains(t, out, "0 / 3")
}
