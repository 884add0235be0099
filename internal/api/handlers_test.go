// ABOUTME: Tests for the HTTP API routes.
// ABOUTME: Exercises the full router with httptest against an in-memory repository.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/trainer/internal/ai"
	"github.com/harperreed/trainer/internal/kv"
	"github.com/harperreed/trainer/internal/models"
	"github.com/harperreed/trainer/internal/progress"
	"github.com/harperreed/trainer/internal/storage"
)

var fixedNow = time.Date(2026, 3, 12, 18, 0, 0, 0, time.UTC)

func setupServer(t *testing.T, trainer *ai.Trainer) (*Server, *storage.Repository) {
	t.Helper()
	return setupServerWithKey(t, trainer, "")
}

func setupServerWithKey(t *testing.T, trainer *ai.Trainer, apiKey string) (*Server, *storage.Repository) {
	t.Helper()
	store, err := kv.OpenBadgerInMemory()
	require.NoError(t, err)
	repo, err := storage.New(store)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	s := New(repo, trainer, apiKey)
	s.now = func() time.Time { return fixedNow }
	return s, repo
}

func saveWorkout(t *testing.T, repo *storage.Repository, id string, date time.Time, completed bool) {
	t.Helper()
	w := models.NewWorkout("Workout " + id).WithDate(date).WithDuration(30)
	w.ID = id
	set := models.NewStrengthSet("squat", 5, 100)
	set.Completed = completed
	w.Sets = []models.WorkoutSet{set}
	w.Completed = completed
	require.NoError(t, repo.SaveWorkout(w))
}

func do(t *testing.T, s *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

type stubGen struct{ reply string }

func (g stubGen) Generate(context.Context, string) (string, error) { return g.reply, nil }

func TestHealth(t *testing.T) {
	s, _ := setupServer(t, nil)
	rec := do(t, s, http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestListWorkouts(t *testing.T) {
	s, repo := setupServer(t, nil)

	rec := do(t, s, http.MethodGet, "/api/workouts")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]models.Workout](t, rec))

	saveWorkout(t, repo, "one", fixedNow.AddDate(0, 0, -2), true)
	saveWorkout(t, repo, "two", fixedNow.AddDate(0, 0, -1), true)
	saveWorkout(t, repo, "draft", fixedNow, false)

	all := decode[[]models.Workout](t, do(t, s, http.MethodGet, "/api/workouts"))
	assert.Len(t, all, 3)

	recent := decode[[]models.Workout](t, do(t, s, http.MethodGet, "/api/workouts?completed=true&limit=1"))
	require.Len(t, recent, 1)
	assert.Equal(t, "two", recent[0].ID)

	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/workouts?limit=zero").Code)
}

func TestGetAndDeleteWorkout(t *testing.T) {
	s, repo := setupServer(t, nil)
	saveWorkout(t, repo, "alpha1", fixedNow, true)
	saveWorkout(t, repo, "alpha2", fixedNow, true)

	rec := do(t, s, http.MethodGet, "/api/workouts/alpha1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alpha1", decode[models.Workout](t, rec).ID)

	assert.Equal(t, http.StatusConflict, do(t, s, http.MethodGet, "/api/workouts/alp").Code)
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/api/workouts/zzz").Code)

	assert.Equal(t, http.StatusNoContent, do(t, s, http.MethodDelete, "/api/workouts/alpha2").Code)
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/api/workouts/alpha2").Code)
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodDelete, "/api/workouts/alpha2").Code)
}

func TestListExercises(t *testing.T) {
	s, _ := setupServer(t, nil)

	all := decode[[]models.Exercise](t, do(t, s, http.MethodGet, "/api/exercises"))
	assert.Len(t, all, len(storage.DefaultExercises()))

	legs := decode[[]models.Exercise](t, do(t, s, http.MethodGet, "/api/exercises?category=legs"))
	require.Len(t, legs, 1)
	assert.Equal(t, "squat", legs[0].ID)

	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/exercises?category=toes").Code)
}

func TestProgressAndStats(t *testing.T) {
	s, repo := setupServer(t, nil)
	saveWorkout(t, repo, "a", fixedNow.AddDate(0, 0, -10), true)
	saveWorkout(t, repo, "b", fixedNow.AddDate(0, 0, -1), true)

	records := decode[[]models.Progress](t, do(t, s, http.MethodGet, "/api/progress"))
	require.Len(t, records, 1)
	assert.Equal(t, "squat", records[0].ExerciseID)

	chest := decode[[]models.Progress](t, do(t, s, http.MethodGet, "/api/progress?category=chest"))
	assert.Empty(t, chest)

	week := decode[progress.Stats](t, do(t, s, http.MethodGet, "/api/stats?period=week"))
	assert.Equal(t, 1, week.TotalWorkouts)
	assert.Equal(t, 30, week.TotalDuration)

	all := decode[progress.Stats](t, do(t, s, http.MethodGet, "/api/stats"))
	assert.Equal(t, progress.PeriodAll, all.Period)
	assert.Equal(t, 2, all.TotalWorkouts)

	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/stats?period=year").Code)

	dash := decode[progress.Dashboard](t, do(t, s, http.MethodGet, "/api/dashboard"))
	assert.Equal(t, 2, dash.TotalWorkouts)
	assert.Equal(t, 30, dash.AverageDuration)
}

func TestRecommendations(t *testing.T) {
	s, _ := setupServer(t, nil)
	set := decode[models.RecommendationSet](t, do(t, s, http.MethodGet, "/api/recommendations"))
	assert.Empty(t, set.Items)

	gen := stubGen{reply: `{"recommendations":[{"type":"progression","exerciseId":"squat","title":"Add 5kg","confidence":0.8,"priority":"high"}]}`}
	s, repo := setupServer(t, ai.NewTrainer(gen))
	set = decode[models.RecommendationSet](t, do(t, s, http.MethodGet, "/api/recommendations?refresh=true"))
	require.Len(t, set.Items, 1)
	assert.Equal(t, "Add 5kg", set.Items[0].Title)
	assert.False(t, set.Fallback)

	cached, err := repo.CachedRecommendations()
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "squat", cached.Items[0].ExerciseID)
}

func TestSession(t *testing.T) {
	s, repo := setupServer(t, nil)

	var empty map[string]any
	rec := do(t, s, http.MethodGet, "/api/session")
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&empty))
	assert.Equal(t, "00:00", empty["clock"])
	assert.NotContains(t, empty, "current")

	started := fixedNow.Add(-65 * time.Second)
	require.NoError(t, repo.SaveSession(&models.Session{
		Current:   models.NewWorkout("Pull"),
		Active:    true,
		StartedAt: &started,
	}))

	var got map[string]any
	rec = do(t, s, http.MethodGet, "/api/session")
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "01:05", got["clock"])
	assert.Equal(t, float64(65), got["elapsedSeconds"])
	assert.Equal(t, true, got["active"])
	assert.Equal(t, "Pull", got["current"].(map[string]any)["name"])
}

func TestCORSPreflight(t *testing.T) {
	s, _ := setupServer(t, nil)
	rec := do(t, s, http.MethodOptions, "/api/workouts")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSRefusesCrossOriginDeletePreflight(t *testing.T) {
	s, _ := setupServer(t, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/workouts/alpha", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotContains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestDeleteRefusesOtherOrigin(t *testing.T) {
	s, repo := setupServer(t, nil)
	saveWorkout(t, repo, "alpha", fixedNow, true)

	req := httptest.NewRequest(http.MethodDelete, "/api/workouts/alpha", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	_, err := repo.GetWorkout("alpha")
	assert.NoError(t, err)

	req = httptest.NewRequest(http.MethodDelete, "/api/workouts/alpha", nil)
	req.Header.Set("Origin", "http://"+req.Host)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteRequiresAPIKey(t *testing.T) {
	s, repo := setupServerWithKey(t, nil, "s3cret")
	saveWorkout(t, repo, "alpha", fixedNow, true)

	assert.Equal(t, http.StatusUnauthorized, do(t, s, http.MethodDelete, "/api/workouts/alpha").Code)

	req := httptest.NewRequest(http.MethodDelete, "/api/workouts/alpha", nil)
	req.Header.Set("X-API-Key", "wrong")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/workouts/alpha", nil)
	req.Header.Set("X-API-Key", "s3cret")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/api/workouts").Code)
}

func TestRunStopsOnCancel(t *testing.T) {
	s, _ := setupServer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
