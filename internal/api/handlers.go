// ABOUTME: JSON handlers for workouts, exercises, progress, and session state.
// ABOUTME: Storage sentinels map to 404 and 409; bad query values to 400.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/harperreed/trainer/internal/models"
	"github.com/harperreed/trainer/internal/progress"
	"github.com/harperreed/trainer/internal/storage"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := s.repo.ListWorkouts()
	if err != nil {
		writeError(w, err)
		return
	}
	if r.URL.Query().Get("completed") == "true" {
		workouts = progress.Completed(workouts)
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
			return
		}
		workouts = progress.Recent(workouts, n)
	}
	if workouts == nil {
		workouts = []models.Workout{}
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	workout, err := s.repo.GetWorkout(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.DeleteWorkout(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category != "" && !models.IsValidCategory(category) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category: " + category})
		return
	}
	exercises, err := s.repo.ListExercises()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]models.Exercise, 0, len(exercises))
	for _, e := range exercises {
		if category == "" || string(e.Category) == category {
			out = append(out, e)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	records, err := s.repo.Progress()
	if err != nil {
		writeError(w, err)
		return
	}
	if category := r.URL.Query().Get("category"); category != "" {
		records = progress.FilterByCategory(records, models.Category(category))
	}
	if records == nil {
		records = []models.Progress{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := s.repo.Dashboard(s.now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	period, err := progress.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	stats, err := s.repo.Stats(period, s.now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	refresh := r.URL.Query().Get("refresh") == "true"

	var (
		set *models.RecommendationSet
		err error
	)
	if s.trainer != nil {
		set, err = s.trainer.CachedOrRefresh(r.Context(), s.repo, refresh)
	} else {
		set, err = s.repo.CachedRecommendations()
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if set == nil {
		set = &models.RecommendationSet{Items: []models.Recommendation{}}
	}
	writeJSON(w, http.StatusOK, set)
}

type sessionResponse struct {
	*models.Session
	ElapsedSeconds int    `json:"elapsedSeconds"`
	Clock          string `json:"clock"`
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.repo.LoadSession()
	if err != nil {
		writeError(w, err)
		return
	}
	elapsed := sess.Elapsed(s.now())
	writeJSON(w, http.StatusOK, sessionResponse{
		Session:        sess,
		ElapsedSeconds: elapsed,
		Clock:          models.FormatClock(elapsed),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("write response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrAmbiguous):
		status = http.StatusConflict
	default:
		log.Error().Err(err).Msg("api request failed")
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
