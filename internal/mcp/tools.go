// ABOUTME: MCP tool implementations for workouts, exercises, and progress.
// ABOUTME: Read-mostly access; writes are limited to deletes and custom exercises.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/trainer/internal/models"
	"github.com/harperreed/trainer/internal/progress"
)

const defaultListLimit = 20

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List recent workouts, newest first",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get a workout with its exercises and sets",
	}, s.handleGetWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout by ID or ID prefix",
	}, s.handleDeleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List the exercise catalog, optionally filtered by category",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add a custom exercise to the catalog",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progress",
		Description: "Personal bests and latest session per exercise",
	}, s.handleGetProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Workout totals for a week, month, or all time",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "current_workout",
		Description: "The in-progress workout session, if any",
	}, s.handleCurrentWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_recommendations",
		Description: "AI training recommendations, cached until refreshed",
	}, s.handleGetRecommendations)
}

// Tool input/output types

type listWorkoutsInput struct {
	Limit         int  `json:"limit,omitempty" jsonschema:"max results (default 20)"`
	CompletedOnly bool `json:"completed_only,omitempty" jsonschema:"only finished workouts"`
}

type idInput struct {
	ID string `json:"id" jsonschema:"workout ID or prefix"`
}

type listExercisesInput struct {
	Category string `json:"category,omitempty" jsonschema:"filter by category (chest, back, legs, cardio, ...)"`
}

type addExerciseInput struct {
	Name         string   `json:"name" jsonschema:"exercise name"`
	Category     string   `json:"category" jsonschema:"one of chest, back, shoulders, arms, legs, core, cardio, full-body, upper-body, lower-body"`
	MuscleGroups []string `json:"muscle_groups,omitempty" jsonschema:"muscles worked"`
	Equipment    string   `json:"equipment,omitempty" jsonschema:"equipment needed"`
	Instructions string   `json:"instructions,omitempty" jsonschema:"form instructions"`
}

type getProgressInput struct {
	Category   string `json:"category,omitempty" jsonschema:"filter by exercise category"`
	ExerciseID string `json:"exercise_id,omitempty" jsonschema:"single exercise ID"`
}

type getStatsInput struct {
	Period string `json:"period,omitempty" jsonschema:"week, month, or all (default all)"`
}

type emptyInput struct{}

type getRecommendationsInput struct {
	Refresh bool `json:"refresh,omitempty" jsonschema:"generate a fresh set instead of using the cache"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type exerciseOutput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Tool handlers

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = defaultListLimit
	}

	workouts, err := s.repo.ListWorkouts()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	if input.CompletedOnly {
		workouts = progress.Completed(workouts)
	}
	if len(workouts) == 0 {
		return nil, simpleOutput{Message: "No workouts found."}, nil
	}

	return nil, map[string]any{
		"count":    len(workouts),
		"workouts": progress.Recent(workouts, input.Limit),
	}, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, any, error) {
	w, err := s.repo.GetWorkout(input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get workout: %w", err)
	}
	return nil, w, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteWorkout(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted workout: %s", input.ID)}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, any, error) {
	if input.Category != "" && !models.IsValidCategory(input.Category) {
		return nil, nil, fmt.Errorf("unknown category: %s", input.Category)
	}

	exercises, err := s.repo.ListExercises()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	out := make([]models.Exercise, 0, len(exercises))
	for _, e := range exercises {
		if input.Category == "" || string(e.Category) == input.Category {
			out = append(out, e)
		}
	}
	return nil, map[string]any{"count": len(out), "exercises": out}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	if input.Name == "" {
		return nil, exerciseOutput{}, errors.New("name is required")
	}
	if !models.IsValidCategory(input.Category) {
		return nil, exerciseOutput{}, fmt.Errorf("unknown category: %s", input.Category)
	}

	e := models.NewCustomExercise(input.Name, models.Category(input.Category))
	if len(input.MuscleGroups) > 0 {
		e.WithMuscleGroups(input.MuscleGroups...)
	}
	if input.Equipment != "" {
		e.Equipment = input.Equipment
	}
	if input.Instructions != "" {
		e.Instructions = input.Instructions
	}

	if err := s.repo.SaveExercise(e); err != nil {
		return nil, exerciseOutput{}, fmt.Errorf("failed to save exercise: %w", err)
	}

	return nil, exerciseOutput{
		ID:       e.ID,
		Name:     e.Name,
		Category: string(e.Category),
		Message:  fmt.Sprintf("Added exercise %s (ID: %s)", e.Name, e.ID),
	}, nil
}

func (s *Server) handleGetProgress(ctx context.Context, req *mcp.CallToolRequest, input getProgressInput) (*mcp.CallToolResult, any, error) {
	records, err := s.repo.Progress()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute progress: %w", err)
	}

	if input.ExerciseID != "" {
		p, ok := progress.Find(records, input.ExerciseID)
		if !ok {
			return nil, simpleOutput{Message: fmt.Sprintf("No completed sets for %s yet.", input.ExerciseID)}, nil
		}
		return nil, p, nil
	}
	if input.Category != "" {
		records = progress.FilterByCategory(records, models.Category(input.Category))
	}
	if len(records) == 0 {
		return nil, simpleOutput{Message: "No progress recorded yet."}, nil
	}
	return nil, map[string]any{"count": len(records), "progress": records}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input getStatsInput) (*mcp.CallToolResult, any, error) {
	period, err := progress.ParsePeriod(input.Period)
	if err != nil {
		return nil, nil, err
	}
	stats, err := s.repo.Stats(period, s.now())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return nil, stats, nil
}

func (s *Server) handleCurrentWorkout(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	sess, err := s.repo.LoadSession()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}
	if sess.Current == nil {
		return nil, simpleOutput{Message: "No workout in progress."}, nil
	}
	return nil, map[string]any{
		"workout":         sess.Current,
		"active":          sess.Active,
		"elapsed_seconds": sess.Elapsed(s.now()),
	}, nil
}

func (s *Server) handleGetRecommendations(ctx context.Context, req *mcp.CallToolRequest, input getRecommendationsInput) (*mcp.CallToolResult, any, error) {
	if s.trainer == nil {
		set, err := s.repo.CachedRecommendations()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load recommendations: %w", err)
		}
		if set == nil {
			return nil, simpleOutput{Message: "No recommendations cached. Run `trainer recommend --refresh`."}, nil
		}
		return nil, set, nil
	}

	set, err := s.trainer.CachedOrRefresh(ctx, s.repo, input.Refresh)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get recommendations: %w", err)
	}
	return nil, set, nil
}
