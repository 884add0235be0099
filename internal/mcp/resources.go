// ABOUTME: MCP resource implementations for the trainer store.
// ABOUTME: Provides trainer://workouts/recent, trainer://progress, and trainer://current.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/trainer/internal/progress"
)

const (
	recentURI   = "trainer://workouts/recent"
	progressURI = "trainer://progress"
	currentURI  = "trainer://current"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentURI,
		Name:        "Recent Workouts",
		Description: "Last 5 completed workouts, newest first",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         progressURI,
		Name:        "Training Progress",
		Description: "Dashboard summary plus per-exercise progress",
		MIMEType:    "application/json",
	}, s.handleProgressResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         currentURI,
		Name:        "Current Workout",
		Description: "The in-progress workout session",
		MIMEType:    "application/json",
	}, s.handleCurrentResource)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, err := s.repo.ListCompletedWorkouts()
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return jsonResource(recentURI, map[string]any{
		"workouts": progress.Recent(workouts, progress.RecentLimit),
	})
}

func (s *Server) handleProgressResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	dash, err := s.repo.Dashboard(s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}
	records, err := s.repo.Progress()
	if err != nil {
		return nil, fmt.Errorf("failed to compute progress: %w", err)
	}
	return jsonResource(progressURI, map[string]any{
		"dashboard": dash,
		"progress":  records,
	})
}

func (s *Server) handleCurrentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sess, err := s.repo.LoadSession()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return jsonResource(currentURI, sess)
}
