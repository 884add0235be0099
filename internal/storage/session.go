// ABOUTME: Persistence for the in-progress workout session.
// ABOUTME: A single key holds the current workout and timer state.
package storage

import (
	"fmt"

	"github.com/harperreed/trainer/internal/models"
)

// LoadSession returns the saved session or an empty one.
func (r *Repository) LoadSession() (*models.Session, error) {
	var s models.Session
	if _, err := r.getJSON(sessionKey, &s); err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &s, nil
}

// SaveSession persists the session.
func (r *Repository) SaveSession(s *models.Session) error {
	if err := r.putJSON(sessionKey, s); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ClearSession removes any saved session.
func (r *Repository) ClearSession() error {
	if err := r.store.Delete(sessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
