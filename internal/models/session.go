// ABOUTME: Persisted state of the single in-progress workout and its timer.
// ABOUTME: Owned by the session controller; saved explicitly after each change.
package models

import (
	"fmt"
	"time"
)

// Session is the current workout plus timer bookkeeping.
type Session struct {
	Current       *Workout   `json:"current,omitempty"`
	Active        bool       `json:"active"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	PausedSeconds int        `json:"pausedSeconds"`
}

// Elapsed returns whole seconds on the timer at now.
func (s *Session) Elapsed(now time.Time) int {
	elapsed := s.PausedSeconds
	if s.Active && s.StartedAt != nil {
		elapsed += int(now.Sub(*s.StartedAt) / time.Second)
	}
	return elapsed
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
