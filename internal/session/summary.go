package session

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the result of the last finished session, shown on the result
// screen and used by retry.
type Outcome struct {
	GameID    int
	Success   bool
	SessionID uuid.UUID
	Duration  time.Duration
	At        time.Time
}

// BuildOutcome creates an Outcome for s resolved at now.
func BuildOutcome(s *Session, success bool, now time.Time) Outcome {
	return Outcome{
		GameID:    s.GameID,
		Success:   success,
		SessionID: s.ID,
		Duration:  now.Sub(s.StartedAt),
		At:        now,
	}
}
