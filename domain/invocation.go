package domain

import (
	"time"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

// Invocation is one journaled command execution.
// It is an audit trail only; group state always comes from the platform.
type Invocation struct {
	ID      uuid.UUID
	GuildID uint64
	UserID  uint64
	Command string
	Outcome Outcome
	Detail  string
	Groups  int
	Members int
	At      time.Time
}
