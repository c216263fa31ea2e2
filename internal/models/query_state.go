package models

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the lifecycle position of a lookup query.
type Phase string

// Query phase constants
const (
	PhaseIdle     Phase = "idle"
	PhasePending  Phase = "pending"
	PhaseFound    Phase = "found"
	PhaseNotFound Phase = "not_found"
)

// QueryState is the outcome of one widget interaction. A new value replaces
// the previous one on every submission or reset.
type QueryState struct {
	ID          uuid.UUID        `json:"id"`
	Input       string           `json:"input"`
	Phase       Phase            `json:"phase"`
	Result      *NutritionRecord `json:"result,omitempty"`
	Error       string           `json:"error,omitempty"`
	SubmittedAt *time.Time       `json:"submitted_at,omitempty"`
	ResolvedAt  *time.Time       `json:"resolved_at,omitempty"`
}

// IdleState returns the initial empty state.
func IdleState() QueryState {
	return QueryState{Phase: PhaseIdle}
}

// IsIdle reports whether no query has been submitted since the last reset.
func (s QueryState) IsIdle() bool { return s.Phase == PhaseIdle }

// IsPending reports whether the query is waiting on the simulated delay.
func (s QueryState) IsPending() bool { return s.Phase == PhasePending }

// IsFound reports whether the query resolved to a record.
func (s QueryState) IsFound() bool { return s.Phase == PhaseFound }

// IsNotFound reports whether the query resolved without a match.
func (s QueryState) IsNotFound() bool { return s.Phase == PhaseNotFound }

// IsResolved reports whether the query has a final outcome.
func (s QueryState) IsResolved() bool {
	return s.Phase == PhaseFound || s.Phase == PhaseNotFound
}
