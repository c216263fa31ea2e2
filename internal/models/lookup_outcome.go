package models

// Lookup outcome constants
const (
	OutcomeFound      = "found"
	OutcomeNotFound   = "not_found"
	OutcomeSuperseded = "superseded"
	OutcomeReset      = "reset"
)

// LookupCount represents a per-food hit count by outcome.
type LookupCount struct {
	Food    string
	Outcome string
	Count   int64
}
