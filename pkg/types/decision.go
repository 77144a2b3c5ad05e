package types

import "time"

// Decision records the outcome of an intent: what was decided, why, and what
// was given up. The decisions table is part of the required schema; no CLI
// operation writes to it yet.
type Decision struct {
	ID           string    `json:"id"`
	IntentID     string    `json:"intent_id"`
	Summary      string    `json:"summary"`
	Rationale    string    `json:"rationale"`
	Alternatives string    `json:"alternatives"`
	Tradeoffs    string    `json:"tradeoffs"`
	CreatedAt    time.Time `json:"created_at"`
}
