package types

import "time"

// Assumption is a statement an intent relies on, with an estimate of how
// likely it is to hold and what breaks if it does not. The assumptions table
// is part of the required schema; no CLI operation writes to it yet.
type Assumption struct {
	ID              string    `json:"id"`
	IntentID        string    `json:"intent_id"`
	Statement       string    `json:"statement"`
	Confidence      float64   `json:"confidence"`
	RiskIfFalse     string    `json:"risk_if_false"`
	CreatedAt       time.Time `json:"created_at"`
	LastValidatedAt time.Time `json:"last_validated_at"`
}
