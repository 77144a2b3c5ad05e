package types

import "time"

// Intent statuses. Creation always produces StatusDraft; no operation
// transitions an intent out of it.
const (
	StatusDraft = "draft"
)

// FullIDLength is the length of an intent id in its canonical textual form
// (a UUID). Shorter strings are treated as prefixes during resolution.
const FullIDLength = 36

// Intent is a recorded design decision: the problem it addresses, the
// context it was made in, and the constraints it operates under.
type Intent struct {
	ID          string    `json:"id"`          // UUID, generated on creation, immutable.
	Title       string    `json:"title"`       // Required, non-empty.
	Problem     string    `json:"problem"`     // Free text, may span lines.
	Context     string    `json:"context"`     // Free text, may span lines.
	Constraints string    `json:"constraints"` // Free text, may span lines.
	Status      string    `json:"status"`      // StatusDraft on creation.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"` // Equal to CreatedAt on creation.
}

// Validate checks the fields a caller must supply before creation.
// Generated fields (id, status, timestamps) are the store's responsibility.
func (i *Intent) Validate() error {
	if i.Title == "" {
		return ErrTitleRequired
	}
	return nil
}
