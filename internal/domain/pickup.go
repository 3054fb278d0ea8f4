package domain

import "time"

// PickupPoint is an admin-curated handoff location. Removal disables the
// point instead of deleting it, so listing history and accumulated reward
// earnings survive.
type PickupPoint struct {
	Name        string    `json:"name"`
	Enabled     bool      `json:"enabled"`
	EarnedCents int64     `json:"earned_cents"`
	CreatedOn   time.Time `json:"created_on"`
}
