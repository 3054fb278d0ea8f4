package domain

import "time"

// Participant is the aggregated profile of one account. Rows are created
// lazily, on the account's first interaction (naming, lending or borrowing),
// and the serial ID doubles as roster/registration order.
type Participant struct {
	ID            int64     `json:"id"`
	Account       string    `json:"account"`
	DisplayName   string    `json:"display_name,omitempty"`
	Email         string    `json:"email,omitempty"`
	BooksLent     int64     `json:"books_lent"`
	BooksBorrowed int64     `json:"books_borrowed"`
	EarnedCents   int64     `json:"earned_cents"`
	RewardBalance int64     `json:"reward_balance"`
	RegisteredOn  time.Time `json:"registered_on"`
}
