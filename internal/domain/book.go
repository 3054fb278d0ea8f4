package domain

import "time"

type BookCondition string

const (
	BookConditionMint    BookCondition = "MINT"
	BookConditionGood    BookCondition = "GOOD"
	BookConditionFair    BookCondition = "FAIR"
	BookConditionDamaged BookCondition = "DAMAGED"
)

// ValidCondition reports whether c is one of the known condition values.
func ValidCondition(c BookCondition) bool {
	switch c {
	case BookConditionMint, BookConditionGood, BookConditionFair, BookConditionDamaged:
		return true
	}
	return false
}

// Loan duration bounds, in days.
const (
	MinLoanDays = 1
	MaxLoanDays = 90
)

type Book struct {
	ID           int64         `json:"id"`
	OwnerAccount string        `json:"owner_account"`
	Title        string        `json:"title"`
	Author       string        `json:"author"`
	CatalogNo    string        `json:"catalog_no"`
	// Condition is the condition set at listing time. It is intentionally
	// not refreshed from the condition reported at return; the per-loan
	// return condition lives on the Loan record.
	Condition    BookCondition `json:"condition"`
	DepositCents int64         `json:"deposit_cents"`
	DurationDays int32         `json:"duration_days"`
	PickupPoint  string        `json:"pickup_point"`
	Available    bool          `json:"available"`
	LendCount    int64         `json:"lend_count"`
	CreatedOn    time.Time     `json:"created_on"`
}
