package domain

import "time"

type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "ACTIVE"
	LoanStatusReturned LoanStatus = "RETURNED"
	LoanStatusLate     LoanStatus = "LATE"
	// LoanStatusDisputed is reserved. No transition currently reaches it.
	LoanStatusDisputed LoanStatus = "DISPUTED"
)

type Loan struct {
	ID              int64      `json:"id"`
	BookID          int64      `json:"book_id"`
	BorrowerAccount string     `json:"borrower_account"`
	// DepositCents is the deposit actually held, snapshotted from the book
	// at borrow time. Any overpayment is refunded immediately.
	DepositCents    int64         `json:"deposit_cents"`
	BorrowedOn      time.Time     `json:"borrowed_on"`
	DueOn           time.Time     `json:"due_on"`
	Status          LoanStatus    `json:"status"`
	ReturnCondition BookCondition `json:"return_condition,omitempty"`
	ReturnedOn      *time.Time    `json:"returned_on,omitempty"`
	// LateFeePaidCents is the overdue compensation already paid out to the
	// lender for this loan. Cumulative payouts never exceed DepositCents.
	LateFeePaidCents int64 `json:"late_fee_paid_cents"`
}

// SettlementResult summarizes the outcome of a loan return.
type SettlementResult struct {
	LoanID            int64      `json:"loan_id"`
	Status            LoanStatus `json:"status"`
	DaysLate          int64      `json:"days_late"`
	LateFeeCents      int64      `json:"late_fee_cents"`
	DamageCents       int64      `json:"damage_cents"`
	RefundCents       int64      `json:"refund_cents"`
	LenderEarnedCents int64      `json:"lender_earned_cents"`
}
