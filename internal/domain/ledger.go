package domain

import "time"

// System accounts. Custody holds deposits backing active loans; treasury
// accumulates protocol fees until the administrator withdraws them.
const (
	AccountCustody  = "custody"
	AccountTreasury = "treasury"
)

type EntryType string

const (
	EntryTypeDepositHold     EntryType = "DEPOSIT_HOLD"
	EntryTypeDepositRefund   EntryType = "DEPOSIT_REFUND"
	EntryTypeOverpayRefund   EntryType = "OVERPAY_REFUND"
	EntryTypeLateFee         EntryType = "LATE_FEE"
	EntryTypeDamageFee       EntryType = "DAMAGE_FEE"
	EntryTypeProtocolFee     EntryType = "PROTOCOL_FEE"
	EntryTypeAdminWithdrawal EntryType = "ADMIN_WITHDRAWAL"
	EntryTypeTopUp           EntryType = "TOP_UP"
)

type LedgerEntry struct {
	ID          int64     `json:"id"`
	Account     string    `json:"account"`
	AmountCents int64     `json:"amount_cents"` // positive for credit, negative for debit
	Type        EntryType `json:"type"`
	LoanID      *int64    `json:"loan_id,omitempty"`
	Description string    `json:"description"`
	CreatedOn   time.Time `json:"created_on"`
}

// Stats is the aggregate counters exposed on the read-only query surface.
type Stats struct {
	TotalBooks    int64 `json:"total_books"`
	TotalLoans    int64 `json:"total_loans"`
	CustodyCents  int64 `json:"custody_cents"`
	TreasuryCents int64 `json:"treasury_cents"`
}
