package service

import (
	"time"

	"booklend-backend/internal/domain"
)

// Penalty rates, in percent. The late fee accrues per started day overdue;
// the damage fee is a flat share of the deposit, split between the lender
// and the protocol treasury.
const (
	lateFeePercentPerDay = 5
	damagePercent        = 50
	lenderDamageShare    = 60
)

// settlementBill is the deterministic outcome of settling one loan, computed
// purely from the deposit, the deadline, the current time and the reported
// condition. All fees come out of the deposit; the refund never goes
// negative.
type settlementBill struct {
	DaysLate         int64
	LateFeeCents     int64
	DamageCents      int64
	LenderCutCents   int64
	ProtocolFeeCents int64
	RefundCents      int64
}

// daysLate counts started days past the deadline. A partial day counts as a
// full one.
func daysLate(due, now time.Time) int64 {
	if !now.After(due) {
		return 0
	}
	return int64(now.Sub(due)/(24*time.Hour)) + 1
}

// lateFee is 5% of the deposit per started day late, capped at the deposit.
// The cap short-circuits at 20 days, which also keeps the multiplication
// from overflowing for absurd lateness values.
func lateFee(depositCents, days int64) int64 {
	if days <= 0 {
		return 0
	}
	if days >= 100/lateFeePercentPerDay {
		return depositCents
	}
	return depositCents * lateFeePercentPerDay * days / 100
}

func settleLoan(depositCents int64, due, now time.Time, condition domain.BookCondition) settlementBill {
	b := settlementBill{DaysLate: daysLate(due, now)}
	b.LateFeeCents = lateFee(depositCents, b.DaysLate)

	if condition == domain.BookConditionDamaged {
		b.DamageCents = depositCents * damagePercent / 100
		// Late and damage fees stack, but together never exceed the deposit.
		if remaining := depositCents - b.LateFeeCents; b.DamageCents > remaining {
			b.DamageCents = remaining
		}
		b.LenderCutCents = b.DamageCents * lenderDamageShare / 100
		b.ProtocolFeeCents = b.DamageCents - b.LenderCutCents
	}

	b.RefundCents = depositCents - b.LateFeeCents - b.DamageCents
	return b
}
