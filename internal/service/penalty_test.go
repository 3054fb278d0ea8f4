package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"booklend-backend/internal/domain"
)

func TestDaysLate(t *testing.T) {
	due := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int64
	}{
		{"before deadline", due.Add(-time.Hour), 0},
		{"exactly at deadline", due, 0},
		{"one second over", due.Add(time.Second), 1},
		{"half a day over", due.Add(12 * time.Hour), 1},
		{"one and a half days over", due.Add(36 * time.Hour), 2},
		{"exactly two days over", due.Add(48 * time.Hour), 3},
		{"ten days over", due.Add(10*24*time.Hour + time.Minute), 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daysLate(due, tt.now))
		})
	}
}

func TestLateFee(t *testing.T) {
	tests := []struct {
		name    string
		deposit int64
		days    int64
		want    int64
	}{
		{"not late", 10000, 0, 0},
		{"one day", 10000, 1, 500},
		{"two days", 10000, 2, 1000},
		{"nineteen days", 10000, 19, 9500},
		{"twenty days caps at deposit", 10000, 20, 10000},
		{"way past the cap", 10000, 5000, 10000},
		{"huge lateness does not overflow", 1 << 50, 1 << 40, 1 << 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lateFee(tt.deposit, tt.days))
		})
	}
}

func TestSettleLoan(t *testing.T) {
	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("on time, good condition", func(t *testing.T) {
		b := settleLoan(10000, due, due.Add(-time.Hour), domain.BookConditionGood)
		assert.Equal(t, int64(0), b.DaysLate)
		assert.Equal(t, int64(0), b.LateFeeCents)
		assert.Equal(t, int64(0), b.DamageCents)
		assert.Equal(t, int64(10000), b.RefundCents)
	})

	t.Run("late, undamaged", func(t *testing.T) {
		b := settleLoan(10000, due, due.Add(36*time.Hour), domain.BookConditionGood)
		assert.Equal(t, int64(2), b.DaysLate)
		assert.Equal(t, int64(1000), b.LateFeeCents)
		assert.Equal(t, int64(0), b.DamageCents)
		assert.Equal(t, int64(9000), b.RefundCents)
	})

	t.Run("on time, damaged", func(t *testing.T) {
		b := settleLoan(10000, due, due.Add(-time.Hour), domain.BookConditionDamaged)
		assert.Equal(t, int64(5000), b.DamageCents)
		assert.Equal(t, int64(3000), b.LenderCutCents)
		assert.Equal(t, int64(2000), b.ProtocolFeeCents)
		assert.Equal(t, int64(5000), b.RefundCents)
	})

	t.Run("late and damaged", func(t *testing.T) {
		b := settleLoan(10000, due, due.Add(36*time.Hour), domain.BookConditionDamaged)
		assert.Equal(t, int64(1000), b.LateFeeCents)
		assert.Equal(t, int64(5000), b.DamageCents)
		assert.Equal(t, int64(4000), b.RefundCents)
	})

	t.Run("fees never exceed the deposit", func(t *testing.T) {
		// 12 days late eats 60% of the deposit, leaving only 40% for the
		// damage fee.
		b := settleLoan(10000, due, due.Add(12*24*time.Hour), domain.BookConditionDamaged)
		assert.Equal(t, int64(13), b.DaysLate)
		assert.Equal(t, int64(6500), b.LateFeeCents)
		assert.Equal(t, int64(3500), b.DamageCents)
		assert.Equal(t, int64(2100), b.LenderCutCents)
		assert.Equal(t, int64(1400), b.ProtocolFeeCents)
		assert.Equal(t, int64(0), b.RefundCents)
	})

	t.Run("fully consumed deposit", func(t *testing.T) {
		b := settleLoan(10000, due, due.Add(30*24*time.Hour), domain.BookConditionDamaged)
		assert.Equal(t, int64(10000), b.LateFeeCents)
		assert.Equal(t, int64(0), b.DamageCents)
		assert.Equal(t, int64(0), b.RefundCents)
	})
}
