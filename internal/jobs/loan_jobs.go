package jobs

import (
	"context"
	"errors"
	"time"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/logger"
)

// CompensateOverdueLoans sweeps every active overdue loan and pays the
// lender whatever late fee has accrued since the last sweep.
func (jr *JobRunner) CompensateOverdueLoans() {
	jr.runWithRecovery("compensate_overdue_loans", func() {
		ctx := context.Background()
		now := time.Now().UTC()

		overdue, err := jr.loans.ListOverdueActive(ctx, now)
		if err != nil {
			logger.Error("Failed to list overdue loans", "error", err)
			return
		}
		if len(overdue) == 0 {
			logger.Info("No overdue loans to compensate")
			return
		}

		var compensated int
		var totalCents int64
		for _, loan := range overdue {
			paid, err := jr.settlement.CompensateOverdue(ctx, loan.ID)
			if err != nil {
				if errors.Is(err, domain.ErrNotOverdue) || errors.Is(err, domain.ErrNotActive) {
					continue
				}
				logger.Error("Failed to compensate overdue loan", "loan_id", loan.ID, "error", err)
				continue
			}
			if paid > 0 {
				compensated++
				totalCents += paid
			}
		}

		logger.Info("Overdue compensation sweep completed",
			"overdue_loans", len(overdue),
			"compensated", compensated,
			"total_cents", totalCents)
	})
}

// SendOverdueReminders emails every borrower holding an overdue loan,
// provided the borrower has a contact email on file.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("send_overdue_reminders", func() {
		ctx := context.Background()
		now := time.Now().UTC()

		overdue, err := jr.loans.ListOverdueActive(ctx, now)
		if err != nil {
			logger.Error("Failed to list overdue loans", "error", err)
			return
		}

		var sent int
		for _, loan := range overdue {
			participant, err := jr.parts.GetByAccount(ctx, loan.BorrowerAccount)
			if err != nil {
				if !errors.Is(err, domain.ErrNotFound) {
					logger.Error("Failed to load borrower", "account", loan.BorrowerAccount, "error", err)
				}
				continue
			}
			if participant.Email == "" {
				continue
			}

			book, err := jr.books.GetByID(ctx, loan.BookID)
			if err != nil {
				logger.Error("Failed to load book for reminder", "book_id", loan.BookID, "error", err)
				continue
			}

			daysLate := int64(now.Sub(loan.DueOn).Hours()/24) + 1
			if err := jr.email.SendOverdueReminder(ctx, participant.Email, participant.DisplayName, book.Title, daysLate); err != nil {
				logger.Error("Failed to send overdue reminder", "account", loan.BorrowerAccount, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Overdue reminder sweep completed", "overdue_loans", len(overdue), "emails_sent", sent)
	})
}
