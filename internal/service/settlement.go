package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/logger"
	"booklend-backend/internal/repository"
)

// RewardPolicy holds the fixed reward amounts distributed per successful
// return.
type RewardPolicy struct {
	LenderUnits      int64
	BorrowerUnits    int64
	PickupPointCents int64
}

type settlementService struct {
	tx      repository.Transactor
	books   repository.BookRepository
	loans   repository.LoanRepository
	parts   repository.ParticipantRepository
	ledger  repository.LedgerRepository
	pickups repository.PickupPointRepository
	notes   repository.NotificationRepository
	issuer  RewardIssuer
	rewards RewardPolicy
	now     func() time.Time

	// mu is the non-reentrant execution lock guarding every fund-moving
	// operation. Attempted re-entry while a settlement is in flight fails
	// immediately instead of interleaving. It only covers this process;
	// the server and the cron sweep serialize on FOR UPDATE row locks
	// taken inside each transaction.
	mu sync.Mutex
}

func NewSettlementService(
	tx repository.Transactor,
	bookRepo repository.BookRepository,
	loanRepo repository.LoanRepository,
	participantRepo repository.ParticipantRepository,
	ledgerRepo repository.LedgerRepository,
	pickupRepo repository.PickupPointRepository,
	noteRepo repository.NotificationRepository,
	issuer RewardIssuer,
	rewards RewardPolicy,
	clock func() time.Time,
) SettlementService {
	if clock == nil {
		clock = time.Now
	}
	return &settlementService{
		tx:      tx,
		books:   bookRepo,
		loans:   loanRepo,
		parts:   participantRepo,
		ledger:  ledgerRepo,
		pickups: pickupRepo,
		notes:   noteRepo,
		issuer:  issuer,
		rewards: rewards,
		now:     clock,
	}
}

// transfer records a matched debit/credit pair. A failure of either leg
// surfaces as ErrTransferFailure and, inside Transact, rolls back the whole
// settlement.
func (s *settlementService) transfer(ctx context.Context, from, to string, cents int64, typ domain.EntryType, loanID *int64, desc string) error {
	if cents <= 0 {
		return nil
	}
	debit := &domain.LedgerEntry{Account: from, AmountCents: -cents, Type: typ, LoanID: loanID, Description: desc}
	if err := s.ledger.Record(ctx, debit); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransferFailure, err)
	}
	credit := &domain.LedgerEntry{Account: to, AmountCents: cents, Type: typ, LoanID: loanID, Description: desc}
	if err := s.ledger.Record(ctx, credit); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransferFailure, err)
	}
	return nil
}

func (s *settlementService) Borrow(ctx context.Context, borrower string, bookID, paidCents int64) (int64, error) {
	if !s.mu.TryLock() {
		return 0, domain.ErrReentrantCall
	}
	defer s.mu.Unlock()

	var loanID int64
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		// The book row stays locked for the rest of the transaction so a
		// racing borrow cannot also see it as available.
		book, err := s.books.GetByIDForUpdate(ctx, bookID)
		if err != nil {
			return err
		}
		if !book.Available {
			return domain.ErrUnavailable
		}
		if book.OwnerAccount == borrower {
			return domain.ErrSelfBorrow
		}
		if paidCents < book.DepositCents {
			return domain.ErrInsufficientDeposit
		}

		balance, err := s.ledger.Balance(ctx, borrower)
		if err != nil {
			return err
		}
		if balance < paidCents {
			return domain.ErrInsufficientFunds
		}

		if err := s.books.MarkBorrowed(ctx, book.ID); err != nil {
			return err
		}
		if _, err := s.parts.EnsureRegistered(ctx, borrower); err != nil {
			return err
		}
		if err := s.parts.IncrementBorrowed(ctx, borrower); err != nil {
			return err
		}

		now := s.now()
		loan := &domain.Loan{
			BookID:          book.ID,
			BorrowerAccount: borrower,
			DepositCents:    book.DepositCents,
			BorrowedOn:      now,
			DueOn:           now.Add(time.Duration(book.DurationDays) * 24 * time.Hour),
			Status:          domain.LoanStatusActive,
		}
		if err := s.loans.Create(ctx, loan); err != nil {
			return err
		}
		loanID = loan.ID

		// All state is final before funds move. Custody takes exactly the
		// required deposit; the overpayment goes straight back.
		if err := s.transfer(ctx, borrower, domain.AccountCustody, paidCents, domain.EntryTypeDepositHold, &loan.ID, "deposit held"); err != nil {
			return err
		}
		if excess := paidCents - book.DepositCents; excess > 0 {
			if err := s.transfer(ctx, domain.AccountCustody, borrower, excess, domain.EntryTypeOverpayRefund, &loan.ID, "overpayment refunded"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("Loan opened", "loan_id", loanID, "book_id", bookID, "borrower", borrower)
	return loanID, nil
}

func (s *settlementService) Return(ctx context.Context, borrower string, loanID int64, condition domain.BookCondition) (*domain.SettlementResult, error) {
	if !domain.ValidCondition(condition) {
		return nil, fmt.Errorf("%w: unknown condition %q", domain.ErrInvalidArgument, condition)
	}
	if !s.mu.TryLock() {
		return nil, domain.ErrReentrantCall
	}
	defer s.mu.Unlock()

	var result *domain.SettlementResult
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		// The loan row stays locked for the rest of the transaction. The
		// overdue sweep runs in a separate process, and both settle against
		// late_fee_paid_cents; without the lock they could each read the
		// same snapshot and pay the accrued fee twice out of custody.
		loan, err := s.loans.GetByIDForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		if loan.BorrowerAccount != borrower {
			return domain.ErrNotBorrower
		}
		if loan.Status != domain.LoanStatusActive {
			return domain.ErrNotActive
		}

		book, err := s.books.GetByIDForUpdate(ctx, loan.BookID)
		if err != nil {
			return err
		}
		lender := book.OwnerAccount

		now := s.now()
		bill := settleLoan(loan.DepositCents, loan.DueOn, now, condition)

		// Overdue compensation already paid out counts toward the late-fee
		// cap; only the remainder changes hands now.
		lateFeeDue := bill.LateFeeCents - loan.LateFeePaidCents
		if lateFeeDue < 0 {
			lateFeeDue = 0
		}

		// Finalize loan and book state before any funds move.
		if bill.DaysLate > 0 {
			loan.Status = domain.LoanStatusLate
		} else {
			loan.Status = domain.LoanStatusReturned
		}
		loan.ReturnCondition = condition
		loan.ReturnedOn = &now
		loan.LateFeePaidCents += lateFeeDue
		if err := s.loans.Update(ctx, loan); err != nil {
			return err
		}
		if err := s.books.MarkReturned(ctx, book.ID); err != nil {
			return err
		}

		lenderEarned := lateFeeDue + bill.LenderCutCents
		if _, err := s.parts.EnsureRegistered(ctx, lender); err != nil {
			return err
		}
		if err := s.parts.IncrementLent(ctx, lender); err != nil {
			return err
		}
		if lenderEarned > 0 {
			if err := s.parts.AddEarnings(ctx, lender, lenderEarned); err != nil {
				return err
			}
		}

		if lateFeeDue > 0 {
			if err := s.transfer(ctx, domain.AccountCustody, lender, lateFeeDue, domain.EntryTypeLateFee, &loan.ID, "late fee"); err != nil {
				return err
			}
			if err := s.notifyLatePenalty(ctx, lender, loan, bill.DaysLate, lateFeeDue); err != nil {
				return err
			}
		}
		if bill.LenderCutCents > 0 {
			if err := s.transfer(ctx, domain.AccountCustody, lender, bill.LenderCutCents, domain.EntryTypeDamageFee, &loan.ID, "damage compensation"); err != nil {
				return err
			}
		}
		if bill.ProtocolFeeCents > 0 {
			if err := s.transfer(ctx, domain.AccountCustody, domain.AccountTreasury, bill.ProtocolFeeCents, domain.EntryTypeProtocolFee, &loan.ID, "damage protocol fee"); err != nil {
				return err
			}
		}
		if err := s.transfer(ctx, domain.AccountCustody, borrower, bill.RefundCents, domain.EntryTypeDepositRefund, &loan.ID, "deposit refunded"); err != nil {
			return err
		}

		// Rewards run only once the refund went through; a failure here
		// still rolls the whole settlement back.
		if err := s.distributeRewards(ctx, lender, borrower, book, bill.DaysLate > 0); err != nil {
			return err
		}

		result = &domain.SettlementResult{
			LoanID:            loan.ID,
			Status:            loan.Status,
			DaysLate:          bill.DaysLate,
			LateFeeCents:      bill.LateFeeCents,
			DamageCents:       bill.DamageCents,
			RefundCents:       bill.RefundCents,
			LenderEarnedCents: lenderEarned,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Loan settled",
		"loan_id", result.LoanID, "status", result.Status,
		"days_late", result.DaysLate, "refund_cents", result.RefundCents)
	return result, nil
}

func (s *settlementService) distributeRewards(ctx context.Context, lender, borrower string, book *domain.Book, late bool) error {
	if err := s.issuer.Mint(ctx, lender, s.rewards.LenderUnits, "lending reward"); err != nil {
		return err
	}
	// A late return forfeits the borrower reward entirely.
	if !late {
		if err := s.issuer.Mint(ctx, borrower, s.rewards.BorrowerUnits, "on-time return reward"); err != nil {
			return err
		}
	}
	if s.rewards.PickupPointCents > 0 {
		if err := s.pickups.AddEarnings(ctx, book.PickupPoint, s.rewards.PickupPointCents); err != nil {
			return err
		}
		note := &domain.Notification{
			Account: book.OwnerAccount,
			Title:   "Pickup point credited",
			Message: fmt.Sprintf("%s earned %d cents from a completed loan", book.PickupPoint, s.rewards.PickupPointCents),
			Attributes: map[string]string{
				"type":         "PICKUP_POINT_REWARD",
				"reason":       "pickup point reward",
				"pickup_point": book.PickupPoint,
			},
		}
		if err := s.notes.Create(ctx, note); err != nil {
			return err
		}
	}
	return nil
}

func (s *settlementService) notifyLatePenalty(ctx context.Context, lender string, loan *domain.Loan, daysLate, cents int64) error {
	note := &domain.Notification{
		Account: lender,
		Title:   "Late fee collected",
		Message: fmt.Sprintf("Loan %d was %d day(s) overdue; %d cents were paid out of the deposit", loan.ID, daysLate, cents),
		Attributes: map[string]string{
			"type":    "LATE_PENALTY",
			"loan_id": strconv.FormatInt(loan.ID, 10),
			"cents":   strconv.FormatInt(cents, 10),
		},
	}
	return s.notes.Create(ctx, note)
}

func (s *settlementService) CompensateOverdue(ctx context.Context, loanID int64) (int64, error) {
	if !s.mu.TryLock() {
		return 0, domain.ErrReentrantCall
	}
	defer s.mu.Unlock()

	var paid int64
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		// Same row lock as Return: the sweep and a concurrent return must
		// serialize on the loan before reading late_fee_paid_cents.
		loan, err := s.loans.GetByIDForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		if loan.Status != domain.LoanStatusActive {
			return domain.ErrNotActive
		}
		now := s.now()
		if !now.After(loan.DueOn) {
			return domain.ErrNotOverdue
		}

		// Cumulative payouts are capped at the deposit: each call pays only
		// the late fee accrued since the previous one.
		fee := lateFee(loan.DepositCents, daysLate(loan.DueOn, now))
		delta := fee - loan.LateFeePaidCents
		if delta <= 0 {
			return nil
		}

		book, err := s.books.GetByIDForUpdate(ctx, loan.BookID)
		if err != nil {
			return err
		}
		lender := book.OwnerAccount

		// Loan status and book availability stay untouched.
		loan.LateFeePaidCents = fee
		if err := s.loans.Update(ctx, loan); err != nil {
			return err
		}
		if _, err := s.parts.EnsureRegistered(ctx, lender); err != nil {
			return err
		}
		if err := s.parts.AddEarnings(ctx, lender, delta); err != nil {
			return err
		}
		if err := s.transfer(ctx, domain.AccountCustody, lender, delta, domain.EntryTypeLateFee, &loan.ID, "overdue compensation"); err != nil {
			return err
		}
		if err := s.notifyLatePenalty(ctx, lender, loan, daysLate(loan.DueOn, now), delta); err != nil {
			return err
		}
		paid = delta
		return nil
	})
	if err != nil {
		return 0, err
	}
	if paid > 0 {
		logger.Info("Overdue compensation paid", "loan_id", loanID, "cents", paid)
	}
	return paid, nil
}

func (s *settlementService) WithdrawTreasury(ctx context.Context, adminAccount string) (int64, error) {
	if !s.mu.TryLock() {
		return 0, domain.ErrReentrantCall
	}
	defer s.mu.Unlock()

	var withdrawn int64
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		balance, err := s.ledger.Balance(ctx, domain.AccountTreasury)
		if err != nil {
			return err
		}
		if balance <= 0 {
			return nil
		}
		if _, err := s.parts.EnsureRegistered(ctx, adminAccount); err != nil {
			return err
		}
		if err := s.transfer(ctx, domain.AccountTreasury, adminAccount, balance, domain.EntryTypeAdminWithdrawal, nil, "treasury withdrawal"); err != nil {
			return err
		}
		withdrawn = balance
		return nil
	})
	if err != nil {
		return 0, err
	}
	if withdrawn > 0 {
		logger.Warn("Treasury withdrawn", "account", adminAccount, "cents", withdrawn)
	}
	return withdrawn, nil
}

func (s *settlementService) GetLoan(ctx context.Context, id int64) (*domain.Loan, error) {
	return s.loans.GetByID(ctx, id)
}

func (s *settlementService) ListLoansByBorrower(ctx context.Context, account string) ([]domain.Loan, error) {
	return s.loans.ListByBorrower(ctx, account)
}
