package service

import (
	"context"
	"fmt"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/logger"
	"booklend-backend/internal/repository"
)

type ledgerService struct {
	tx     repository.Transactor
	ledger repository.LedgerRepository
	parts  repository.ParticipantRepository
	books  repository.BookRepository
	loans  repository.LoanRepository
}

func NewLedgerService(
	tx repository.Transactor,
	ledgerRepo repository.LedgerRepository,
	participantRepo repository.ParticipantRepository,
	bookRepo repository.BookRepository,
	loanRepo repository.LoanRepository,
) LedgerService {
	return &ledgerService{tx: tx, ledger: ledgerRepo, parts: participantRepo, books: bookRepo, loans: loanRepo}
}

func (s *ledgerService) Balance(ctx context.Context, account string) (int64, error) {
	return s.ledger.Balance(ctx, account)
}

func (s *ledgerService) Entries(ctx context.Context, account string, page, pageSize int32) ([]domain.LedgerEntry, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.ledger.ListByAccount(ctx, account, page, pageSize)
}

func (s *ledgerService) TopUp(ctx context.Context, account string, cents int64) error {
	if cents <= 0 {
		return fmt.Errorf("%w: top-up amount must be positive", domain.ErrInvalidArgument)
	}
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		if _, err := s.parts.EnsureRegistered(ctx, account); err != nil {
			return err
		}
		entry := &domain.LedgerEntry{
			Account:     account,
			AmountCents: cents,
			Type:        domain.EntryTypeTopUp,
			Description: "balance top-up",
		}
		return s.ledger.Record(ctx, entry)
	})
	if err != nil {
		return err
	}
	logger.Info("Balance topped up", "account", account, "cents", cents)
	return nil
}

func (s *ledgerService) Stats(ctx context.Context) (*domain.Stats, error) {
	books, err := s.books.Count(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := s.loans.Count(ctx)
	if err != nil {
		return nil, err
	}
	custody, err := s.ledger.Balance(ctx, domain.AccountCustody)
	if err != nil {
		return nil, err
	}
	treasury, err := s.ledger.Balance(ctx, domain.AccountTreasury)
	if err != nil {
		return nil, err
	}
	return &domain.Stats{
		TotalBooks:    books,
		TotalLoans:    loans,
		CustodyCents:  custody,
		TreasuryCents: treasury,
	}, nil
}
