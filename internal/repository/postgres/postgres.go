package postgres

import (
	"context"
	"database/sql"

	"booklend-backend/internal/logger"
	"booklend-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.BookRepository
	repository.LoanRepository
	repository.ParticipantRepository
	repository.LedgerRepository
	repository.PickupPointRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		BookRepository:         NewBookRepository(db),
		LoanRepository:         NewLoanRepository(db),
		ParticipantRepository:  NewParticipantRepository(db),
		LedgerRepository:       NewLedgerRepository(db),
		PickupPointRepository:  NewPickupPointRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

type txKey struct{}

// Transact runs fn inside a transaction. The transaction rides the context,
// so every repository call made with fn's context joins it. Nested calls
// reuse the transaction already in flight.
func (s *Store) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("Failed to roll back transaction", "error", rbErr)
		}
		return err
	}
	return tx.Commit()
}

// querier is the subset of *sql.DB and *sql.Tx the repositories use.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func conn(ctx context.Context, db *sql.DB) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}
