package repository

import (
	"context"
	"time"

	"booklend-backend/internal/domain"
)

// Transactor runs fn inside a single database transaction. Every repository
// call made with the context passed to fn joins that transaction; if fn
// returns an error the whole transaction is rolled back.
type Transactor interface {
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
}

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	// GetByIDForUpdate locks the row until the surrounding transaction
	// finishes. Settlement reads through it so concurrent transactions
	// serialize on the book instead of both acting on a stale snapshot.
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Book, error)
	// MarkBorrowed flips the book to unavailable and bumps its lend count.
	MarkBorrowed(ctx context.Context, id int64) error
	MarkReturned(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, account string) ([]domain.Book, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error)
	Count(ctx context.Context) (int64, error)
}

type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id int64) (*domain.Loan, error)
	// GetByIDForUpdate locks the loan row until the surrounding transaction
	// finishes, so an HTTP return and the overdue sweep cannot both settle
	// against the same late_fee_paid_cents snapshot.
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Loan, error)
	Update(ctx context.Context, loan *domain.Loan) error
	ListByBorrower(ctx context.Context, account string) ([]domain.Loan, error)
	ListOverdueActive(ctx context.Context, asOf time.Time) ([]domain.Loan, error)
	Count(ctx context.Context) (int64, error)
}

type ParticipantRepository interface {
	// EnsureRegistered inserts the account into the roster if it is not
	// there yet and returns the row either way. Roster order is preserved
	// by the serial primary key.
	EnsureRegistered(ctx context.Context, account string) (*domain.Participant, error)
	GetByAccount(ctx context.Context, account string) (*domain.Participant, error)
	GetByDisplayName(ctx context.Context, name string) (*domain.Participant, error)
	UpdateDisplayName(ctx context.Context, account, name string) error
	UpdateEmail(ctx context.Context, account, email string) error
	IncrementLent(ctx context.Context, account string) error
	IncrementBorrowed(ctx context.Context, account string) error
	AddEarnings(ctx context.Context, account string, cents int64) error
	AddReward(ctx context.Context, account string, units int64) error
	ListRegistered(ctx context.Context) ([]domain.Participant, error)
}

type LedgerRepository interface {
	Record(ctx context.Context, entry *domain.LedgerEntry) error
	Balance(ctx context.Context, account string) (int64, error)
	ListByAccount(ctx context.Context, account string, page, pageSize int32) ([]domain.LedgerEntry, int32, error)
}

type PickupPointRepository interface {
	Create(ctx context.Context, name string) error
	Get(ctx context.Context, name string) (*domain.PickupPoint, error)
	SetEnabled(ctx context.Context, name string, enabled bool) error
	AddEarnings(ctx context.Context, name string, cents int64) error
	List(ctx context.Context) ([]domain.PickupPoint, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	ListByAccount(ctx context.Context, account string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id int64, account string) error
}
