package service

import (
	"context"

	"booklend-backend/internal/domain"
)

type IdentityService interface {
	SetDisplayName(ctx context.Context, account, name string) error
	SetContactEmail(ctx context.Context, account, email string) error
	// GetProfile returns a zero-valued profile for unknown accounts.
	GetProfile(ctx context.Context, account string) (*domain.Participant, error)
}

// ListBookInput carries the caller-supplied fields of a new listing.
type ListBookInput struct {
	Title        string               `json:"title"`
	Author       string               `json:"author"`
	CatalogNo    string               `json:"catalog_no"`
	Condition    domain.BookCondition `json:"condition"`
	DepositCents int64                `json:"deposit_cents"`
	DurationDays int32                `json:"duration_days"`
	PickupPoint  string               `json:"pickup_point"`
}

type CatalogService interface {
	ListBook(ctx context.Context, owner string, input ListBookInput) (int64, error)
	GetBook(ctx context.Context, id int64) (*domain.Book, error)
	ListBooks(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error)
	ListByOwner(ctx context.Context, account string) ([]domain.Book, error)
}

type SettlementService interface {
	Borrow(ctx context.Context, borrower string, bookID, paidCents int64) (int64, error)
	Return(ctx context.Context, borrower string, loanID int64, condition domain.BookCondition) (*domain.SettlementResult, error)
	// CompensateOverdue pays the lender the late fee accrued so far on a
	// still-active overdue loan. Returns the cents paid by this call.
	CompensateOverdue(ctx context.Context, loanID int64) (int64, error)
	// WithdrawTreasury moves the accumulated protocol fees to the
	// administrator account. Circuit breaker, not part of normal flow.
	WithdrawTreasury(ctx context.Context, adminAccount string) (int64, error)
	GetLoan(ctx context.Context, id int64) (*domain.Loan, error)
	ListLoansByBorrower(ctx context.Context, account string) ([]domain.Loan, error)
}

type RankingService interface {
	TopLenders(ctx context.Context, limit int) ([]domain.Participant, error)
	TopBorrowers(ctx context.Context, limit int) ([]domain.Participant, error)
}

type PickupPointService interface {
	Add(ctx context.Context, name string) error
	Remove(ctx context.Context, name string) error
	IsAllowed(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]domain.PickupPoint, error)
	// Seed inserts the initially allowed pickup points, skipping any that
	// already exist.
	Seed(ctx context.Context, names []string) error
}

type LedgerService interface {
	Balance(ctx context.Context, account string) (int64, error)
	Entries(ctx context.Context, account string, page, pageSize int32) ([]domain.LedgerEntry, int32, error)
	// TopUp credits spendable balance to a participant. Admin-only; this is
	// how external money enters the system.
	TopUp(ctx context.Context, account string, cents int64) error
	Stats(ctx context.Context) (*domain.Stats, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, account string, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, account string, notificationID int64) error
}

// RewardIssuer mints reward-currency units to a recipient. Authority over
// minting is handed to the settlement engine at wiring time: the engine is
// the only component given this capability.
type RewardIssuer interface {
	Mint(ctx context.Context, account string, amount int64, reason string) error
}

type EmailService interface {
	SendOverdueReminder(ctx context.Context, toEmail, toName, bookTitle string, daysLate int64) error
}
