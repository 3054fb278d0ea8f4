package unit

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"booklend-backend/internal/domain"
)

// passthroughTx satisfies repository.Transactor without a database. fn runs
// directly; a returned error still aborts the caller the way a rollback
// would.
type passthroughTx struct{}

func (passthroughTx) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockBookRepo
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) MarkBorrowed(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookRepo) MarkReturned(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookRepo) ListByOwner(ctx context.Context, account string) ([]domain.Book, error) {
	args := m.Called(ctx, account)
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Book), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockLoanRepo
type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) Update(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) ListByBorrower(ctx context.Context, account string) ([]domain.Loan, error) {
	args := m.Called(ctx, account)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListOverdueActive(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockParticipantRepo
type MockParticipantRepo struct {
	mock.Mock
}

func (m *MockParticipantRepo) EnsureRegistered(ctx context.Context, account string) (*domain.Participant, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}
func (m *MockParticipantRepo) GetByAccount(ctx context.Context, account string) (*domain.Participant, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}
func (m *MockParticipantRepo) GetByDisplayName(ctx context.Context, name string) (*domain.Participant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}
func (m *MockParticipantRepo) UpdateDisplayName(ctx context.Context, account, name string) error {
	args := m.Called(ctx, account, name)
	return args.Error(0)
}
func (m *MockParticipantRepo) UpdateEmail(ctx context.Context, account, email string) error {
	args := m.Called(ctx, account, email)
	return args.Error(0)
}
func (m *MockParticipantRepo) IncrementLent(ctx context.Context, account string) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockParticipantRepo) IncrementBorrowed(ctx context.Context, account string) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockParticipantRepo) AddEarnings(ctx context.Context, account string, cents int64) error {
	args := m.Called(ctx, account, cents)
	return args.Error(0)
}
func (m *MockParticipantRepo) AddReward(ctx context.Context, account string, units int64) error {
	args := m.Called(ctx, account, units)
	return args.Error(0)
}
func (m *MockParticipantRepo) ListRegistered(ctx context.Context) ([]domain.Participant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Participant), args.Error(1)
}

// MockLedgerRepo
type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) Record(ctx context.Context, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockLedgerRepo) Balance(ctx context.Context, account string) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockLedgerRepo) ListByAccount(ctx context.Context, account string, page, pageSize int32) ([]domain.LedgerEntry, int32, error) {
	args := m.Called(ctx, account, page, pageSize)
	return args.Get(0).([]domain.LedgerEntry), args.Get(1).(int32), args.Error(2)
}

// MockPickupPointRepo
type MockPickupPointRepo struct {
	mock.Mock
}

func (m *MockPickupPointRepo) Create(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
func (m *MockPickupPointRepo) Get(ctx context.Context, name string) (*domain.PickupPoint, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PickupPoint), args.Error(1)
}
func (m *MockPickupPointRepo) SetEnabled(ctx context.Context, name string, enabled bool) error {
	args := m.Called(ctx, name, enabled)
	return args.Error(0)
}
func (m *MockPickupPointRepo) AddEarnings(ctx context.Context, name string, cents int64) error {
	args := m.Called(ctx, name, cents)
	return args.Error(0)
}
func (m *MockPickupPointRepo) List(ctx context.Context) ([]domain.PickupPoint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PickupPoint), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) ListByAccount(ctx context.Context, account string, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, account, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id int64, account string) error {
	args := m.Called(ctx, id, account)
	return args.Error(0)
}

// MockRewardIssuer
type MockRewardIssuer struct {
	mock.Mock
}

func (m *MockRewardIssuer) Mint(ctx context.Context, account string, amount int64, reason string) error {
	args := m.Called(ctx, account, amount, reason)
	return args.Error(0)
}

// MockSettlementService
type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) Borrow(ctx context.Context, borrower string, bookID, paidCents int64) (int64, error) {
	args := m.Called(ctx, borrower, bookID, paidCents)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockSettlementService) Return(ctx context.Context, borrower string, loanID int64, condition domain.BookCondition) (*domain.SettlementResult, error) {
	args := m.Called(ctx, borrower, loanID, condition)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementResult), args.Error(1)
}
func (m *MockSettlementService) CompensateOverdue(ctx context.Context, loanID int64) (int64, error) {
	args := m.Called(ctx, loanID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockSettlementService) WithdrawTreasury(ctx context.Context, adminAccount string) (int64, error) {
	args := m.Called(ctx, adminAccount)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockSettlementService) GetLoan(ctx context.Context, id int64) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockSettlementService) ListLoansByBorrower(ctx context.Context, account string) ([]domain.Loan, error) {
	args := m.Called(ctx, account)
	return args.Get(0).([]domain.Loan), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOverdueReminder(ctx context.Context, toEmail, toName, bookTitle string, daysLate int64) error {
	args := m.Called(ctx, toEmail, toName, bookTitle, daysLate)
	return args.Error(0)
}
