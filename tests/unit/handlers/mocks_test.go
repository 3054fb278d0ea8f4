package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/service"
)

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListBook(ctx context.Context, owner string, input service.ListBookInput) (int64, error) {
	args := m.Called(ctx, owner, input)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCatalogService) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockCatalogService) ListBooks(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Book), args.Get(1).(int32), args.Error(2)
}
func (m *MockCatalogService) ListByOwner(ctx context.Context, account string) ([]domain.Book, error) {
	args := m.Called(ctx, account)
	return args.Get(0).([]domain.Book), args.Error(1)
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

// MockIdentityService
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) SetDisplayName(ctx context.Context, account, name string) error {
	args := m.Called(ctx, account, name)
	return args.Error(0)
}
func (m *MockIdentityService) SetContactEmail(ctx context.Context, account, email string) error {
	args := m.Called(ctx, account, email)
	return args.Error(0)
}
func (m *MockIdentityService) GetProfile(ctx context.Context, account string) (*domain.Participant, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}

// MockRankingService
type MockRankingService struct {
	mock.Mock
}

func (m *MockRankingService) TopLenders(ctx context.Context, limit int) ([]domain.Participant, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Participant), args.Error(1)
}
func (m *MockRankingService) TopBorrowers(ctx context.Context, limit int) ([]domain.Participant, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Participant), args.Error(1)
}

// MockLedgerService
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Balance(ctx context.Context, account string) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockLedgerService) Entries(ctx context.Context, account string, page, pageSize int32) ([]domain.LedgerEntry, int32, error) {
	args := m.Called(ctx, account, page, pageSize)
	return args.Get(0).([]domain.LedgerEntry), args.Get(1).(int32), args.Error(2)
}
func (m *MockLedgerService) TopUp(ctx context.Context, account string, cents int64) error {
	args := m.Called(ctx, account, cents)
	return args.Error(0)
}
func (m *MockLedgerService) Stats(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

// MockNotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) GetNotifications(ctx context.Context, account string, page, pageSize int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, account, page, pageSize)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationService) MarkAsRead(ctx context.Context, account string, notificationID int64) error {
	args := m.Called(ctx, account, notificationID)
	return args.Error(0)
}

// MockPickupPointService
type MockPickupPointService struct {
	mock.Mock
}

func (m *MockPickupPointService) Add(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
func (m *MockPickupPointService) Remove(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
func (m *MockPickupPointService) IsAllowed(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(bool), args.Error(1)
}
func (m *MockPickupPointService) List(ctx context.Context) ([]domain.PickupPoint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PickupPoint), args.Error(1)
}
func (m *MockPickupPointService) Seed(ctx context.Context, names []string) error {
	args := m.Called(ctx, names)
	return args.Error(0)
}
