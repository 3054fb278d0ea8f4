package service

import (
	"context"
	"fmt"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/logger"
	"booklend-backend/internal/repository"
)

type catalogService struct {
	books   repository.BookRepository
	pickups PickupPointService
}

func NewCatalogService(bookRepo repository.BookRepository, pickupSvc PickupPointService) CatalogService {
	return &catalogService{books: bookRepo, pickups: pickupSvc}
}

func (s *catalogService) ListBook(ctx context.Context, owner string, input ListBookInput) (int64, error) {
	if input.Title == "" {
		return 0, fmt.Errorf("%w: title is required", domain.ErrInvalidArgument)
	}
	if input.PickupPoint == "" {
		return 0, fmt.Errorf("%w: pickup point is required", domain.ErrInvalidArgument)
	}
	if input.DepositCents <= 0 {
		return 0, fmt.Errorf("%w: deposit must be positive", domain.ErrInvalidArgument)
	}
	if input.DurationDays < domain.MinLoanDays || input.DurationDays > domain.MaxLoanDays {
		return 0, fmt.Errorf("%w: duration must be between %d and %d days", domain.ErrInvalidArgument, domain.MinLoanDays, domain.MaxLoanDays)
	}
	if !domain.ValidCondition(input.Condition) {
		return 0, fmt.Errorf("%w: unknown condition %q", domain.ErrInvalidArgument, input.Condition)
	}

	allowed, err := s.pickups.IsAllowed(ctx, input.PickupPoint)
	if err != nil {
		return 0, err
	}
	if !allowed {
		return 0, fmt.Errorf("%w: pickup point %q is not allowed", domain.ErrInvalidArgument, input.PickupPoint)
	}

	book := &domain.Book{
		OwnerAccount: owner,
		Title:        input.Title,
		Author:       input.Author,
		CatalogNo:    input.CatalogNo,
		Condition:    input.Condition,
		DepositCents: input.DepositCents,
		DurationDays: input.DurationDays,
		PickupPoint:  input.PickupPoint,
		Available:    true,
	}
	// Listing has no registration or reward side effect; the owner joins
	// the roster lazily on their first borrow or settled lend.
	if err := s.books.Create(ctx, book); err != nil {
		return 0, err
	}

	logger.Info("Book listed", "book_id", book.ID, "owner", owner, "title", input.Title)
	return book.ID, nil
}

func (s *catalogService) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	return s.books.GetByID(ctx, id)
}

func (s *catalogService) ListBooks(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.books.List(ctx, page, pageSize)
}

func (s *catalogService) ListByOwner(ctx context.Context, account string) ([]domain.Book, error) {
	return s.books.ListByOwner(ctx, account)
}
