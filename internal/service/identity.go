package service

import (
	"context"
	"errors"
	"fmt"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/repository"
)

type identityService struct {
	tx    repository.Transactor
	parts repository.ParticipantRepository
}

func NewIdentityService(tx repository.Transactor, participantRepo repository.ParticipantRepository) IdentityService {
	return &identityService{tx: tx, parts: participantRepo}
}

// validDisplayName requires 3-20 characters, each an ASCII letter, digit or
// space.
func validDisplayName(name string) bool {
	if len(name) < 3 || len(name) > 20 {
		return false
	}
	for _, r := range name {
		switch {
		case r == ' ':
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}

func (s *identityService) SetDisplayName(ctx context.Context, account, name string) error {
	if !validDisplayName(name) {
		return domain.ErrInvalidName
	}

	// Name lookup, registration and rebinding commit together; the
	// name index and the roster never drift apart.
	return s.tx.Transact(ctx, func(ctx context.Context) error {
		existing, err := s.parts.GetByDisplayName(ctx, name)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if existing != nil && existing.Account != account {
			return domain.ErrNameTaken
		}
		// Rebinding your own current name is a no-op success.
		if _, err := s.parts.EnsureRegistered(ctx, account); err != nil {
			return err
		}
		return s.parts.UpdateDisplayName(ctx, account, name)
	})
}

func (s *identityService) SetContactEmail(ctx context.Context, account, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidArgument)
	}
	return s.tx.Transact(ctx, func(ctx context.Context) error {
		if _, err := s.parts.EnsureRegistered(ctx, account); err != nil {
			return err
		}
		return s.parts.UpdateEmail(ctx, account, email)
	})
}

func (s *identityService) GetProfile(ctx context.Context, account string) (*domain.Participant, error) {
	p, err := s.parts.GetByAccount(ctx, account)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.Participant{Account: account}, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
