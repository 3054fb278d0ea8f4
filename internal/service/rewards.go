package service

import (
	"context"
	"fmt"
	"strconv"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/repository"
)

// pointsIssuer mints reward units onto participant profiles. It is handed to
// the settlement engine at wiring time and to nothing else, which is the
// authorization transfer: no other component can mint.
type pointsIssuer struct {
	parts repository.ParticipantRepository
	notes repository.NotificationRepository
}

func NewRewardIssuer(participantRepo repository.ParticipantRepository, noteRepo repository.NotificationRepository) RewardIssuer {
	return &pointsIssuer{parts: participantRepo, notes: noteRepo}
}

func (i *pointsIssuer) Mint(ctx context.Context, account string, amount int64, reason string) error {
	if amount <= 0 {
		return nil
	}
	if _, err := i.parts.EnsureRegistered(ctx, account); err != nil {
		return err
	}
	if err := i.parts.AddReward(ctx, account, amount); err != nil {
		return err
	}

	note := &domain.Notification{
		Account: account,
		Title:   "Reward minted",
		Message: fmt.Sprintf("You received %d reward units", amount),
		Attributes: map[string]string{
			"type":   "REWARD_MINTED",
			"reason": reason,
			"amount": strconv.FormatInt(amount, 10),
		},
	}
	return i.notes.Create(ctx, note)
}
