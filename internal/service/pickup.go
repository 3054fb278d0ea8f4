package service

import (
	"context"
	"errors"
	"fmt"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/logger"
	"booklend-backend/internal/repository"
)

type pickupPointService struct {
	points repository.PickupPointRepository
	notes  repository.NotificationRepository
}

func NewPickupPointService(pointRepo repository.PickupPointRepository, noteRepo repository.NotificationRepository) PickupPointService {
	return &pickupPointService{points: pointRepo, notes: noteRepo}
}

func (s *pickupPointService) Add(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: pickup point name is required", domain.ErrInvalidArgument)
	}

	existing, err := s.points.Get(ctx, name)
	switch {
	case err == nil:
		if existing.Enabled {
			return domain.ErrAlreadyExists
		}
		// A previously removed point comes back with its history intact.
		if err := s.points.SetEnabled(ctx, name, true); err != nil {
			return err
		}
	case errors.Is(err, domain.ErrNotFound):
		if err := s.points.Create(ctx, name); err != nil {
			return err
		}
	default:
		return err
	}

	logger.Info("Pickup point added", "name", name)
	return s.notify(ctx, "Pickup point added", name, "PICKUP_POINT_ADDED")
}

func (s *pickupPointService) Remove(ctx context.Context, name string) error {
	existing, err := s.points.Get(ctx, name)
	if err != nil {
		return err
	}
	if !existing.Enabled {
		return domain.ErrNotFound
	}
	// Disable only; existing listings at this point stay valid.
	if err := s.points.SetEnabled(ctx, name, false); err != nil {
		return err
	}

	logger.Info("Pickup point removed", "name", name)
	return s.notify(ctx, "Pickup point removed", name, "PICKUP_POINT_REMOVED")
}

func (s *pickupPointService) IsAllowed(ctx context.Context, name string) (bool, error) {
	p, err := s.points.Get(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return p.Enabled, nil
}

func (s *pickupPointService) List(ctx context.Context) ([]domain.PickupPoint, error) {
	return s.points.List(ctx)
}

func (s *pickupPointService) Seed(ctx context.Context, names []string) error {
	for _, name := range names {
		_, err := s.points.Get(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if err := s.points.Create(ctx, name); err != nil {
			return err
		}
		logger.Info("Pickup point seeded", "name", name)
	}
	return nil
}

func (s *pickupPointService) notify(ctx context.Context, title, name, eventType string) error {
	note := &domain.Notification{
		Account: domain.AccountTreasury, // admin/broadcast bucket
		Title:   title,
		Message: name,
		Attributes: map[string]string{
			"type":         eventType,
			"pickup_point": name,
		},
	}
	return s.notes.Create(ctx, note)
}
