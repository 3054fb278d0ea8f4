package service

import (
	"context"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/repository"
)

type notificationService struct {
	notes repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notes: noteRepo}
}

func (s *notificationService) GetNotifications(ctx context.Context, account string, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.notes.ListByAccount(ctx, account, pageSize, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, account string, notificationID int64) error {
	return s.notes.MarkAsRead(ctx, notificationID, account)
}
