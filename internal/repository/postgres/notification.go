package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	attrs, err := json.Marshal(n.Attributes)
	if err != nil {
		return err
	}
	query := `INSERT INTO notifications (account, title, message, attributes, is_read)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_on`
	return conn(ctx, r.db).QueryRowContext(ctx, query,
		n.Account, n.Title, n.Message, attrs, n.IsRead,
	).Scan(&n.ID, &n.CreatedOn)
}

func (r *notificationRepository) ListByAccount(ctx context.Context, account string, limit, offset int32) ([]domain.Notification, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM notifications WHERE account = $1`
	if err := conn(ctx, r.db).QueryRowContext(ctx, countQuery, account).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, account, title, message, attributes, is_read, created_on
	          FROM notifications WHERE account = $1 ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, account, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var attrs []byte
		if err := rows.Scan(&n.ID, &n.Account, &n.Title, &n.Message, &attrs, &n.IsRead, &n.CreatedOn); err != nil {
			return nil, 0, err
		}
		if len(attrs) > 0 {
			if err := json.Unmarshal(attrs, &n.Attributes); err != nil {
				return nil, 0, err
			}
		}
		notes = append(notes, n)
	}
	return notes, count, rows.Err()
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id int64, account string) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND account = $2`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, id, account)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
