package postgres

import (
	"context"
	"database/sql"
	"errors"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/repository"
)

type pickupPointRepository struct {
	db *sql.DB
}

func NewPickupPointRepository(db *sql.DB) repository.PickupPointRepository {
	return &pickupPointRepository{db: db}
}

func (r *pickupPointRepository) Create(ctx context.Context, name string) error {
	query := `INSERT INTO pickup_points (name, enabled) VALUES ($1, TRUE)`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, name)
	return err
}

func (r *pickupPointRepository) Get(ctx context.Context, name string) (*domain.PickupPoint, error) {
	p := &domain.PickupPoint{}
	query := `SELECT name, enabled, earned_cents, created_on FROM pickup_points WHERE name = $1`
	err := conn(ctx, r.db).QueryRowContext(ctx, query, name).Scan(&p.Name, &p.Enabled, &p.EarnedCents, &p.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pickupPointRepository) SetEnabled(ctx context.Context, name string, enabled bool) error {
	query := `UPDATE pickup_points SET enabled = $1 WHERE name = $2`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, enabled, name)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *pickupPointRepository) AddEarnings(ctx context.Context, name string, cents int64) error {
	query := `UPDATE pickup_points SET earned_cents = earned_cents + $1 WHERE name = $2`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, cents, name)
	return err
}

func (r *pickupPointRepository) List(ctx context.Context) ([]domain.PickupPoint, error) {
	query := `SELECT name, enabled, earned_cents, created_on FROM pickup_points ORDER BY created_on`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []domain.PickupPoint
	for rows.Next() {
		var p domain.PickupPoint
		if err := rows.Scan(&p.Name, &p.Enabled, &p.EarnedCents, &p.CreatedOn); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
