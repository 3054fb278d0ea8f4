package postgres

import (
	"context"
	"database/sql"
	"errors"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/repository"
)

type participantRepository struct {
	db *sql.DB
}

func NewParticipantRepository(db *sql.DB) repository.ParticipantRepository {
	return &participantRepository{db: db}
}

const participantColumns = `id, account, display_name, email, books_lent, books_borrowed, earned_cents, reward_balance, registered_on`

func (r *participantRepository) EnsureRegistered(ctx context.Context, account string) (*domain.Participant, error) {
	q := conn(ctx, r.db)
	insert := `INSERT INTO participants (account) VALUES ($1) ON CONFLICT (account) DO NOTHING`
	if _, err := q.ExecContext(ctx, insert, account); err != nil {
		return nil, err
	}
	return r.GetByAccount(ctx, account)
}

func (r *participantRepository) GetByAccount(ctx context.Context, account string) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE account = $1`
	return r.getOne(ctx, query, account)
}

func (r *participantRepository) GetByDisplayName(ctx context.Context, name string) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE display_name = $1`
	return r.getOne(ctx, query, name)
}

func (r *participantRepository) getOne(ctx context.Context, query string, arg any) (*domain.Participant, error) {
	p := &domain.Participant{}
	err := conn(ctx, r.db).QueryRowContext(ctx, query, arg).Scan(
		&p.ID, &p.Account, &p.DisplayName, &p.Email, &p.BooksLent,
		&p.BooksBorrowed, &p.EarnedCents, &p.RewardBalance, &p.RegisteredOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) UpdateDisplayName(ctx context.Context, account, name string) error {
	query := `UPDATE participants SET display_name = $1 WHERE account = $2`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, name, account)
	return err
}

func (r *participantRepository) UpdateEmail(ctx context.Context, account, email string) error {
	query := `UPDATE participants SET email = $1 WHERE account = $2`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, email, account)
	return err
}

func (r *participantRepository) IncrementLent(ctx context.Context, account string) error {
	query := `UPDATE participants SET books_lent = books_lent + 1 WHERE account = $1`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, account)
	return err
}

func (r *participantRepository) IncrementBorrowed(ctx context.Context, account string) error {
	query := `UPDATE participants SET books_borrowed = books_borrowed + 1 WHERE account = $1`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, account)
	return err
}

func (r *participantRepository) AddEarnings(ctx context.Context, account string, cents int64) error {
	query := `UPDATE participants SET earned_cents = earned_cents + $1 WHERE account = $2`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, cents, account)
	return err
}

func (r *participantRepository) AddReward(ctx context.Context, account string, units int64) error {
	query := `UPDATE participants SET reward_balance = reward_balance + $1 WHERE account = $2`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, units, account)
	return err
}

func (r *participantRepository) ListRegistered(ctx context.Context) ([]domain.Participant, error) {
	// Ascending id is roster (registration) order.
	query := `SELECT ` + participantColumns + ` FROM participants ORDER BY id`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(
			&p.ID, &p.Account, &p.DisplayName, &p.Email, &p.BooksLent,
			&p.BooksBorrowed, &p.EarnedCents, &p.RewardBalance, &p.RegisteredOn,
		); err != nil {
			return nil, err
		}
		roster = append(roster, p)
	}
	return roster, rows.Err()
}
