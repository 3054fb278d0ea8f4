package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/repository"
)

type loanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

const loanColumns = `id, book_id, borrower_account, deposit_cents, borrowed_on, due_on, status, return_condition, returned_on, late_fee_paid_cents`

func (r *loanRepository) Create(ctx context.Context, l *domain.Loan) error {
	query := `INSERT INTO loans (book_id, borrower_account, deposit_cents, borrowed_on, due_on, status, return_condition, late_fee_paid_cents)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return conn(ctx, r.db).QueryRowContext(ctx, query,
		l.BookID, l.BorrowerAccount, l.DepositCents, l.BorrowedOn, l.DueOn,
		l.Status, l.ReturnCondition, l.LateFeePaidCents,
	).Scan(&l.ID)
}

func (r *loanRepository) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	return r.getByID(ctx, id, "")
}

func (r *loanRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Loan, error) {
	return r.getByID(ctx, id, " FOR UPDATE")
}

func (r *loanRepository) getByID(ctx context.Context, id int64, lock string) (*domain.Loan, error) {
	l := &domain.Loan{}
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1` + lock
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.BookID, &l.BorrowerAccount, &l.DepositCents, &l.BorrowedOn,
		&l.DueOn, &l.Status, &l.ReturnCondition, &l.ReturnedOn, &l.LateFeePaidCents)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *loanRepository) Update(ctx context.Context, l *domain.Loan) error {
	query := `UPDATE loans SET status = $1, return_condition = $2, returned_on = $3, late_fee_paid_cents = $4 WHERE id = $5`
	_, err := conn(ctx, r.db).ExecContext(ctx, query,
		l.Status, l.ReturnCondition, l.ReturnedOn, l.LateFeePaidCents, l.ID)
	return err
}

func (r *loanRepository) ListByBorrower(ctx context.Context, account string) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE borrower_account = $1 ORDER BY id`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, account)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLoans(rows)
}

func (r *loanRepository) ListOverdueActive(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE status = 'ACTIVE' AND due_on < $1 ORDER BY id`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLoans(rows)
}

func (r *loanRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT count(*) FROM loans`).Scan(&count)
	return count, err
}

func scanLoans(rows *sql.Rows) ([]domain.Loan, error) {
	var loans []domain.Loan
	for rows.Next() {
		var l domain.Loan
		if err := rows.Scan(
			&l.ID, &l.BookID, &l.BorrowerAccount, &l.DepositCents, &l.BorrowedOn,
			&l.DueOn, &l.Status, &l.ReturnCondition, &l.ReturnedOn, &l.LateFeePaidCents,
		); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}
