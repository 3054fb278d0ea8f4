package postgres

import (
	"context"
	"database/sql"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/repository"
)

type ledgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Record(ctx context.Context, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (account, amount_cents, type, loan_id, description)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_on`
	return conn(ctx, r.db).QueryRowContext(ctx, query,
		e.Account, e.AmountCents, e.Type, e.LoanID, e.Description,
	).Scan(&e.ID, &e.CreatedOn)
}

func (r *ledgerRepository) Balance(ctx context.Context, account string) (int64, error) {
	var balance int64
	query := `SELECT COALESCE(SUM(amount_cents), 0) FROM ledger_entries WHERE account = $1`
	err := conn(ctx, r.db).QueryRowContext(ctx, query, account).Scan(&balance)
	return balance, err
}

func (r *ledgerRepository) ListByAccount(ctx context.Context, account string, page, pageSize int32) ([]domain.LedgerEntry, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM ledger_entries WHERE account = $1`
	if err := conn(ctx, r.db).QueryRowContext(ctx, countQuery, account).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, account, amount_cents, type, loan_id, description, created_on
	          FROM ledger_entries WHERE account = $1 ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, account, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.Account, &e.AmountCents, &e.Type, &e.LoanID, &e.Description, &e.CreatedOn); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, count, rows.Err()
}
