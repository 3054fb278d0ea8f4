package postgres

import (
	"context"
	"database/sql"
	"errors"

	"booklend-backend/internal/domain"
	"booklend-backend/internal/repository"
)

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

const bookColumns = `id, owner_account, title, author, catalog_no, condition, deposit_cents, duration_days, pickup_point, available, lend_count, created_on`

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (owner_account, title, author, catalog_no, condition, deposit_cents, duration_days, pickup_point, available, lend_count)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_on`
	return conn(ctx, r.db).QueryRowContext(ctx, query,
		b.OwnerAccount, b.Title, b.Author, b.CatalogNo, b.Condition,
		b.DepositCents, b.DurationDays, b.PickupPoint, b.Available, b.LendCount,
	).Scan(&b.ID, &b.CreatedOn)
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	return r.getByID(ctx, id, "")
}

func (r *bookRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Book, error) {
	return r.getByID(ctx, id, " FOR UPDATE")
}

func (r *bookRepository) getByID(ctx context.Context, id int64, lock string) (*domain.Book, error) {
	b := &domain.Book{}
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1` + lock
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.OwnerAccount, &b.Title, &b.Author, &b.CatalogNo, &b.Condition,
		&b.DepositCents, &b.DurationDays, &b.PickupPoint, &b.Available, &b.LendCount, &b.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookRepository) MarkBorrowed(ctx context.Context, id int64) error {
	query := `UPDATE books SET available = FALSE, lend_count = lend_count + 1 WHERE id = $1 AND available`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrUnavailable
	}
	return nil
}

func (r *bookRepository) MarkReturned(ctx context.Context, id int64) error {
	query := `UPDATE books SET available = TRUE WHERE id = $1`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, id)
	return err
}

func (r *bookRepository) ListByOwner(ctx context.Context, account string) ([]domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE owner_account = $1 ORDER BY id`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, account)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *bookRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error) {
	var count int32
	if err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT count(*) FROM books`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	books, err := scanBooks(rows)
	if err != nil {
		return nil, 0, err
	}
	return books, count, nil
}

func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT count(*) FROM books`).Scan(&count)
	return count, err
}

func scanBooks(rows *sql.Rows) ([]domain.Book, error) {
	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(
			&b.ID, &b.OwnerAccount, &b.Title, &b.Author, &b.CatalogNo, &b.Condition,
			&b.DepositCents, &b.DurationDays, &b.PickupPoint, &b.Available, &b.LendCount, &b.CreatedOn,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
