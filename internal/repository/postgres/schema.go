package postgres

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. identifiers are BIGSERIAL and never
// reused; entity rows are never deleted.
const schema = `
CREATE TABLE IF NOT EXISTS participants (
    id             BIGSERIAL PRIMARY KEY,
    account        TEXT NOT NULL UNIQUE,
    display_name   TEXT NOT NULL DEFAULT '',
    email          TEXT NOT NULL DEFAULT '',
    books_lent     BIGINT NOT NULL DEFAULT 0,
    books_borrowed BIGINT NOT NULL DEFAULT 0,
    earned_cents   BIGINT NOT NULL DEFAULT 0,
    reward_balance BIGINT NOT NULL DEFAULT 0,
    registered_on  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_participants_display_name
    ON participants(display_name) WHERE display_name <> '';

CREATE TABLE IF NOT EXISTS books (
    id            BIGSERIAL PRIMARY KEY,
    owner_account TEXT NOT NULL,
    title         TEXT NOT NULL,
    author        TEXT NOT NULL DEFAULT '',
    catalog_no    TEXT NOT NULL DEFAULT '',
    condition     TEXT NOT NULL CHECK (condition IN ('MINT', 'GOOD', 'FAIR', 'DAMAGED')),
    deposit_cents BIGINT NOT NULL CHECK (deposit_cents > 0),
    duration_days INTEGER NOT NULL CHECK (duration_days BETWEEN 1 AND 90),
    pickup_point  TEXT NOT NULL,
    available     BOOLEAN NOT NULL DEFAULT TRUE,
    lend_count    BIGINT NOT NULL DEFAULT 0,
    created_on    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_books_owner ON books(owner_account);

CREATE TABLE IF NOT EXISTS loans (
    id                  BIGSERIAL PRIMARY KEY,
    book_id             BIGINT NOT NULL REFERENCES books(id),
    borrower_account    TEXT NOT NULL,
    deposit_cents       BIGINT NOT NULL,
    borrowed_on         TIMESTAMPTZ NOT NULL,
    due_on              TIMESTAMPTZ NOT NULL,
    status              TEXT NOT NULL CHECK (status IN ('ACTIVE', 'RETURNED', 'LATE', 'DISPUTED')),
    return_condition    TEXT NOT NULL DEFAULT '',
    returned_on         TIMESTAMPTZ,
    late_fee_paid_cents BIGINT NOT NULL DEFAULT 0
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_loans_one_active_per_book
    ON loans(book_id) WHERE status = 'ACTIVE';

CREATE INDEX IF NOT EXISTS idx_loans_borrower ON loans(borrower_account);

CREATE TABLE IF NOT EXISTS pickup_points (
    name         TEXT PRIMARY KEY,
    enabled      BOOLEAN NOT NULL DEFAULT TRUE,
    earned_cents BIGINT NOT NULL DEFAULT 0,
    created_on   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS ledger_entries (
    id           BIGSERIAL PRIMARY KEY,
    account      TEXT NOT NULL,
    amount_cents BIGINT NOT NULL,
    type         TEXT NOT NULL,
    loan_id      BIGINT,
    description  TEXT NOT NULL DEFAULT '',
    created_on   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_ledger_entries_account ON ledger_entries(account);

CREATE TABLE IF NOT EXISTS notifications (
    id         BIGSERIAL PRIMARY KEY,
    account    TEXT NOT NULL,
    title      TEXT NOT NULL,
    message    TEXT NOT NULL,
    attributes JSONB NOT NULL DEFAULT '{}',
    is_read    BOOLEAN NOT NULL DEFAULT FALSE,
    created_on TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_notifications_account ON notifications(account);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
