package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
)

const createPlayersTable = `
CREATE TABLE IF NOT EXISTS players (
    id TEXT PRIMARY KEY,
    static_id TEXT NOT NULL,
    nickname TEXT NOT NULL,
    registered_at INTEGER NOT NULL,
    disqualified INTEGER NOT NULL DEFAULT 0
);
`

const createSubmissionsTable = `
CREATE TABLE IF NOT EXISTS submissions (
    submission_id INTEGER PRIMARY KEY AUTOINCREMENT,
    owner TEXT NOT NULL,
    resource_url TEXT NOT NULL,
    submitted_at INTEGER NOT NULL,
    valid INTEGER NOT NULL DEFAULT 1,
    approval TEXT NOT NULL DEFAULT 'pending',
    FOREIGN KEY (owner) REFERENCES players (id)
);
`

// addApprovalColumn upgrades databases created before moderation verdicts
// were tracked. Attempted unconditionally; the resulting "duplicate column"
// failure on current schemas is swallowed.
const addApprovalColumn = `
ALTER TABLE submissions ADD COLUMN approval TEXT NOT NULL DEFAULT 'pending';
`

// migrate ensures both tables exist and upgrades older schemas.
// Safe to run on every open regardless of the database's current state.
func migrate(sqlDB *sql.DB) error {
	if _, err := sqlDB.Exec(createPlayersTable); err != nil {
		return fmt.Errorf("create players table: %w", err)
	}
	if _, err := sqlDB.Exec(createSubmissionsTable); err != nil {
		return fmt.Errorf("create submissions table: %w", err)
	}
	if _, err := sqlDB.Exec(addApprovalColumn); err != nil && !isAlreadyExistsError(err) {
		return fmt.Errorf("add approval column: %w", err)
	}
	return nil
}

// isAlreadyExistsError reports whether this error indicates idempotent DDL success
func isAlreadyExistsError(err error) bool {
	value := strings.ToLower(err.Error())
	return strings.Contains(value, "already exists") || strings.Contains(value, "duplicate column name")
}
