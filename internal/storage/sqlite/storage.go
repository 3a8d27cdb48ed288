package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/velmark/screenhunt/internal/model"
	"github.com/velmark/screenhunt/internal/storage"
)

// Storage implements the storage interface over a single SQLite file.
//
// Every write runs inside its own transaction so the disqualification
// cascade and the full reset are either fully applied or rolled back.
type Storage struct {
	sqlDB *sql.DB
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Open opens (or creates) the SQLite database at path and ensures the
// schema exists. Fatal on unreachable storage; callers should abort startup.
func Open(path string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := migrate(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Storage{sqlDB: sqlDB}, nil
}

// Close releases the underlying database handle
func (s *Storage) Close() error {
	return s.sqlDB.Close()
}

// toMillis normalizes timestamps into millisecond precision for storage
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// inTx runs fn inside a transaction, committing on nil error
func (s *Storage) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := sq.Select("1").From("players").Where(sq.Eq{"id": string(player.ID)}).ToSql()
		if err != nil {
			return err
		}
		var found int
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&found); err == nil {
			return model.ErrPlayerExists
		} else if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		query, args, err = sq.Insert("players").
			Columns("id", "static_id", "nickname", "registered_at", "disqualified").
			Values(string(player.ID), player.StaticID, player.Nickname, toMillis(player.RegisteredAt), boolToInt(player.Disqualified)).
			ToSql()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, query, args...)
		return err
	})
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	query, args, err := sq.Select("id", "static_id", "nickname", "registered_at", "disqualified").
		From("players").
		Where(sq.Eq{"id": string(id)}).
		ToSql()
	if err != nil {
		return nil, err
	}
	player, err := scanPlayer(s.sqlDB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

func (s *Storage) SetDisqualified(ctx context.Context, id model.PlayerID, disqualified bool) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := sq.Update("players").
			Set("disqualified", boolToInt(disqualified)).
			Where(sq.Eq{"id": string(id)}).
			ToSql()
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return model.ErrPlayerNotFound
		}

		query, args, err = sq.Update("submissions").
			Set("valid", boolToInt(!disqualified)).
			Where(sq.Eq{"owner": string(id)}).
			ToSql()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, query, args...)
		return err
	})
}

func (s *Storage) PlayerCount(ctx context.Context) (int, error) {
	var count int
	err := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM players").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Submission operations

func (s *Storage) CreateSubmission(ctx context.Context, sub *model.Submission) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := sq.Insert("submissions").
			Columns("owner", "resource_url", "submitted_at", "valid", "approval").
			Values(string(sub.Owner), sub.ResourceURL, toMillis(sub.SubmittedAt), boolToInt(sub.Valid), string(sub.Approval)).
			ToSql()
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		sub.ID = model.SubmissionID(id)
		return nil
	})
}

func (s *Storage) GetSubmission(ctx context.Context, id model.SubmissionID) (*model.Submission, error) {
	query, args, err := sq.Select(submissionColumns...).
		From("submissions").
		Where(sq.Eq{"submission_id": int64(id)}).
		ToSql()
	if err != nil {
		return nil, err
	}
	sub, err := scanSubmission(s.sqlDB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrSubmissionNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *Storage) SubmissionsByOwner(ctx context.Context, owner model.PlayerID) ([]*model.Submission, error) {
	query, args, err := sq.Select(submissionColumns...).
		From("submissions").
		Where(sq.Eq{"owner": string(owner)}).
		OrderBy("submitted_at DESC", "submission_id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var subs []*model.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

const submissionOrdinalQuery = `
SELECT COUNT(*) + 1
FROM submissions s1
WHERE s1.owner = ?
  AND s1.submitted_at < (
    SELECT s2.submitted_at FROM submissions s2 WHERE s2.submission_id = ?
  );
`

func (s *Storage) SubmissionOrdinal(ctx context.Context, owner model.PlayerID, id model.SubmissionID) (int, error) {
	// A missing target makes the subquery NULL, the comparison matches
	// nothing, and the query degenerates to 1.
	var ordinal int
	err := s.sqlDB.QueryRowContext(ctx, submissionOrdinalQuery, string(owner), int64(id)).Scan(&ordinal)
	if err != nil {
		return 0, err
	}
	return ordinal, nil
}

func (s *Storage) SetApproval(ctx context.Context, id model.SubmissionID, approval model.Approval) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := sq.Update("submissions").
			Set("approval", string(approval)).
			Where(sq.Eq{"submission_id": int64(id)}).
			ToSql()
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return model.ErrSubmissionNotFound
		}
		return nil
	})
}

// Reporting operations

const leaderboardQuery = `
SELECT p.id, p.nickname, COUNT(s.submission_id) AS valid_count
FROM players p
LEFT JOIN submissions s ON p.id = s.owner AND s.valid = 1
WHERE p.disqualified = 0
GROUP BY p.id, p.nickname
ORDER BY valid_count DESC, p.id ASC;
`

func (s *Storage) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	rows, err := s.sqlDB.QueryContext(ctx, leaderboardQuery)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		var entry model.LeaderboardEntry
		var id string
		if err := rows.Scan(&id, &entry.Nickname, &entry.ValidCount); err != nil {
			return nil, err
		}
		entry.Identity = model.PlayerID(id)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

const approvedStatsQuery = `
SELECT p.id, p.nickname, p.static_id, COUNT(s.submission_id) AS approved_count
FROM players p
LEFT JOIN submissions s ON p.id = s.owner AND s.valid = 1 AND s.approval = 'approved'
WHERE p.disqualified = 0
GROUP BY p.id, p.nickname, p.static_id
HAVING approved_count > 0
ORDER BY approved_count DESC, p.id ASC;
`

func (s *Storage) ApprovedStats(ctx context.Context) ([]model.ApprovedStat, error) {
	rows, err := s.sqlDB.QueryContext(ctx, approvedStatsQuery)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var stats []model.ApprovedStat
	for rows.Next() {
		var stat model.ApprovedStat
		var id string
		if err := rows.Scan(&id, &stat.Nickname, &stat.StaticID, &stat.ApprovedCount); err != nil {
			return nil, err
		}
		stat.Identity = model.PlayerID(id)
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

const leaderboardByApprovedQuery = `
SELECT p.id, p.nickname,
       COUNT(s.submission_id) AS total_valid,
       COUNT(CASE WHEN s.approval = 'approved' THEN 1 END) AS approved_count
FROM players p
LEFT JOIN submissions s ON p.id = s.owner AND s.valid = 1
WHERE p.disqualified = 0
GROUP BY p.id, p.nickname
HAVING total_valid > 0
ORDER BY approved_count DESC, total_valid DESC, p.id ASC;
`

func (s *Storage) LeaderboardByApproved(ctx context.Context) ([]model.ApprovedLeaderboardEntry, error) {
	rows, err := s.sqlDB.QueryContext(ctx, leaderboardByApprovedQuery)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []model.ApprovedLeaderboardEntry
	for rows.Next() {
		var entry model.ApprovedLeaderboardEntry
		var id string
		if err := rows.Scan(&id, &entry.Nickname, &entry.TotalValid, &entry.ApprovedCount); err != nil {
			return nil, err
		}
		entry.Identity = model.PlayerID(id)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Reset deletes all players and submissions in one transaction
func (s *Storage) Reset(ctx context.Context) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM submissions"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, "DELETE FROM players")
		return err
	})
}

// Scanning helpers

var submissionColumns = []string{"submission_id", "owner", "resource_url", "submitted_at", "valid", "approval"}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*model.Player, error) {
	var id string
	var registeredAt int64
	var disqualified int
	player := &model.Player{}
	if err := row.Scan(&id, &player.StaticID, &player.Nickname, &registeredAt, &disqualified); err != nil {
		return nil, err
	}
	player.ID = model.PlayerID(id)
	player.RegisteredAt = fromMillis(registeredAt)
	player.Disqualified = disqualified != 0
	return player, nil
}

func scanSubmission(row rowScanner) (*model.Submission, error) {
	var id int64
	var owner string
	var submittedAt int64
	var valid int
	var approval string
	sub := &model.Submission{}
	if err := row.Scan(&id, &owner, &sub.ResourceURL, &submittedAt, &valid, &approval); err != nil {
		return nil, err
	}
	sub.ID = model.SubmissionID(id)
	sub.Owner = model.PlayerID(owner)
	sub.SubmittedAt = fromMillis(submittedAt)
	sub.Valid = valid != 0
	sub.Approval = model.Approval(approval)
	return sub, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
