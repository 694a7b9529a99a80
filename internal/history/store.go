package history

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"biaslab/internal/config"
)

// Store manages the analysis history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the history database and applies the
// schema. A file lock beside the database serializes writers across
// concurrent CLI invocations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "history.db")
	fileLock := flock.New(dbPath + ".lock")
	if err := fileLock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire history lock: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = fileLock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = fileLock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: fileLock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = fileLock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close releases the database connection and the file lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record inserts one analysis entry. CreatedAt defaults to now when unset.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO analyses (article_id, title, outlet, overall, band, verdict, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ArticleID,
		entry.Title,
		entry.Outlet,
		entry.Overall,
		entry.Band,
		entry.Verdict,
		createdAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

// List returns up to limit entries, most recent first.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, article_id, title, outlet, overall, band, verdict, created_at
           FROM analyses ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var createdAt string
		if err := rows.Scan(&entry.ID, &entry.ArticleID, &entry.Title, &entry.Outlet,
			&entry.Overall, &entry.Band, &entry.Verdict, &createdAt); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			entry.CreatedAt = parsed
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analyses: %w", err)
	}
	return entries, nil
}

// Clear removes every recorded entry.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM analyses"); err != nil {
		return fmt.Errorf("clear analyses: %w", err)
	}
	return nil
}
