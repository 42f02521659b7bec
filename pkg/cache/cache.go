package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Memory is a response cache held in an in-memory sqlite database. Nothing is
// written to disk and the contents are gone once it is closed.
type Memory struct {
	db  *sqlx.DB
	ttl time.Duration
	now func() time.Time
}

type Option func(*Memory)

// WithTTL makes entries older than ttl miss. Zero keeps entries forever.
func WithTTL(ttl time.Duration) Option {
	return func(m *Memory) { m.ttl = ttl }
}

func withClock(now func() time.Time) Option {
	return func(m *Memory) { m.now = now }
}

type entry struct {
	Key       string `db:"key"`
	Body      []byte `db:"body"`
	FetchedAt int64  `db:"fetched_at"`
}

func NewMemory(ctx context.Context, opts ...Option) (*Memory, error) {
	db, err := sqlx.Open("sqlite3", "file::memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// every new connection would get its own empty in-memory database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	_, err = db.ExecContext(ctx,
		/* sql */ `
		CREATE TABLE IF NOT EXISTS response (
			key        TEXT PRIMARY KEY,
			body       BLOB NOT NULL,
			fetched_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to create cache table: %w", err)
	}

	m := &Memory{db: db, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

func (m *Memory) Close() error {
	return m.db.Close()
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var e entry
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT key, body, fetched_at
		FROM response
		WHERE key = ?
	`, key).StructScan(&e)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("error while reading cache entry %q: %w", key, err)
	}

	if m.ttl > 0 && m.now().Sub(time.Unix(0, e.FetchedAt)) > m.ttl {
		return nil, false, nil
	}

	return e.Body, true, nil
}

func (m *Memory) Set(ctx context.Context, key string, body []byte) error {
	_, err := m.db.NamedExecContext(ctx,
		/* sql */ `
		INSERT INTO response (key, body, fetched_at)
		VALUES (:key, :body, :fetched_at)
		ON CONFLICT (key) DO UPDATE SET
			body = excluded.body,
			fetched_at = excluded.fetched_at
	`, entry{Key: key, Body: body, FetchedAt: m.now().UnixNano()})
	if err != nil {
		return fmt.Errorf("error while writing cache entry %q: %w", key, err)
	}

	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	_, err := m.db.ExecContext(ctx,
		/* sql */ `
		DELETE FROM response
		WHERE key = ?
	`, key)
	if err != nil {
		return fmt.Errorf("error while deleting cache entry %q: %w", key, err)
	}

	return nil
}

func (m *Memory) Len(ctx context.Context) (int, error) {
	var n int
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT COUNT(*)
		FROM response
	`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("error while counting cache entries: %w", err)
	}

	return n, nil
}
