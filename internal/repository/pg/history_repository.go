// Package pg implements the history repository on PostgreSQL. It backs the
// shared archive case, where many machines record their navigations into one
// central database instead of a local sqlite file.
package pg

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/oklog/ulid/v2"

	"webpilot/domain/history"
)

type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Connect opens a postgres connection and verifies it is reachable.
func Connect(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the history tables when they are missing.
func (r *HistoryRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	hostname TEXT NOT NULL DEFAULT '',
	platform TEXT NOT NULL DEFAULT '',
	platform_version TEXT NOT NULL DEFAULT '',
	arch TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS navigations (
	id TEXT PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	run_id TEXT NOT NULL,
	method TEXT NOT NULL,
	request_url TEXT NOT NULL,
	final_url TEXT NOT NULL DEFAULT '',
	status INTEGER NOT NULL DEFAULT 0,
	remote BOOLEAN NOT NULL DEFAULT FALSE,
	hops INTEGER NOT NULL DEFAULT 0,
	error TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_navigations_run_id ON navigations (run_id);
`
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

func (r *HistoryRepository) CreateRun(ctx context.Context, run *history.Run) error {
	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, hostname, platform, platform_version, arch)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		run.ID, run.CreatedAt, run.Hostname, run.Platform, run.PlatformVersion, run.Arch)
	return err
}

func (r *HistoryRepository) CreateNavigation(ctx context.Context, nav *history.Navigation) error {
	nav.ID = "nav_" + ulid.Make().String()
	nav.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO navigations (id, created_at, run_id, method, request_url, final_url, status, remote, hops, error)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		nav.ID, nav.CreatedAt, nav.RunID, nav.Method, nav.RequestURL, nav.FinalURL,
		nav.Status, nav.Remote, nav.Hops, nav.Error)
	return err
}

func (r *HistoryRepository) FindNavigations(ctx context.Context, filters history.NavigationFilters) ([]history.Navigation, error) {
	query := `SELECT id, created_at, run_id, method, request_url, final_url, status, remote, hops, error
	          FROM navigations`

	var conds []string
	var args []any
	if filters.RunID != nil {
		args = append(args, *filters.RunID)
		conds = append(conds, fmt.Sprintf("run_id = $%d", len(args)))
	}
	if filters.Remote != nil {
		args = append(args, *filters.Remote)
		conds = append(conds, fmt.Sprintf("remote = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var navs []history.Navigation
	for rows.Next() {
		var nav history.Navigation
		err := rows.Scan(&nav.ID, &nav.CreatedAt, &nav.RunID, &nav.Method, &nav.RequestURL,
			&nav.FinalURL, &nav.Status, &nav.Remote, &nav.Hops, &nav.Error)
		if err != nil {
			return nil, err
		}
		navs = append(navs, nav)
	}
	return navs, rows.Err()
}

func (r *HistoryRepository) CountNavigations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM navigations`).Scan(&count)
	return count, err
}

func (r *HistoryRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM navigations`); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM runs`)
	return err
}
