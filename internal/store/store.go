// Package store is the local snapshot cache: the signed-in profile and the
// last-fetched analysis list, so the dashboard has something to render
// before (or without) a live backend. Bank accounts and transactions are
// deliberately never written here.
package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nidhi-labs/nidhi/internal/api"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store wraps the snapshot database.
type Store struct {
	db *sql.DB
}

// Open opens sqlite with sensible defaults and applies pending migrations.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func runMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}
	err = m.Up()
	if err == migrate.ErrNoChange {
		return nil
	}
	return err
}

// SaveProfile upserts the single cached profile row.
func (s *Store) SaveProfile(ctx context.Context, p api.Profile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profile (id, email, company_name, industry, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email = excluded.email,
			company_name = excluded.company_name,
			industry = excluded.industry,
			updated_at = excluded.updated_at`,
		p.Email, p.CompanyName, p.Industry, now().Format(time.RFC3339))
	return err
}

// Profile returns the cached profile; sql.ErrNoRows when none was saved.
func (s *Store) Profile(ctx context.Context) (api.Profile, error) {
	var p api.Profile
	err := s.db.QueryRowContext(ctx,
		`SELECT email, company_name, industry FROM profile WHERE id = 1`).
		Scan(&p.Email, &p.CompanyName, &p.Industry)
	if err != nil {
		return api.Profile{}, err
	}
	return p, nil
}

// ReplaceAnalyses swaps the cached analysis list for the freshly fetched one.
func (s *Store) ReplaceAnalyses(ctx context.Context, analyses []api.Analysis) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM analyses`); err != nil {
		return err
	}
	for _, a := range analyses {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO analyses (id, file_name, health_score, risk_band, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			a.ID, a.FileName, a.HealthScore, a.RiskBand, a.CreatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Analyses returns the cached analysis list, newest first.
func (s *Store) Analyses(ctx context.Context) ([]api.Analysis, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, file_name, health_score, risk_band, created_at
		FROM analyses ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []api.Analysis
	for rows.Next() {
		var a api.Analysis
		var created string
		if err := rows.Scan(&a.ID, &a.FileName, &a.HealthScore, &a.RiskBand, &created); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339, created); err == nil {
			a.CreatedAt = ts
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// now returns UTC time truncated to seconds (consistent with SQLite default).
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
