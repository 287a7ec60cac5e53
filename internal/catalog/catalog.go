// Package catalog persists scan results in a local sqlite database so
// past runs can be reviewed with the history command. Nothing is
// written unless the caller opts in.
package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/mod/semver"
	_ "modernc.org/sqlite"

	"modscan/internal/scan"
)

//go:embed schema.sql
var schemaSQL string

// Catalog wraps the sqlite connection holding recorded scans.
type Catalog struct {
	db *sql.DB
}

// Entry is one recorded scan.
type Entry struct {
	ID          int64
	ScannedAt   time.Time
	Source      string
	ModuleCount int
}

// Open initializes the database connection and runs schema setup.
func Open(ctx context.Context, path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping catalog: %w", err)
	}

	// Schema setup is idempotent; the embedded SQL only creates what
	// is missing.
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to setup schema: %w", err)
	}

	return &Catalog{db: db}, nil
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// withTx executes fn within a database transaction.
func (c *Catalog) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false

	defer func() {
		if !committed {
			if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				slog.Warn("catalog rollback failed", "error", err)
			}
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	committed = true

	return nil
}

// RecordScan stores one scanned file together with the records it
// contributed.
func (c *Catalog) RecordScan(ctx context.Context, source string, records []scan.Record) error {
	return c.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO scans (scanned_at, source, module_count) VALUES (?, ?, ?)`,
			time.Now().UnixNano(), source, len(records))
		if err != nil {
			return fmt.Errorf("failed to insert scan: %w", err)
		}

		scanID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read scan id: %w", err)
		}

		for _, rec := range records {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO scan_modules (scan_id, name, version) VALUES (?, ?, ?)`,
				scanID, rec.Name, rec.Version); err != nil {
				return fmt.Errorf("failed to insert module %s: %w", rec.Name, err)
			}
		}

		return nil
	})
}

// RecentScans returns the newest entries first, at most limit of them
// (0 means all).
func (c *Catalog) RecentScans(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, scanned_at, source, module_count FROM scans ORDER BY scanned_at DESC, id DESC`

	args := make([]any, 0, 1)

	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}

	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry

	for rows.Next() {
		var (
			entry Entry
			nanos int64
		)

		if err := rows.Scan(&entry.ID, &nanos, &entry.Source, &entry.ModuleCount); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		entry.ScannedAt = time.Unix(0, nanos)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// ModulesForScan returns the records stored for one scan, sorted by
// name, newest version first for equal names.
func (c *Catalog) ModulesForScan(ctx context.Context, scanID int64) ([]scan.Record, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT name, version FROM scan_modules WHERE scan_id = ?`, scanID)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}

	defer func() {
		_ = rows.Close()
	}()

	var records []scan.Record

	for rows.Next() {
		var rec scan.Record

		if err := rows.Scan(&rec.Name, &rec.Version); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Name != records[j].Name {
			return records[i].Name < records[j].Name
		}

		return semver.Compare(records[i].Version, records[j].Version) > 0
	})

	return records, nil
}
