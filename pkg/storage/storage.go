package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/sw33tLie/lookalike/pkg/confusables"
	"github.com/sw33tLie/lookalike/pkg/corpus"
)

type DB struct {
	sql *sql.DB
}

func Open(path string) (*DB, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	// Ensure schema exists for convenience.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS confusables (
  source      INTEGER PRIMARY KEY,
  char        TEXT NOT NULL,
  target      TEXT NOT NULL,
  block       TEXT NOT NULL,
  comment     TEXT,
  in_filtered INTEGER NOT NULL CHECK (in_filtered IN (0,1))
);
CREATE INDEX IF NOT EXISTS idx_confusables_target ON confusables(target);
CREATE TABLE IF NOT EXISTS benchmark_rows (
  seq              INTEGER PRIMARY KEY,
  id               TEXT NOT NULL UNIQUE,
  identifier       TEXT NOT NULL,
  label            TEXT NOT NULL CHECK (label IN ('malicious','benign')),
  protected_target TEXT NOT NULL,
  category         TEXT NOT NULL,
  threat_class     TEXT,
  notes            TEXT,
  UNIQUE(identifier, label, protected_target, category)
);
CREATE INDEX IF NOT EXISTS idx_rows_category ON benchmark_rows(category);
CREATE INDEX IF NOT EXISTS idx_rows_target ON benchmark_rows(protected_target);
    `); err != nil {
		db.Close()
		return nil, err
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// ReplaceRun swaps the stored tables and corpus for the given run inside one
// transaction, so readers never observe a half-written run.
func (d *DB) ReplaceRun(ctx context.Context, full, filtered *confusables.Map, rows []corpus.Row) (err error) {
	tx, err := d.sql.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM confusables`); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM benchmark_rows`); err != nil {
		return err
	}

	if full != nil {
		for _, e := range full.Entries() {
			inFiltered := false
			if filtered != nil {
				_, inFiltered = filtered.Get(e.Source)
			}
			_, err = tx.ExecContext(ctx, `INSERT INTO confusables(source, char, target, block, comment, in_filtered) VALUES(?,?,?,?,?,?)`,
				int64(e.Source), string(e.Source), string(e.Target), confusables.BlockOf(e.Source), nullIfEmpty(e.Comment), boolToInt(inFiltered))
			if err != nil {
				return fmt.Errorf("insert confusable %s: %w", e.Codepoint(), err)
			}
		}
	}

	for i, r := range rows {
		_, err = tx.ExecContext(ctx, `INSERT INTO benchmark_rows(seq, id, identifier, label, protected_target, category, threat_class, notes) VALUES(?,?,?,?,?,?,?,?)`,
			i+1, r.ID, r.Identifier, r.Label, r.ProtectedTarget, r.Category, nullIfEmpty(r.ThreatClass), nullIfEmpty(r.Notes))
		if err != nil {
			return fmt.Errorf("insert row %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// ListOptions controls selection when listing corpus rows.
type ListOptions struct {
	Category string
	Label    string
	Target   string
	Limit    int
}

// ListRows returns stored rows in emission order.
func (d *DB) ListRows(ctx context.Context, opts ListOptions) ([]corpus.Row, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	if opts.Category != "" {
		where += " AND category = ?"
		args = append(args, opts.Category)
	}
	if opts.Label != "" {
		where += " AND label = ?"
		args = append(args, opts.Label)
	}
	if opts.Target != "" {
		where += " AND protected_target = ?"
		args = append(args, opts.Target)
	}
	q := "SELECT id, identifier, label, protected_target, category, threat_class, notes FROM benchmark_rows " + where + " ORDER BY seq"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := d.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []corpus.Row
	for rows.Next() {
		var r corpus.Row
		var threat, notes sql.NullString
		if err := rows.Scan(&r.ID, &r.Identifier, &r.Label, &r.ProtectedTarget, &r.Category, &threat, &notes); err != nil {
			return nil, err
		}
		r.ThreatClass = threat.String
		r.Notes = notes.String
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LookupConfusable returns the stored entry for source, or false.
func (d *DB) LookupConfusable(ctx context.Context, source rune) (ConfusableRecord, bool, error) {
	var rec ConfusableRecord
	var src int64
	var comment sql.NullString
	var inFiltered int
	err := d.sql.QueryRowContext(ctx, "SELECT source, target, block, comment, in_filtered FROM confusables WHERE source = ?", int64(source)).
		Scan(&src, &rec.Target, &rec.Block, &comment, &inFiltered)
	if err == sql.ErrNoRows {
		return ConfusableRecord{}, false, nil
	}
	if err != nil {
		return ConfusableRecord{}, false, err
	}
	rec.Source = rune(src)
	rec.Comment = comment.String
	rec.InFiltered = inFiltered == 1
	return rec, true, nil
}

// GetStats counts corpus rows per category and label.
func (d *DB) GetStats(ctx context.Context) ([]CategoryStats, error) {
	query := `
		SELECT
			category,
			label,
			COUNT(*)
		FROM
			benchmark_rows
		GROUP BY
			category, label
		ORDER BY
			label DESC, category;
	`
	rows, err := d.sql.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []CategoryStats
	for rows.Next() {
		var s CategoryStats
		if err := rows.Scan(&s.Category, &s.Label, &s.Rows); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// CountConfusables returns the number of stored full and filtered entries.
func (d *DB) CountConfusables(ctx context.Context) (full, filtered int, err error) {
	err = d.sql.QueryRowContext(ctx, "SELECT COUNT(*), COALESCE(SUM(in_filtered), 0) FROM confusables").Scan(&full, &filtered)
	return full, filtered, err
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
