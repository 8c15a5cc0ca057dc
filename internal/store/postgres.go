package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lakay-labs/tiraj/internal/draw"

	_ "github.com/lib/pq"
)

// Postgres provides draw storage on a shared PostgreSQL database. It
// implements the same DrawStore contract as the SQLite Store; the engine
// cannot tell them apart.
type Postgres struct {
	db *sql.DB
}

// NewPostgres connects to dsn and verifies the connection.
func NewPostgres(dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return &Postgres{db: db}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}

// CreateSchema creates all draw tables and indexes.
func (p *Postgres) CreateSchema() error {
	if _, err := p.db.Exec(pgSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const pgSchema = `
CREATE TABLE IF NOT EXISTS draws_matin (
    id SERIAL PRIMARY KEY,
    draw_date DATE NOT NULL,
    f1 INTEGER, f2 INTEGER, f3 INTEGER, f4 INTEGER, f5 INTEGER, f6 INTEGER, f7 INTEGER
);

CREATE TABLE IF NOT EXISTS draws_soir (
    id SERIAL PRIMARY KEY,
    draw_date DATE NOT NULL,
    f1 INTEGER, f2 INTEGER, f3 INTEGER, f4 INTEGER, f5 INTEGER, f6 INTEGER, f7 INTEGER
);

CREATE TABLE IF NOT EXISTS draws_loto (
    id SERIAL PRIMARY KEY,
    draw_date DATE NOT NULL,
    f1 INTEGER, f2 INTEGER, f3 INTEGER, f4 INTEGER, f5 INTEGER,
    f6 INTEGER, f7 INTEGER, f8 INTEGER, f9 INTEGER, f10 INTEGER
);

CREATE INDEX IF NOT EXISTS idx_draws_matin_date ON draws_matin(draw_date);
CREATE INDEX IF NOT EXISTS idx_draws_soir_date ON draws_soir(draw_date);
CREATE INDEX IF NOT EXISTS idx_draws_loto_date ON draws_loto(draw_date);
`

// InsertDraws inserts a batch of draw records in one transaction.
func (p *Postgres) InsertDraws(table string, records []draw.Record) error {
	tbl, fam, err := sqlTable(table)
	if err != nil {
		return err
	}
	cols := fieldColumns(fam)

	ph := make([]string, len(cols)+1)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (draw_date, %s) VALUES (%s)",
		tbl, strings.Join(cols, ", "), strings.Join(ph, ", "),
	)

	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if len(rec.Fields) != fam.FieldCount() {
			return fmt.Errorf("record for %s has %d fields, want %d", table, len(rec.Fields), fam.FieldCount())
		}
		args := make([]any, 0, len(cols)+1)
		args = append(args, rec.Date.Format(draw.DateLayout))
		for _, f := range rec.Fields {
			if f.Valid {
				args = append(args, f.Value)
			} else {
				args = append(args, nil)
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert draw: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit draws: %w", err)
	}
	return nil
}

// DrawsOn returns every record dated exactly on one of dates, in one query.
func (p *Postgres) DrawsOn(table string, dates []time.Time) ([]draw.Record, error) {
	tbl, fam, err := sqlTable(table)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, nil
	}
	cols := fieldColumns(fam)

	ph := make([]string, len(dates))
	args := make([]any, len(dates))
	for i, d := range dates {
		ph[i] = fmt.Sprintf("$%d", i+1)
		args[i] = d.Format(draw.DateLayout)
	}
	query := fmt.Sprintf(
		"SELECT to_char(draw_date, 'YYYY-MM-DD'), %s FROM %s WHERE draw_date IN (%s) ORDER BY draw_date, id",
		strings.Join(cols, ", "), tbl, strings.Join(ph, ", "),
	)

	rows, err := p.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query draws: %w", err)
	}
	defer rows.Close()

	return scanDraws(rows, fam)
}
