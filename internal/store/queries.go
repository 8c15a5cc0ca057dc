package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lakay-labs/tiraj/internal/draw"
)

// sqlTable maps a registered table name onto its physical table and family.
func sqlTable(table string) (string, draw.Family, error) {
	fam, err := draw.TableFamily(table)
	if err != nil {
		return "", 0, err
	}
	return "draws_" + table, fam, nil
}

// fieldColumns returns the f1..fN column list for a family.
func fieldColumns(fam draw.Family) []string {
	cols := make([]string, fam.FieldCount())
	for i := range cols {
		cols[i] = fmt.Sprintf("f%d", i+1)
	}
	return cols
}

// InsertDraws inserts a batch of draw records in one transaction. Every
// record must carry exactly the table family's field count.
func (s *Store) InsertDraws(table string, records []draw.Record) error {
	tbl, fam, err := sqlTable(table)
	if err != nil {
		return err
	}
	cols := fieldColumns(fam)

	query := fmt.Sprintf(
		"INSERT INTO %s (draw_date, %s) VALUES (?%s)",
		tbl,
		strings.Join(cols, ", "),
		strings.Repeat(", ?", len(cols)),
	)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(query)
	if err != nil {
		return wrapQueryErr("prepare insert", err)
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
			return wrapQueryErr("insert draw", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit draws: %w", err)
	}
	return nil
}

// DrawsOn returns every record whose date is exactly one of dates, batched
// into a single query. Rows come back ordered by date then insertion order
// so repeated runs see identical sequences.
func (s *Store) DrawsOn(table string, dates []time.Time) ([]draw.Record, error) {
	tbl, fam, err := sqlTable(table)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, nil
	}
	cols := fieldColumns(fam)

	placeholders := strings.TrimPrefix(strings.Repeat(", ?", len(dates)), ", ")
	query := fmt.Sprintf(
		"SELECT draw_date, %s FROM %s WHERE draw_date IN (%s) ORDER BY draw_date, id",
		strings.Join(cols, ", "), tbl, placeholders,
	)

	args := make([]any, len(dates))
	for i, d := range dates {
		args[i] = d.Format(draw.DateLayout)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, wrapQueryErr("query draws", err)
	}
	defer rows.Close()

	return scanDraws(rows, fam)
}

// CountDraws returns the number of stored records for a table.
func (s *Store) CountDraws(table string) (int, error) {
	tbl, _, err := sqlTable(table)
	if err != nil {
		return 0, err
	}
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + tbl).Scan(&count); err != nil {
		return 0, wrapQueryErr("count draws", err)
	}
	return count, nil
}

// scanDraws reads rows of (draw_date, f1..fN) into records. Shared with the
// Postgres backend.
func scanDraws(rows *sql.Rows, fam draw.Family) ([]draw.Record, error) {
	var records []draw.Record
	n := fam.FieldCount()

	for rows.Next() {
		var dateStr string
		nulls := make([]sql.NullInt64, n)
		dest := make([]any, 0, n+1)
		dest = append(dest, &dateStr)
		for i := range nulls {
			dest = append(dest, &nulls[i])
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan draw row: %w", err)
		}

		date, err := time.Parse(draw.DateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse draw date %q: %w", dateStr, err)
		}

		rec := draw.Record{Date: date, Fields: make([]draw.Field, n)}
		for i, nv := range nulls {
			if nv.Valid {
				rec.Fields[i] = draw.Num(int(nv.Int64))
			}
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating draws: %w", err)
	}
	return records, nil
}
