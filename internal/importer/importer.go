// Package importer loads historical draw records from CSV files into a
// draw store. The expected layout is one draw per line:
//
//	date,f1,...,fN
//
// where date is YYYY-MM-DD and N matches the target table's family (7 or
// 10). Blank fields are stored as nulls. An optional header line is
// detected and skipped. Malformed lines are counted and skipped, never
// fatal: a partial import of a messy file beats no import.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lakay-labs/tiraj/internal/draw"
)

// Target is the slice of the store the importer needs.
type Target interface {
	InsertDraws(table string, records []draw.Record) error
}

// Result summarizes one import run.
type Result struct {
	Imported int
	Skipped  int
}

// ImportFile reads the CSV at path into the given table.
func ImportFile(tgt Target, table, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Import(tgt, table, f)
}

// Import reads CSV draw records from r into the given table.
func Import(tgt Target, table string, r io.Reader) (*Result, error) {
	fam, err := draw.TableFamily(table)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row length validated per line below
	reader.TrimLeadingSpace = true

	res := &Result{}
	var records []draw.Record

	for lineNo := 1; ; lineNo++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Skipped++
			continue
		}

		rec, ok := parseRow(row, fam)
		if !ok {
			// The first unparseable line is usually a header; either way it
			// is skipped, just not counted as data when it is line 1.
			if lineNo > 1 {
				res.Skipped++
			}
			continue
		}

		records = append(records, rec)
		res.Imported++
	}

	if len(records) > 0 {
		if err := tgt.InsertDraws(table, records); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// parseRow turns one CSV row into a record. The row must carry the date
// plus exactly the family's field count; each field is blank (null) or an
// integer in [0,99].
func parseRow(row []string, fam draw.Family) (draw.Record, bool) {
	n := fam.FieldCount()
	if len(row) != n+1 {
		return draw.Record{}, false
	}

	date, err := time.Parse(draw.DateLayout, strings.TrimSpace(row[0]))
	if err != nil {
		return draw.Record{}, false
	}

	rec := draw.Record{Date: date, Fields: make([]draw.Field, n)}
	for i := 0; i < n; i++ {
		cell := strings.TrimSpace(row[i+1])
		if cell == "" {
			continue // null field
		}
		v, err := strconv.Atoi(cell)
		if err != nil || v < 0 || v > 99 {
			return draw.Record{}, false
		}
		rec.Fields[i] = draw.Num(v)
	}
	return rec, true
}
