// Package analysis implements the historical pattern-matching engine: it
// maps trigger numbers to catalog sets, walks N weeks back resolving the
// concrete dates of each set's day-pair, pulls the draw records for those
// dates and evaluates every field under the strict and digit-reversal
// rules.
package analysis

import (
	"strconv"
	"strings"
	"time"

	"github.com/lakay-labs/tiraj/internal/catalog"
	"github.com/lakay-labs/tiraj/internal/dateutil"
	"github.com/lakay-labs/tiraj/internal/draw"
	"github.com/lakay-labs/tiraj/internal/match"
)

// Engine runs analyses against one catalog and one record source. It holds
// no mutable state; a single Engine can serve any number of sequential
// runs.
type Engine struct {
	catalog catalog.Catalog
	source  RecordSource
}

// New creates an engine. The catalog is typically catalog.Default();
// tests inject smaller ones.
func New(cat catalog.Catalog, source RecordSource) *Engine {
	return &Engine{catalog: cat, source: source}
}

// Request carries everything one analysis run depends on. The engine reads
// no clock of its own: identical requests against an identical source
// produce identical reports.
type Request struct {
	ReferenceDate time.Time
	Numbers       []string
	Table         string
	WeeksBack     int // 0 means DefaultWeeksBack
}

// ParseInputs filters the raw request numbers down to usable inputs. Blank
// entries, non-numeric entries and values outside [0,99] contribute
// nothing and produce no error.
func ParseInputs(numbers []string) []Input {
	var inputs []Input
	for i, raw := range numbers {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 || v > 99 {
			continue
		}
		inputs = append(inputs, Input{Index: i, Value: v})
	}
	return inputs
}

// BuildSets groups inputs by the pattern sets that contain them, preserving
// catalog declaration order for each input and first-seen order across
// inputs. Sets with fewer than two day keys cannot form a day-pair and are
// skipped. Inputs no set contains are silently dropped here; the caller is
// the one to surface "nothing to analyze" when the result is empty.
func BuildSets(cat catalog.Catalog, inputs []Input) []Set {
	var sets []Set
	byID := make(map[string]int)

	for _, in := range inputs {
		for _, ps := range cat.Lookup(in.Value) {
			if len(ps.Days) < 2 {
				continue
			}
			id := ps.ID()
			pos, ok := byID[id]
			if !ok {
				pos = len(sets)
				byID[id] = pos
				sets = append(sets, Set{ID: id, Pattern: ps})
			}
			sets[pos].Inputs = append(sets[pos].Inputs, in)
		}
	}

	return sets
}

// Analyze runs the day-pair scan: for every set, for every week back, it
// resolves the two dates, fetches both days' records in one query, matches
// each record's fields against that day's numbers only, and attributes
// every hit to every input in the set. A failed query degrades to an empty
// WeekCheck for that week; the scan always covers the full horizon.
func (e *Engine) Analyze(req Request) (*Report, error) {
	if _, err := draw.TableFamily(req.Table); err != nil {
		return nil, err
	}
	weeks := req.WeeksBack
	if weeks <= 0 {
		weeks = DefaultWeeksBack
	}

	inputs := ParseInputs(req.Numbers)
	sets := BuildSets(e.catalog, inputs)

	report := &Report{}
	checksBySet := make(map[string][]WeekCheck, len(sets))

	for _, set := range sets {
		day1 := set.Pattern.Days[0]
		day2 := set.Pattern.Days[1]

		checks := make([]WeekCheck, 0, weeks)
		for week := 1; week <= weeks; week++ {
			pair := dateutil.ResolvePreviousWeek(req.ReferenceDate, day1.Day, day2.Day, week)
			wc := WeekCheck{
				Week:  week,
				Date1: pair.Day1.Format(draw.DateLayout),
				Date2: pair.Day2.Format(draw.DateLayout),
			}

			records, err := e.source.DrawsOn(req.Table, []time.Time{pair.Day1, pair.Day2})
			if err != nil {
				// Best effort: a failed week is recorded as checked with no
				// hits rather than aborting the remaining weeks.
				checks = append(checks, wc)
				continue
			}

			for _, rec := range records {
				// Strict per-day assignment: a record is only ever compared
				// against the numbers of the day it fell on.
				var targets []int
				recDate := dateutil.Civil(rec.Date)
				switch {
				case recDate.Equal(pair.Day1):
					targets = day1.Numbers
				case recDate.Equal(pair.Day2):
					targets = day2.Numbers
				default:
					continue
				}

				for _, f := range rec.Fields {
					if !f.Valid {
						continue
					}
					res, ok := match.Check(f.Value, targets)
					if !ok {
						continue
					}
					wc.Hits = append(wc.Hits, HistoricalHit{
						Week:        week,
						Date:        recDate.Format(draw.DateLayout),
						NumberFound: res.Number,
						Type:        res.Type,
					})
					for _, in := range set.Inputs {
						report.Raw = append(report.Raw, Hit{
							Label:  in.Label(),
							Week:   week,
							Number: res.Number,
							Type:   res.Type,
						})
					}
				}
			}

			checks = append(checks, wc)
		}
		checksBySet[set.ID] = checks
	}

	// One log entry per (input, set) membership, in original input order.
	for _, in := range inputs {
		for _, set := range sets {
			if !setHasInput(set, in.Index) {
				continue
			}
			report.Log = append(report.Log, LogEntry{
				InputLabel:  in.Label(),
				InputNumber: in.Value,
				SetID:       set.ID,
				Weeks:       checksBySet[set.ID],
			})
		}
	}

	return report, nil
}

func setHasInput(set Set, index int) bool {
	for _, in := range set.Inputs {
		if in.Index == index {
			return true
		}
	}
	return false
}

// Catalog exposes the engine's catalog for surfaces that render it.
func (e *Engine) Catalog() catalog.Catalog {
	return e.catalog
}
