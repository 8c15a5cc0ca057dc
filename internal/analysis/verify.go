package analysis

import (
	"time"

	"github.com/lakay-labs/tiraj/internal/dateutil"
	"github.com/lakay-labs/tiraj/internal/draw"
	"github.com/lakay-labs/tiraj/internal/match"
)

// VerifyRequest drives the single-day verifier: one target weekday, a flat
// number list, seven weeks back.
type VerifyRequest struct {
	ReferenceDate time.Time
	Numbers       []string
	Table         string
	Day           draw.Weekday
}

// VerifyDay scans the last seven occurrences of one weekday and matches
// every record field against the flat input-number list. There is no
// per-day split here because there is only one day. Within a single record,
// hits are deduplicated by (number, match type) so the same match is never
// reported twice for one draw.
func (e *Engine) VerifyDay(req VerifyRequest) ([]VerificationHit, error) {
	if _, err := draw.TableFamily(req.Table); err != nil {
		return nil, err
	}

	var targets []int
	for _, in := range ParseInputs(req.Numbers) {
		targets = append(targets, in.Value)
	}

	var hits []VerificationHit
	for week := 1; week <= VerifyWeeksBack; week++ {
		date := dateutil.ResolveSingleDayPreviousWeek(req.ReferenceDate, req.Day, week)

		records, err := e.source.DrawsOn(req.Table, []time.Time{date})
		if err != nil {
			// Same best-effort policy as the day-pair scan.
			continue
		}

		for _, rec := range records {
			if !dateutil.Civil(rec.Date).Equal(date) {
				continue
			}
			seen := make(map[string]bool)
			for _, f := range rec.Fields {
				if !f.Valid {
					continue
				}
				res, ok := match.Check(f.Value, targets)
				if !ok {
					continue
				}
				key := match.DedupeKey(res.Number, res.Type)
				if seen[key] {
					continue
				}
				seen[key] = true
				hits = append(hits, VerificationHit{
					Week:   week,
					Date:   date.Format(draw.DateLayout),
					Number: res.Number,
					Type:   res.Type,
				})
			}
		}
	}

	return hits, nil
}
