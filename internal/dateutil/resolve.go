// Package dateutil implements the calendar arithmetic behind the week-back
// scans: finding the most recent occurrence of a weekday and resolving the
// day-pair dates for each prior week.
//
// All functions are pure and total over valid weekdays. Results are
// normalized to midnight UTC so that two dates compare equal iff they are
// the same calendar day.
package dateutil

import (
	"time"

	"github.com/lakay-labs/tiraj/internal/draw"
)

// DatePair holds the two resolved dates of one scanned week.
type DatePair struct {
	Day1 time.Time
	Day2 time.Time
}

// Civil truncates a timestamp to its calendar date at midnight UTC.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MostRecentOccurrence returns the latest date on or before ref whose
// weekday equals day. A reference that already falls on day resolves to
// itself.
func MostRecentOccurrence(ref time.Time, day draw.Weekday) time.Time {
	ref = Civil(ref)
	back := (int(ref.Weekday()) - int(day.Time()) + 7) % 7
	return ref.AddDate(0, 0, -back)
}

// ResolveWeekPair resolves both days of a catalog day-pair against ref.
// If day2 resolves strictly earlier than day1, day1's occurrence has not
// had its day2 yet (the pair crossed a week boundary, e.g. dimanche→lundi
// seen from a Sunday); day1 is pushed back a full week so day2 always falls
// in the same week span as day1 or after it.
func ResolveWeekPair(ref time.Time, day1, day2 draw.Weekday) DatePair {
	p := DatePair{
		Day1: MostRecentOccurrence(ref, day1),
		Day2: MostRecentOccurrence(ref, day2),
	}
	if p.Day2.Before(p.Day1) {
		p.Day1 = p.Day1.AddDate(0, 0, -7)
	}
	return p
}

// ResolvePreviousWeek resolves the day-pair for the week weeksBack weeks
// before ref. weeksBack=1 means the most recent occurrences on or before
// ref itself.
func ResolvePreviousWeek(ref time.Time, day1, day2 draw.Weekday, weeksBack int) DatePair {
	shifted := Civil(ref).AddDate(0, 0, -(weeksBack-1)*7)
	return ResolveWeekPair(shifted, day1, day2)
}

// ResolveSingleDayPreviousWeek is the single-day variant used by the
// verifier: the most recent occurrence of day, weeksBack weeks before ref.
func ResolveSingleDayPreviousWeek(ref time.Time, day draw.Weekday, weeksBack int) time.Time {
	shifted := Civil(ref).AddDate(0, 0, -(weeksBack-1)*7)
	return MostRecentOccurrence(shifted, day)
}
