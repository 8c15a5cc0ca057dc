package analysis

import (
	"fmt"
	"time"

	"github.com/lakay-labs/tiraj/internal/catalog"
	"github.com/lakay-labs/tiraj/internal/draw"
	"github.com/lakay-labs/tiraj/internal/match"
)

// DefaultWeeksBack is the horizon of the day-pair scan.
const DefaultWeeksBack = 6

// VerifyWeeksBack is the fixed horizon of the single-day verifier.
const VerifyWeeksBack = 7

// RecordSource is the query contract the engine consumes. Implementations
// return every record whose date is exactly one of dates, in one call; the
// engine never asks for column filtering beyond the date.
type RecordSource interface {
	DrawsOn(table string, dates []time.Time) ([]draw.Record, error)
}

// Input is one usable trigger number: its original position in the request
// plus the parsed value. Blank, malformed and out-of-range entries never
// become Inputs.
type Input struct {
	Index int
	Value int
}

// Label renders the 1-based display label of the input position.
func (in Input) Label() string {
	return fmt.Sprintf("Boule %d", in.Index+1)
}

// Set groups the inputs that resolved to the same pattern set. It lives for
// one analysis run only.
type Set struct {
	ID      string
	Inputs  []Input
	Pattern catalog.PatternSet
}

// HistoricalHit is one matched record field.
type HistoricalHit struct {
	Week        int        `json:"week"`
	Date        string     `json:"date"`
	NumberFound int        `json:"number_found"`
	Type        match.Type `json:"match_type"`
}

// WeekCheck is the outcome of scanning one week for one set. Weeks with no
// hits (including weeks whose query failed) are still recorded so the log
// explicitly shows "checked, nothing found".
type WeekCheck struct {
	Week  int             `json:"week"`
	Date1 string          `json:"date1"`
	Date2 string          `json:"date2"`
	Hits  []HistoricalHit `json:"hits"`
}

// Hit is one raw result attributed to one input. One physical record match
// fans out into one Hit per input sharing the set.
type Hit struct {
	Label  string     `json:"label"`
	Week   int        `json:"week"`
	Number int        `json:"number"`
	Type   match.Type `json:"type"`
}

// String renders the legacy display form of a raw hit.
func (h Hit) String() string {
	return fmt.Sprintf("%s: Week %d: %02d|%s", h.Label, h.Week, h.Number, h.Type)
}

// LogEntry is the detailed per-input trail: every week checked for the
// input's set, hits and blanks alike.
type LogEntry struct {
	InputLabel  string      `json:"input_label"`
	InputNumber int         `json:"input_number"`
	SetID       string      `json:"set_id"`
	Weeks       []WeekCheck `json:"weeks"`
}

// Report is the full outcome of one Analyze call.
type Report struct {
	Raw []Hit      `json:"raw_results"`
	Log []LogEntry `json:"detailed_log"`
}

// VerificationHit is one deduplicated hit from the single-day verifier.
type VerificationHit struct {
	Week   int        `json:"week"`
	Date   string     `json:"date"`
	Number int        `json:"number"`
	Type   match.Type `json:"type"`
}
