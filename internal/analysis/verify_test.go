package analysis

import (
	"errors"
	"testing"

	"github.com/lakay-labs/tiraj/internal/draw"
	"github.com/lakay-labs/tiraj/internal/match"
)

func TestVerifyDay_MatchesFlatNumberList(t *testing.T) {
	// Last mardi before the Wednesday reference is 2024-01-09.
	src := &fakeSource{records: []draw.Record{recordOn("2024-01-09", 10, 70, 55)}}
	engine := New(testCatalog(), src)

	hits, err := engine.VerifyDay(VerifyRequest{
		ReferenceDate: wednesday,
		Numbers:       []string{"10", "7"},
		Table:         "matin",
		Day:           draw.Mardi,
	})
	if err != nil {
		t.Fatalf("VerifyDay() failed: %v", err)
	}

	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2: %+v", len(hits), hits)
	}
	if hits[0].Number != 10 || hits[0].Type != match.Strict || hits[0].Week != 1 {
		t.Errorf("hit 0 = %+v, want {1 2024-01-09 10 strict}", hits[0])
	}
	// 70 reversed is 7, which is in the flat list.
	if hits[1].Number != 70 || hits[1].Type != match.Reverse {
		t.Errorf("hit 1 = %+v, want {70 reverse}", hits[1])
	}
}

func TestVerifyDay_ScansSevenWeeks(t *testing.T) {
	src := &fakeSource{}
	engine := New(testCatalog(), src)

	_, err := engine.VerifyDay(VerifyRequest{
		ReferenceDate: wednesday,
		Numbers:       []string{"10"},
		Table:         "matin",
		Day:           draw.Mardi,
	})
	if err != nil {
		t.Fatalf("VerifyDay() failed: %v", err)
	}

	if len(src.calls) != VerifyWeeksBack {
		t.Fatalf("store was queried %d times, want %d", len(src.calls), VerifyWeeksBack)
	}
	for i, call := range src.calls {
		if len(call) != 1 {
			t.Errorf("query %d asked for %d dates, want 1", i+1, len(call))
		}
	}
	if src.calls[0][0] != "2024-01-09" || src.calls[1][0] != "2024-01-02" {
		t.Errorf("first two queried dates = %v %v, want 2024-01-09 2024-01-02", src.calls[0], src.calls[1])
	}
}

// The same (number, match type) within one record is reported once, even
// when several fields produce it.
func TestVerifyDay_DedupesWithinRecord(t *testing.T) {
	src := &fakeSource{records: []draw.Record{recordOn("2024-01-09", 10, 10, 10)}}
	engine := New(testCatalog(), src)

	hits, err := engine.VerifyDay(VerifyRequest{
		ReferenceDate: wednesday,
		Numbers:       []string{"10"},
		Table:         "matin",
		Day:           draw.Mardi,
	})
	if err != nil {
		t.Fatalf("VerifyDay() failed: %v", err)
	}
	if len(hits) != 1 {
		t.Errorf("got %d hits, want 1 after per-record dedupe: %+v", len(hits), hits)
	}
}

// Dedupe is per record: the same number on different weeks is reported for
// each week.
func TestVerifyDay_SameNumberAcrossWeeks(t *testing.T) {
	src := &fakeSource{records: []draw.Record{
		recordOn("2024-01-09", 10),
		recordOn("2024-01-02", 10),
	}}
	engine := New(testCatalog(), src)

	hits, err := engine.VerifyDay(VerifyRequest{
		ReferenceDate: wednesday,
		Numbers:       []string{"10"},
		Table:         "matin",
		Day:           draw.Mardi,
	})
	if err != nil {
		t.Fatalf("VerifyDay() failed: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2 (one per week)", len(hits))
	}
	if hits[0].Week != 1 || hits[1].Week != 2 {
		t.Errorf("weeks = %d %d, want 1 2", hits[0].Week, hits[1].Week)
	}
}

func TestVerifyDay_QueryFailureSkipsWeek(t *testing.T) {
	src := &fakeSource{
		records:   []draw.Record{recordOn("2024-01-09", 10)},
		failDates: map[string]bool{"2024-01-02": true},
	}
	engine := New(testCatalog(), src)

	hits, err := engine.VerifyDay(VerifyRequest{
		ReferenceDate: wednesday,
		Numbers:       []string{"10"},
		Table:         "matin",
		Day:           draw.Mardi,
	})
	if err != nil {
		t.Fatalf("VerifyDay() must not fail on a store error: %v", err)
	}
	if len(hits) != 1 || hits[0].Week != 1 {
		t.Errorf("hits = %+v, want only week 1's", hits)
	}
}

func TestVerifyDay_UnknownTable(t *testing.T) {
	engine := New(testCatalog(), &fakeSource{})
	_, err := engine.VerifyDay(VerifyRequest{
		ReferenceDate: wednesday,
		Numbers:       []string{"10"},
		Table:         "nuit",
		Day:           draw.Mardi,
	})
	if !errors.Is(err, draw.ErrUnknownTable) {
		t.Errorf("error = %v, want ErrUnknownTable", err)
	}
}
