package analysis

import (
	"reflect"
	"testing"

	"github.com/lakay-labs/tiraj/internal/match"
)

func TestFormatFinalResults_GroupsAndCounts(t *testing.T) {
	raw := []Hit{
		{Label: "Boule 1", Week: 1, Number: 70, Type: match.Strict},
		{Label: "Boule 2", Week: 2, Number: 70, Type: match.Strict},
	}
	got := FormatFinalResults(raw)
	want := []FormattedResult{
		{Number: "70", Count: 2, Type: match.Strict, Display: "70 (2 times)"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FormatFinalResults = %+v, want %+v", got, want)
	}
}

func TestFormatFinalResults_SingleHitDisplay(t *testing.T) {
	got := FormatFinalResults([]Hit{{Label: "Boule 1", Week: 3, Number: 7, Type: match.Reverse}})
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	if got[0].Display != "07" || got[0].Number != "07" || got[0].Count != 1 {
		t.Errorf("result = %+v, want zero-padded 07 with count 1", got[0])
	}
}

// Same number under different match types stays separate, sorted strict
// first; distinct numbers sort ascending by value.
func TestFormatFinalResults_SortOrder(t *testing.T) {
	raw := []Hit{
		{Number: 45, Type: match.Reverse},
		{Number: 7, Type: match.Reverse},
		{Number: 45, Type: match.Strict},
		{Number: 7, Type: match.Reverse},
	}
	got := FormatFinalResults(raw)
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	if got[0].Number != "07" || got[0].Count != 2 {
		t.Errorf("results[0] = %+v, want 07 twice", got[0])
	}
	if got[1].Number != "45" || got[1].Type != match.Strict {
		t.Errorf("results[1] = %+v, want 45 strict before 45 reverse", got[1])
	}
	if got[2].Number != "45" || got[2].Type != match.Reverse {
		t.Errorf("results[2] = %+v, want 45 reverse", got[2])
	}
}

func TestFormatFinalResults_Empty(t *testing.T) {
	if got := FormatFinalResults(nil); len(got) != 0 {
		t.Errorf("FormatFinalResults(nil) = %+v, want empty", got)
	}
}

func TestDistinctNumbers(t *testing.T) {
	raw := []Hit{
		{Number: 45, Type: match.Strict},
		{Number: 7, Type: match.Reverse},
		{Number: 45, Type: match.Reverse},
	}
	got := DistinctNumbers(raw)
	want := []int{7, 45}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctNumbers = %v, want %v", got, want)
	}
}
