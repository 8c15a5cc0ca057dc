package analysis

import (
	"fmt"
	"sort"

	"github.com/lakay-labs/tiraj/internal/match"
)

// FormattedResult is one display-ready aggregate: a number, how it matched,
// and how often it was credited across the whole run.
type FormattedResult struct {
	Number  string     `json:"number"`
	Count   int        `json:"count"`
	Type    match.Type `json:"type"`
	Display string     `json:"display"`
}

// FormatFinalResults groups raw hits by (number, match type), counts them
// and renders the display strings, sorted ascending by numeric value with
// strict entries before reverse entries of the same number.
func FormatFinalResults(raw []Hit) []FormattedResult {
	type group struct {
		number int
		typ    match.Type
		count  int
	}

	groups := make(map[string]*group)
	for _, h := range raw {
		key := match.DedupeKey(h.Number, h.Type)
		g, ok := groups[key]
		if !ok {
			g = &group{number: h.Number, typ: h.Type}
			groups[key] = g
		}
		g.count++
	}

	ordered := make([]*group, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].number != ordered[j].number {
			return ordered[i].number < ordered[j].number
		}
		return ordered[i].typ == match.Strict && ordered[j].typ == match.Reverse
	})

	results := make([]FormattedResult, 0, len(ordered))
	for _, g := range ordered {
		display := fmt.Sprintf("%02d", g.number)
		if g.count > 1 {
			display = fmt.Sprintf("%02d (%d times)", g.number, g.count)
		}
		results = append(results, FormattedResult{
			Number:  fmt.Sprintf("%02d", g.number),
			Count:   g.count,
			Type:    g.typ,
			Display: display,
		})
	}
	return results
}

// DistinctNumbers returns the distinct hit numbers in ascending order,
// which is what the mariage detection runs on.
func DistinctNumbers(raw []Hit) []int {
	seen := make(map[int]bool)
	var nums []int
	for _, h := range raw {
		if !seen[h.Number] {
			seen[h.Number] = true
			nums = append(nums, h.Number)
		}
	}
	sort.Ints(nums)
	return nums
}
