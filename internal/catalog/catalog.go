// Package catalog holds the fixed pattern catalog: day-paired number sets
// grouped by category and subcategory. The catalog is a compiled-in
// constant; it is never mutated and never reloaded. Callers receive it by
// value and pass it down explicitly so tests can substitute their own.
package catalog

import (
	"fmt"

	"github.com/lakay-labs/tiraj/internal/draw"
)

// DayNumbers binds one weekday of a pattern set to its numbers. The order
// of entries inside a PatternSet is significant: the first entry is day1 of
// the pair, the second is day2.
type DayNumbers struct {
	Day     draw.Weekday
	Numbers []int
}

// PatternSet is the catalog's unit of matching: a category/subcategory pair
// with per-weekday number arrays.
type PatternSet struct {
	Category    string
	SubCategory string
	Days        []DayNumbers
}

// ID identifies a set across one analysis run.
func (p PatternSet) ID() string {
	return p.Category + "/" + p.SubCategory
}

// Catalog is an immutable collection of pattern sets in declaration order.
type Catalog struct {
	sets []PatternSet
}

// New builds a catalog from the given sets. The slice is used as-is; the
// caller must not mutate it afterwards.
func New(sets []PatternSet) Catalog {
	return Catalog{sets: sets}
}

// Default returns the compiled-in production catalog.
func Default() Catalog {
	return Catalog{sets: defaultSets}
}

// Sets returns the catalog entries in declaration order.
func (c Catalog) Sets() []PatternSet {
	return c.sets
}

// Lookup returns every pattern set whose day arrays contain n, in
// declaration order. A number no set contains yields an empty result; that
// is not an error.
func (c Catalog) Lookup(n int) []PatternSet {
	var out []PatternSet
	for _, set := range c.sets {
		if setContains(set, n) {
			out = append(out, set)
		}
	}
	return out
}

func setContains(set PatternSet, n int) bool {
	for _, dn := range set.Days {
		for _, v := range dn.Numbers {
			if v == n {
				return true
			}
		}
	}
	return false
}

// Validate checks the catalog invariants: every number in [0,99] and every
// set carrying at least two day keys. A violation is a data bug, reported
// with enough context to find the offending entry.
func (c Catalog) Validate() error {
	for _, set := range c.sets {
		if len(set.Days) < 2 {
			return fmt.Errorf("catalog: set %s has %d day key(s), need at least 2", set.ID(), len(set.Days))
		}
		for _, dn := range set.Days {
			for _, v := range dn.Numbers {
				if v < 0 || v > 99 {
					return fmt.Errorf("catalog: set %s day %s contains out-of-range number %d", set.ID(), dn.Day, v)
				}
			}
		}
	}
	return nil
}
