// Package match implements the field-level matching rules: strict equality,
// digit-reversal equality, and the mariage pairing used on result display.
// Everything here is pure; the orchestrator owns iteration and attribution.
package match

import "fmt"

// Type classifies how a field matched a target set.
type Type string

const (
	Strict  Type = "strict"
	Reverse Type = "reverse"
)

// Result is one positive match: the candidate value that hit and how.
type Result struct {
	Number int
	Type   Type
}

// ReverseDigits treats n as a zero-padded 2-digit value and reverses its
// digits: 7 ("07") becomes 70, 70 becomes 7, palindromes map to themselves.
// For n in [0,99], ReverseDigits(ReverseDigits(n)) == n.
func ReverseDigits(n int) int {
	return (n%10)*10 + n/10
}

// Check compares candidate against targets. A strict hit always wins over a
// reverse hit because it is tested first; a reverse hit is only reported
// when the candidate itself is not in targets.
func Check(candidate int, targets []int) (Result, bool) {
	for _, t := range targets {
		if t == candidate {
			return Result{Number: candidate, Type: Strict}, true
		}
	}
	rev := ReverseDigits(candidate)
	for _, t := range targets {
		if t == rev {
			return Result{Number: candidate, Type: Reverse}, true
		}
	}
	return Result{}, false
}

// DedupeKey is the one canonical key for "same hit" checks. Every
// aggregation scope that needs to suppress duplicates keys its seen-set on
// this.
func DedupeKey(number int, t Type) string {
	return fmt.Sprintf("%02d|%s", number, t)
}

// digits returns the digit set of the zero-padded 2-digit form of n.
func digits(n int) map[int]bool {
	return map[int]bool{n / 10: true, n % 10: true}
}

// FindMariagePairs scans every unordered pair of distinct numbers and
// reports those whose zero-padded digit sets intersect in exactly one
// digit, rendered "(AA x BB)". Equal digit sets (e.g. 12/21) and disjoint
// sets are excluded. Each unordered pair is reported once regardless of
// input order or repetition.
func FindMariagePairs(numbers []int) []string {
	var pairs []string
	seen := make(map[string]bool)

	for i := 0; i < len(numbers); i++ {
		for j := i + 1; j < len(numbers); j++ {
			a, b := numbers[i], numbers[j]
			if a == b {
				continue
			}

			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			key := fmt.Sprintf("%02d-%02d", lo, hi)
			if seen[key] {
				continue
			}
			seen[key] = true

			shared := 0
			da, db := digits(a), digits(b)
			for d := range da {
				if db[d] {
					shared++
				}
			}
			if shared == 1 {
				pairs = append(pairs, fmt.Sprintf("(%02d x %02d)", a, b))
			}
		}
	}

	return pairs
}
