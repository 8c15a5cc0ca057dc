package draw

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a catalog weekday key. The canonical (internal) names are the
// French ones the catalog is written in; English names exist only for
// display. The numeric values line up with time.Weekday (Sunday = 0) so the
// date arithmetic can subtract them directly.
type Weekday int

const (
	Dimanche Weekday = iota
	Lundi
	Mardi
	Mercredi
	Jeudi
	Vendredi
	Samedi
)

var weekdayNames = [7]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

var weekdayEnglish = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// String returns the canonical French name. An out-of-range value is a
// catalog or config bug, so it panics rather than degrading.
func (w Weekday) String() string {
	if w < Dimanche || w > Samedi {
		panic(fmt.Sprintf("draw: invalid weekday %d", int(w)))
	}
	return weekdayNames[w]
}

// English returns the display name used on external-facing output.
func (w Weekday) English() string {
	if w < Dimanche || w > Samedi {
		panic(fmt.Sprintf("draw: invalid weekday %d", int(w)))
	}
	return weekdayEnglish[w]
}

// Time converts to the stdlib weekday.
func (w Weekday) Time() time.Weekday {
	if w < Dimanche || w > Samedi {
		panic(fmt.Sprintf("draw: invalid weekday %d", int(w)))
	}
	return time.Weekday(w)
}

// ParseWeekday accepts a French weekday name (case-insensitive). Unlike the
// catalog path, parse errors here come from user input and are returned, not
// panicked.
func ParseWeekday(s string) (Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q (expected dimanche..samedi)", s)
}
