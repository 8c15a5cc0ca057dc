// Package draw defines the domain types shared across tiraj: draw records,
// record families, and the weekday keys the pattern catalog is written in.
package draw

import (
	"errors"
	"fmt"
	"time"
)

// Family identifies the shape of a draw record. The two lottery families
// tracked by tiraj publish a different number of balls per draw.
type Family int

const (
	// FamilySeven is the classic 7-ball draw (borlette style).
	FamilySeven Family = iota
	// FamilyTen is the extended 10-ball draw.
	FamilyTen
)

// FieldCount returns the number of numeric fields a record of this family
// carries.
func (f Family) FieldCount() int {
	switch f {
	case FamilySeven:
		return 7
	case FamilyTen:
		return 10
	default:
		panic(fmt.Sprintf("draw: invalid family %d", int(f)))
	}
}

// Field is one numeric slot of a draw record. Draws with fewer published
// balls leave trailing fields invalid; invalid fields are skipped by the
// match evaluator.
type Field struct {
	Value int // 0-99 when Valid
	Valid bool
}

// Num builds a valid field.
func Num(v int) Field { return Field{Value: v, Valid: true} }

// Null is the absent field.
var Null = Field{}

// Record is one historical draw: a calendar date plus a fixed list of
// numeric fields whose length matches the table's family.
type Record struct {
	Date   time.Time
	Fields []Field
}

// DateLayout is how draw dates are rendered and stored everywhere.
const DateLayout = "2006-01-02"

// ErrUnknownTable is returned when a table name is not in the registry.
var ErrUnknownTable = errors.New("unknown draw table")

// tables maps the external table names to their record family. The set is
// fixed: new tables require a schema change anyway.
var tables = map[string]Family{
	"matin": FamilySeven,
	"soir":  FamilySeven,
	"loto":  FamilyTen,
}

// TableFamily resolves a table name to its record family.
func TableFamily(name string) (Family, error) {
	f, ok := tables[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	return f, nil
}

// TableNames lists the registered table names in a fixed order.
func TableNames() []string {
	return []string{"matin", "soir", "loto"}
}
