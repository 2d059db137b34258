package models

import (
	"math"
	"time"
)

// Null returns the missing-value marker used throughout normalized tables.
// It is NaN so it is distinct from zero and survives arithmetic as "missing".
func Null() float64 {
	return math.NaN()
}

// IsNull reports whether v is the missing-value marker.
func IsNull(v float64) bool {
	return math.IsNaN(v)
}

// Table is a rectangular view of multi-channel sensor data: one row per
// timestamp, one column per channel. Every column has exactly len(Times)
// entries with Null() filling unreconciled points.
type Table struct {
	Times   []time.Time // canonical timestamps, Atlantic civil time
	order   []string
	columns map[string][]float64
}

// NewTable creates a table indexed by the given timestamp vector.
func NewTable(times []time.Time) *Table {
	return &Table{
		Times:   times,
		columns: make(map[string][]float64),
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Times)
}

// IsEmpty reports whether the table holds no rows.
func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// AddColumn stores values under name. A column added twice keeps its original
// position but takes the new values. Values must already be length Len().
func (t *Table) AddColumn(name string, values []float64) {
	if _, exists := t.columns[name]; !exists {
		t.order = append(t.order, name)
	}
	t.columns[name] = values
}

// Column returns the values for name and whether the column exists.
func (t *Table) Column(name string) ([]float64, bool) {
	if t == nil {
		return nil, false
	}
	values, ok := t.columns[name]
	return values, ok
}

// Columns returns channel names in insertion order.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	return t.order
}

// HasColumn reports whether name is present.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// LastValue returns the most recent non-null value in the named column.
func (t *Table) LastValue(name string) (float64, bool) {
	values, ok := t.Column(name)
	if !ok {
		return 0, false
	}
	for i := len(values) - 1; i >= 0; i-- {
		if !IsNull(values[i]) {
			return values[i], true
		}
	}
	return 0, false
}
