// Package metrics holds the flat metric records extracted from test
// artifacts and the averaging that combines them across runs.
package metrics

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record maps a metric name to its numeric value.
// Keys keep the order in which they were first set, and that order is
// preserved when the record is written as JSON.
type Record = orderedmap.OrderedMap[string, float64]

// NewRecord creates an empty record.
func NewRecord() *Record {
	return orderedmap.New[string, float64]()
}

// IsEmpty reports whether the record is nil or has no keys.
func IsEmpty(record *Record) bool {
	return record == nil || record.Len() == 0
}
