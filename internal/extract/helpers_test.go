package extract

import "github.com/symtalha14/perfagg/internal/metrics"

// recordKeys returns the record's keys in insertion order.
func recordKeys(record *metrics.Record) []string {
	var keys []string
	for pair := record.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// recordMap copies the record into a plain map.
func recordMap(record *metrics.Record) map[string]float64 {
	out := make(map[string]float64)
	if record == nil {
		return out
	}
	for pair := record.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value
	}
	return out
}
