package metrics

// recordOf builds a record from parallel slices of names and values.
func recordOf(keys []string, values []float64) *Record {
	record := NewRecord()
	for i, key := range keys {
		record.Set(key, values[i])
	}
	return record
}

// recordKeys returns the record's keys in insertion order.
func recordKeys(record *Record) []string {
	var keys []string
	for pair := record.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// recordMap copies the record into a plain map.
func recordMap(record *Record) map[string]float64 {
	out := make(map[string]float64)
	for pair := record.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value
	}
	return out
}
