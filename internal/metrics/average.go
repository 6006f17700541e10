package metrics

// Average computes the per-key arithmetic mean across records.
//
// A key is averaged only over the records that contain it, so the divisor
// for each key is the number of records where the key is present rather
// than len(records). Keys that appear in no record are not in the result.
// The result keeps keys in the order they were first seen.
func Average(records []*Record) *Record {
	counts := make(map[string]int)
	sums := NewRecord()

	for _, record := range records {
		if record == nil {
			continue
		}
		for pair := record.Oldest(); pair != nil; pair = pair.Next() {
			sum, _ := sums.Get(pair.Key)
			sums.Set(pair.Key, sum+pair.Value)
			counts[pair.Key]++
		}
	}

	averages := NewRecord()
	for pair := sums.Oldest(); pair != nil; pair = pair.Next() {
		if count := counts[pair.Key]; count > 0 {
			averages.Set(pair.Key, pair.Value/float64(count))
		}
	}

	return averages
}
