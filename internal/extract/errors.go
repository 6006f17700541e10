// Package extract reads single performance-test artifacts and pulls a fixed
// set of numeric metrics out of each one.
package extract

import (
	"errors"
	"fmt"
	"os"
)

// Soft failures. The file is skipped and the run continues.
var (
	// ErrFileNotFound indicates the input file does not exist
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidJSON indicates the file could not be read or decoded
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrNoEvents indicates a log export without an events array
	ErrNoEvents = errors.New("no events found")
	// ErrNoDatapoints indicates a CloudWatch dump without a Datapoints array
	ErrNoDatapoints = errors.New("no datapoints found")
	// ErrNoMaximumValues indicates datapoints that carry no Maximum statistic
	ErrNoMaximumValues = errors.New("no maximum values found")
)

// Fatal failures. A log export containing any of these aborts the whole run.
var (
	// ErrMalformedMessage indicates a log message that is not a six-field record
	ErrMalformedMessage = errors.New("malformed message")
	// ErrInvalidLatency indicates a latency field that is not a number
	ErrInvalidLatency = errors.New("invalid latency value")
	// ErrNoLatencyData indicates a log export with no serialize or deserialize samples
	ErrNoLatencyData = errors.New("no valid latency data")
)

// IsFatal reports whether err must abort the whole run instead of skipping
// the offending file.
func IsFatal(err error) bool {
	return errors.Is(err, ErrMalformedMessage) ||
		errors.Is(err, ErrInvalidLatency) ||
		errors.Is(err, ErrNoLatencyData)
}

// readFile reads path, mapping a missing file to ErrFileNotFound and any
// other read error to ErrInvalidJSON.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
	}
	return data, nil
}
