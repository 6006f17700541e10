package extract

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/symtalha14/perfagg/internal/metrics"
	"github.com/symtalha14/perfagg/internal/stats"
)

// Operation categories found in the third field of a log message.
const (
	OperationSerialize   = "serialize"
	OperationDeserialize = "deserialize"
)

// Field layout of a log message: id, protocol, operation, endpoint,
// timestamp, latency.
const (
	messageFields  = 6
	operationField = 2
	latencyField   = 5
)

// Output keys of a per-operation latency record.
const (
	KeyTotalRequests = "total_requests"
	KeyLatencyMin    = "latency_min"
	KeyLatencyMax    = "latency_max"
	KeyLatencyAvg    = "latency_avg"
	KeyLatencyMedian = "latency_median"
	KeyLatencyP90    = "latency_p90"
	KeyLatencyP95    = "latency_p95"
	KeyLatencyP99    = "latency_p99"
)

// LogMetrics holds the latency records of one log export, one per
// operation category. A category without samples is nil.
type LogMetrics struct {
	Serialize   *metrics.Record
	Deserialize *metrics.Record
}

// logExport is the subset of a CloudWatch logs export that is read.
type logExport struct {
	Events *[]json.RawMessage `json:"events"`
}

// Logs extracts serialize and deserialize latency statistics from a
// CloudWatch logs export.
//
// Every event message must be a six-field quoted CSV record. A malformed
// message, a latency that is not a number, or a file without a single
// serialize or deserialize sample yields an error for which IsFatal is true.
// Events without a message and operations other than serialize/deserialize
// are ignored.
func Logs(path string) (LogMetrics, error) {
	data, err := readFile(path)
	if err != nil {
		return LogMetrics{}, err
	}

	var export logExport
	if err := json.Unmarshal(data, &export); err != nil {
		return LogMetrics{}, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
	}
	if export.Events == nil {
		return LogMetrics{}, fmt.Errorf("%w: %s", ErrNoEvents, path)
	}

	serialize := stats.NewTracker()
	deserialize := stats.NewTracker()

	for i, raw := range *export.Events {
		message, err := eventMessage(raw)
		if err != nil {
			return LogMetrics{}, fmt.Errorf("%s: event %d: %w", path, i, err)
		}
		if message == "" {
			continue
		}

		operation, latency, err := ParseMessage(message)
		if err != nil {
			return LogMetrics{}, fmt.Errorf("%s: event %d: %w", path, i, err)
		}

		switch operation {
		case OperationSerialize:
			serialize.Record(latency)
		case OperationDeserialize:
			deserialize.Record(latency)
		}
	}

	if serialize.Total() == 0 && deserialize.Total() == 0 {
		return LogMetrics{}, fmt.Errorf("%w: %s", ErrNoLatencyData, path)
	}

	var result LogMetrics
	if result.Serialize, err = latencyRecord(serialize); err != nil {
		return LogMetrics{}, err
	}
	if result.Deserialize, err = latencyRecord(deserialize); err != nil {
		return LogMetrics{}, err
	}
	return result, nil
}

// eventMessage returns the message of one event. A missing or null message
// is returned as "". An event that is not an object, or a message that is
// not a string, is malformed.
func eventMessage(raw json.RawMessage) (string, error) {
	var event map[string]json.RawMessage
	if err := json.Unmarshal(raw, &event); err != nil {
		return "", fmt.Errorf("%w: event is not an object: %s", ErrMalformedMessage, raw)
	}

	rawMessage, ok := event["message"]
	if !ok || string(rawMessage) == "null" {
		return "", nil
	}

	var message string
	if err := json.Unmarshal(rawMessage, &message); err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedMessage, rawMessage)
	}
	return message, nil
}

// ParseMessage splits a log message such as
//
//	"r1","grpc","SERIALIZE","ep1","1000","12.5"
//
// and returns its lower-cased operation and its latency. The latency must
// be a finite number.
func ParseMessage(message string) (operation string, latency float64, err error) {
	reader := csv.NewReader(strings.NewReader(message))
	reader.FieldsPerRecord = messageFields
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	fields, err := reader.Read()
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q: %v", ErrMalformedMessage, message, err)
	}

	latencyText := strings.TrimSpace(fields[latencyField])
	latency, err = strconv.ParseFloat(latencyText, 64)
	if err != nil || math.IsNaN(latency) || math.IsInf(latency, 0) {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidLatency, latencyText)
	}

	operation = strings.ToLower(strings.TrimSpace(fields[operationField]))
	return operation, latency, nil
}

// latencyRecord turns a tracker into a latency record, or nil when the
// tracker is empty.
func latencyRecord(tracker *stats.Tracker) (*metrics.Record, error) {
	if tracker.Total() == 0 {
		return nil, nil
	}

	summary, err := tracker.Summary()
	if err != nil {
		return nil, err
	}

	record := metrics.NewRecord()
	record.Set(KeyTotalRequests, float64(summary.Count))
	record.Set(KeyLatencyMin, summary.Min)
	record.Set(KeyLatencyMax, summary.Max)
	record.Set(KeyLatencyAvg, summary.Avg)
	record.Set(KeyLatencyMedian, summary.Median)
	record.Set(KeyLatencyP90, summary.P90)
	record.Set(KeyLatencyP95, summary.P95)
	record.Set(KeyLatencyP99, summary.P99)
	return record, nil
}
