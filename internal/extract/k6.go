package extract

import (
	"encoding/json"
	"fmt"

	"github.com/symtalha14/perfagg/internal/metrics"
)

// k6 metric family names as they appear in a summary export.
const (
	familyDataSent        = "data_sent"
	familyDataReceived    = "data_received"
	familyHTTPReqDuration = "http_req_duration"
	familyGRPCReqDuration = "grpc_req_duration"
	familyVUsMax          = "vus_max"
	familyHTTPReqs        = "http_reqs"
	familyIterations      = "iterations"
	familyChecks          = "checks"
)

// field maps one entry of a family's values object to an output key.
type field struct {
	source string // Key inside "values"
	key    string // Output metric name
}

// k6Family describes which values of one metric family are extracted.
type k6Family struct {
	name   string
	fields []field
}

var (
	dataSentFields = []field{
		{"count", "data_sent_count"},
		{"rate", "data_sent_rate"},
	}
	dataReceivedFields = []field{
		{"count", "data_received_count"},
		{"rate", "data_received_rate"},
	}
	durationFields = []field{
		{"avg", "request_duration_avg"},
		{"min", "request_duration_min"},
		{"max", "request_duration_max"},
		{"med", "request_duration_median"},
		{"p(90)", "request_duration_p90"},
		{"p(95)", "request_duration_p95"},
		{"p(99)", "request_duration_p99"},
	}
	vusFields = []field{
		{"value", "vus_max"},
	}
	throughputFields = []field{
		{"rate", "throughput_requests_per_second"},
		{"count", "throughput_total_requests"},
	}
	checksFields = []field{
		{"rate", "success_rate_rate"},
		{"passes", "success_rate_passes"},
		{"fails", "success_rate_fails"},
	}
)

// k6Summary is the subset of a k6 end-of-test summary that is read.
type k6Summary struct {
	Metrics map[string]k6Metric `json:"metrics"`
}

// k6Metric is one metric family with its named values.
type k6Metric struct {
	Values map[string]json.RawMessage `json:"values"`
}

// value returns the named value as a number. Missing or non-numeric
// values count as zero.
func (m k6Metric) value(name string) float64 {
	raw, ok := m.Values[name]
	if !ok {
		return 0
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}
	return v
}

// K6 extracts load-test metrics from a k6 summary JSON file.
//
// Families missing from the file are left out of the result. A family that
// is present but lacks one of the extracted values yields zero for it.
// Request duration and throughput come from the HTTP families; for gRPC
// tests, which report neither, they come from grpc_req_duration and
// iterations instead.
func K6(path string) (*metrics.Record, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var summary k6Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
	}

	return k6Record(summary), nil
}

// k6Record flattens the selected families into a record.
func k6Record(summary k6Summary) *metrics.Record {
	record := metrics.NewRecord()

	for _, family := range k6Families(summary.Metrics) {
		metric, ok := summary.Metrics[family.name]
		if !ok {
			continue
		}
		for _, f := range family.fields {
			record.Set(f.key, metric.value(f.source))
		}
	}

	return record
}

// k6Families returns the families to read, in output order, choosing the
// HTTP or gRPC source for request duration and throughput.
func k6Families(present map[string]k6Metric) []k6Family {
	_, isREST := present[familyHTTPReqDuration]
	_, isGRPC := present[familyGRPCReqDuration]

	duration := familyHTTPReqDuration
	if !isREST && isGRPC {
		duration = familyGRPCReqDuration
	}

	throughput := familyHTTPReqs
	if _, ok := present[familyHTTPReqs]; !ok && !isREST && isGRPC {
		throughput = familyIterations
	}

	return []k6Family{
		{familyDataSent, dataSentFields},
		{familyDataReceived, dataReceivedFields},
		{duration, durationFields},
		{familyVUsMax, vusFields},
		{throughput, throughputFields},
		{familyChecks, checksFields},
	}
}
