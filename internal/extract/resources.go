package extract

import (
	"encoding/json"
	"fmt"

	mstats "github.com/montanaflynn/stats"
)

// ResourceKind identifies one CloudWatch resource metric dump.
type ResourceKind struct {
	Name   string // Output key, e.g. cpu_utilization
	Label  string // Human readable name for diagnostics
	Suffix string // File name suffix, e.g. _cpu_metrics.json
	Unit   string // CloudWatch unit reported with the average
}

// ResourceKinds lists the supported dumps in output order.
var ResourceKinds = []ResourceKind{
	{Name: "cpu_utilization", Label: "CPU", Suffix: "_cpu_metrics.json", Unit: "Percent"},
	{Name: "memory_utilization", Label: "memory", Suffix: "_memory_metrics.json", Unit: "Percent"},
	{Name: "network_rx_bytes", Label: "network RX", Suffix: "_network_rx_bytes_metrics.json", Unit: "Bytes"},
	{Name: "network_tx_bytes", Label: "network TX", Suffix: "_network_tx_bytes_metrics.json", Unit: "Bytes"},
}

// Pattern returns the glob matching this kind's files.
func (k ResourceKind) Pattern() string {
	return "*" + k.Suffix
}

// datapointDump is the subset of a GetMetricStatistics response that is read.
type datapointDump struct {
	Datapoints *[]map[string]json.RawMessage `json:"Datapoints"`
}

// Resource returns the mean of the Maximum statistic over all datapoints of
// a CloudWatch metric dump. Datapoints without a numeric Maximum are
// skipped.
func Resource(path string) (float64, error) {
	data, err := readFile(path)
	if err != nil {
		return 0, err
	}

	var dump datapointDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
	}
	if dump.Datapoints == nil {
		return 0, fmt.Errorf("%w: %s", ErrNoDatapoints, path)
	}

	maxValues := make([]float64, 0, len(*dump.Datapoints))
	for _, datapoint := range *dump.Datapoints {
		raw, ok := datapoint["Maximum"]
		if !ok {
			continue
		}
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		maxValues = append(maxValues, v)
	}

	if len(maxValues) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoMaximumValues, path)
	}

	return mstats.Mean(maxValues)
}
