package pipeline

import (
	"path/filepath"

	mstats "github.com/montanaflynn/stats"
	"github.com/sirupsen/logrus"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/symtalha14/perfagg/internal/config"
	"github.com/symtalha14/perfagg/internal/extract"
	"github.com/symtalha14/perfagg/internal/locate"
	"github.com/symtalha14/perfagg/internal/output"
)

// ResourceAverage is the averaged maximum of one resource metric kind.
type ResourceAverage struct {
	AverageMaximum      float64 `json:"average_maximum"`
	TotalFilesProcessed int     `json:"total_files_processed"`
	Unit                string  `json:"unit"`
}

// ResourcesDocument maps a resource kind name to its average, in
// extract.ResourceKinds order.
type ResourcesDocument = orderedmap.OrderedMap[string, ResourceAverage]

// RunResources averages the CloudWatch CPU, memory and network dumps in dir
// and writes a ResourcesDocument to cfg.Output inside dir.
//
// Each file contributes the mean of its datapoint maxima; files yielding
// zero or failing to parse are left out. Kinds without any value are
// omitted, and nothing is written when every kind is empty.
func RunResources(dir string, cfg config.Resources, log logrus.FieldLogger) (Result, error) {
	result := Result{Dir: dir}

	if err := locate.RequireDir(dir); err != nil {
		return result, err
	}

	document := orderedmap.New[string, ResourceAverage]()

	for _, kind := range extract.ResourceKinds {
		files, err := locate.Files(dir, kind.Pattern())
		if err != nil {
			return result, err
		}
		result.Matched += len(files)

		kindLog := log.WithField("kind", kind.Name)
		kindLog.Debugf("Found %d %s metrics files", len(files), kind.Label)

		values := make([]float64, 0, len(files))
		for _, path := range files {
			value, err := extract.Resource(path)
			if err != nil {
				result.skip(kindLog, path, err)
				continue
			}
			if value > 0 {
				values = append(values, value)
			}
		}

		if len(values) == 0 {
			continue
		}

		mean, err := mstats.Mean(values)
		if err != nil {
			return result, err
		}
		document.Set(kind.Name, ResourceAverage{
			AverageMaximum:      mean,
			TotalFilesProcessed: len(values),
			Unit:                kind.Unit,
		})
		result.Processed += len(values)
	}

	if document.Len() == 0 {
		log.WithField("dir", dir).Warn("No resource metrics extracted")
		return result, nil
	}

	outputPath := filepath.Join(dir, cfg.Output)
	if err := output.WriteJSON(outputPath, document); err != nil {
		return result, err
	}
	result.OutputPath = outputPath

	log.WithFields(logrus.Fields{
		"output":    outputPath,
		"processed": result.Processed,
	}).Info("Average resource metrics saved")

	return result, nil
}
