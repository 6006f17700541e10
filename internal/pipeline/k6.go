package pipeline

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/symtalha14/perfagg/internal/config"
	"github.com/symtalha14/perfagg/internal/extract"
	"github.com/symtalha14/perfagg/internal/metrics"
	"github.com/symtalha14/perfagg/internal/output"
)

// RunK6 averages the k6 summaries in dir and writes the flat averaged
// record to cfg.Output inside dir.
//
// Unreadable files and files with no known metric family are skipped. When
// no file matches, or none yields metrics, nothing is written and the error
// is nil.
func RunK6(dir string, cfg config.Pipeline, log logrus.FieldLogger) (Result, error) {
	result := Result{Dir: dir}

	files, err := find(dir, cfg.Pattern, log)
	if err != nil || len(files) == 0 {
		return result, err
	}
	result.Matched = len(files)

	records := make([]*metrics.Record, 0, len(files))
	for _, path := range files {
		log.WithField("file", filepath.Base(path)).Debug("Processing")

		record, err := extract.K6(path)
		if err != nil || metrics.IsEmpty(record) {
			result.skip(log, path, err)
			continue
		}

		records = append(records, record)
	}
	result.Processed = len(records)

	if len(records) == 0 {
		log.WithField("dir", dir).Warn("No metrics extracted")
		return result, nil
	}

	average := metrics.Average(records)
	outputPath := filepath.Join(dir, cfg.Output)
	if err := output.WriteJSON(outputPath, average); err != nil {
		return result, err
	}
	result.OutputPath = outputPath

	log.WithFields(logrus.Fields{
		"output":    outputPath,
		"processed": result.Processed,
	}).Info("Average metrics saved")

	return result, nil
}
