package pipeline

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/symtalha14/perfagg/internal/config"
	"github.com/symtalha14/perfagg/internal/extract"
	"github.com/symtalha14/perfagg/internal/metrics"
	"github.com/symtalha14/perfagg/internal/output"
)

// LogsDocument is the averaged log-export output, one record per
// operation category.
type LogsDocument struct {
	Deserialize *metrics.Record `json:"deserialize"`
	Serialize   *metrics.Record `json:"serialize"`
}

// RunLogs averages the CloudWatch log exports in dir and writes a
// LogsDocument to cfg.Output inside dir.
//
// Missing, unreadable or event-less files are skipped. Any error for which
// extract.IsFatal is true stops the run at once: it is returned and nothing
// is written.
//
// A file with samples in only one category still counts as processed and
// contributes to that category alone. Each category is averaged over the
// files that reported it, the same per-key divisor metrics.Average uses,
// so a run where no file reported a category writes it as {} rather than
// dropping the other category's data.
func RunLogs(dir string, cfg config.Pipeline, log logrus.FieldLogger) (Result, error) {
	result := Result{Dir: dir}

	files, err := find(dir, cfg.Pattern, log)
	if err != nil || len(files) == 0 {
		return result, err
	}
	result.Matched = len(files)

	var serialize, deserialize []*metrics.Record
	for _, path := range files {
		name := filepath.Base(path)
		log.WithField("file", name).Debug("Processing")

		extracted, err := extract.Logs(path)
		if err != nil {
			if extract.IsFatal(err) {
				log.WithField("file", name).WithError(err).Error("Aborting on invalid log data")
				return result, err
			}
			result.skip(log, path, err)
			continue
		}

		if extracted.Serialize == nil && extracted.Deserialize == nil {
			result.skip(log, path, nil)
			continue
		}

		if extracted.Serialize != nil {
			serialize = append(serialize, extracted.Serialize)
		}
		if extracted.Deserialize != nil {
			deserialize = append(deserialize, extracted.Deserialize)
		}
		result.Processed++
	}

	if result.Processed == 0 {
		log.WithField("dir", dir).Warn("No CloudWatch logs metrics extracted")
		return result, nil
	}

	document := LogsDocument{
		Deserialize: metrics.Average(deserialize),
		Serialize:   metrics.Average(serialize),
	}

	outputPath := filepath.Join(dir, cfg.Output)
	if err := output.WriteJSON(outputPath, document); err != nil {
		return result, err
	}
	result.OutputPath = outputPath

	log.WithFields(logrus.Fields{
		"output":    outputPath,
		"processed": result.Processed,
	}).Info("Average CloudWatch logs metrics saved")

	return result, nil
}
