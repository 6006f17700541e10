// Package pipeline drives the extract-and-average runs over a folder of
// test artifacts and writes the averaged metrics next to the inputs.
package pipeline

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/symtalha14/perfagg/internal/locate"
)

// ErrNotDirectory is returned when the folder argument is not a directory.
var ErrNotDirectory = locate.ErrNotDirectory

// Result describes one pipeline run over a folder.
type Result struct {
	Dir        string   // Folder that was scanned
	Matched    int      // Files matching the input pattern
	Processed  int      // Files that contributed to the average
	Skipped    []string // Names of files skipped after a soft failure
	OutputPath string   // Written output file, empty when nothing was written
}

// Written reports whether the run produced an output file.
func (r Result) Written() bool {
	return r.OutputPath != ""
}

// skip records a skipped file and logs why.
func (r *Result) skip(log logrus.FieldLogger, path string, err error) {
	name := filepath.Base(path)
	r.Skipped = append(r.Skipped, name)

	entry := log.WithField("file", name)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn("Failed to extract metrics")
}

// find validates dir and returns the files matching pattern. A run with
// no matching files logs a diagnostic and returns no files and no error.
func find(dir, pattern string, log logrus.FieldLogger) ([]string, error) {
	if err := locate.RequireDir(dir); err != nil {
		return nil, err
	}

	files, err := locate.Files(dir, pattern)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		log.WithField("dir", dir).Warnf("No files found matching pattern '%s'", pattern)
		return nil, nil
	}

	log.WithField("dir", dir).Infof("Found %d files to process", len(files))
	return files, nil
}
