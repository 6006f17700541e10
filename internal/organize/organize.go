// Package organize moves per-service test artifacts into one folder per
// service so that the resources pipeline can run on each folder.
package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/symtalha14/perfagg/internal/locate"
)

// serviceKinds are the file name endings of per-service artifacts, named
// run_<n>_<service>_<kind>.json.
var serviceKinds = []string{
	"_cloudwatch_logs.json",
	"_cpu_metrics.json",
	"_memory_metrics.json",
	"_network_rx_bytes_metrics.json",
	"_network_tx_bytes_metrics.json",
}

// Result counts what one directory pass did.
type Result struct {
	Dir     string   // Directory that was organized
	Created []string // Service folders created
	Moved   int      // Files moved into a service folder
	Kept    int      // Files left in place
	Failed  int      // Files that could not be moved
}

// ServiceFromFilename returns the service named by a per-service artifact,
// or "" when the file is not one (k6 results, averages, timings).
func ServiceFromFilename(name string) string {
	if !strings.HasPrefix(name, "run_") {
		return ""
	}

	for _, kind := range serviceKinds {
		if strings.Contains(name, kind) {
			parts := strings.Split(name, "_")
			if len(parts) >= 3 {
				return parts[2]
			}
			return ""
		}
	}

	return ""
}

// Directory creates the service folders in dir and moves every JSON
// artifact belonging to a service into its folder. A file that cannot be
// moved is logged and counted; the pass carries on with the next file.
func Directory(dir string, services []string, log logrus.FieldLogger) (Result, error) {
	result := Result{Dir: dir}

	if err := locate.RequireDir(dir); err != nil {
		return result, err
	}

	for _, service := range services {
		servicePath := filepath.Join(dir, service)
		if _, err := os.Stat(servicePath); err == nil {
			continue
		}
		if err := os.MkdirAll(servicePath, 0755); err != nil {
			return result, fmt.Errorf("failed to create %s: %w", servicePath, err)
		}
		result.Created = append(result.Created, service)
		log.WithField("folder", servicePath).Debug("Created service folder")
	}

	files, err := locate.Files(dir, "*.json")
	if err != nil {
		return result, err
	}

	for _, path := range files {
		name := filepath.Base(path)
		service := ServiceFromFilename(name)
		if service == "" {
			result.Kept++
			log.WithField("file", name).Debug("Kept in root")
			continue
		}

		destination := filepath.Join(dir, service, name)
		if err := move(path, destination); err != nil {
			result.Failed++
			log.WithField("file", name).WithError(err).Warn("Failed to move file")
			continue
		}

		result.Moved++
		log.WithFields(logrus.Fields{"file": name, "service": service}).Debug("Moved")
	}

	log.WithFields(logrus.Fields{
		"dir":   dir,
		"moved": result.Moved,
	}).Info("Organized directory")

	return result, nil
}

// Tree organizes every sub-directory of base.
func Tree(base string, services []string, log logrus.FieldLogger) ([]Result, error) {
	if err := locate.RequireDir(base); err != nil {
		return nil, err
	}

	dirs, err := locate.SubDirs(base, "")
	if err != nil {
		return nil, err
	}

	log.WithField("base", base).Infof("Found %d test directories to organize", len(dirs))

	results := make([]Result, 0, len(dirs))
	for _, name := range dirs {
		result, err := Directory(filepath.Join(base, name), services, log)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

// move renames src to dst, creating the folder of services that are not
// in the configured list.
func move(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return os.Rename(src, dst)
}
