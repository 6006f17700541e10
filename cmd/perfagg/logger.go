package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/symtalha14/perfagg/internal/config"
)

// newLogger creates a stderr logger whose level comes from LOG_LEVEL.
// If verbose is true the level is DebugLevel regardless.
func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})

	logLevel := config.LogLevel()
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	if err != nil {
		log.Warnf("Invalid LOG_LEVEL '%s', defaulting to 'info'", logLevel)
	}

	return log
}
