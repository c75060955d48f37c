// Package logging builds the process-wide logrus logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a logger at the given level. Production uses JSON output.
func New(level string, production bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(lvl)
	if production {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}

// Discard returns a logger that drops everything, for tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
