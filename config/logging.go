package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// SetupLogging opens the per-user log file and returns the logger every
// command shares. Commands print to stdout; the log file keeps a quiet
// record of what the client did. dump raises the level to debug so the
// API client's request and response dumps are captured too.
func SetupLogging(dump bool) (*logrus.Logger, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	logsDir := filepath.Join(dir, logsDirName)
	if err := os.MkdirAll(logsDir, 0700); err != nil {
		return nil, fmt.Errorf("creating %s: %w", logsDir, err)
	}
	path := filepath.Join(logsDir, logFileName)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	logger := logrus.New()
	logger.SetOutput(file)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if dump {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger, nil
}
