package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	logxi "github.com/mgutz/logxi/v1"
	"github.com/pkg/errors"
)

const (
	logFileName = "tween-demo.log"
	maxLogSize  = 10 * 1024 * 1024
)

// rotatedLogPath names the file an oversized log is moved to
var rotatedLogPath = func(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("tween-demo-%s.log", now.Format("20060102-150405")))
}

// setupLogging routes the demo logger to dir/tween-demo.log when debug is set
// The terminal owns stdout and stderr, so without debug all output is discarded.
// A log file larger than maxLogSize is rotated aside with a timestamp suffix.
func setupLogging(dir string, debug bool) (logxi.Logger, *os.File) {
	if !debug {
		return logxi.NullLog, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return logxi.NullLog, nil
	}

	logPath := filepath.Join(dir, logFileName)
	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := rotatedLogPath(dir, time.Now())
		rotateErr = errors.Wrapf(os.Rename(logPath, rotated), "failed to rotate %s", logPath)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return logxi.NullLog, nil
	}

	logger := logxi.NewLogger(logxi.NewConcurrentWriter(f), "tween-demo")
	logger.SetLevel(logxi.LevelDebug)
	if rotateErr != nil {
		logger.Warn("log rotation failed, appending to existing file", "err", rotateErr)
	}
	return logger, f
}
