package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logFileName = "neon-snake.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging returns the game logger. Output is discarded unless debug is set,
// in which case it goes to dir/neon-snake.log; the terminal is never written to.
// The returned file is nil when logging is disabled.
func setupLogging(dir string, debug bool) (*logrus.Logger, *os.File) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if !debug {
		return logger, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return logger, nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("neon-snake-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return logger, nil
	}

	logger.SetOutput(logFile)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	logger.WithField("pid", os.Getpid()).Info("logging started")
	return logger, logFile
}
