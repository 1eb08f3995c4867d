// Package logging configures the process logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params configures Setup. An empty FileName disables file logging; Stderr
// copies every entry to standard error as well.
type Params struct {
	FileName string
	Stderr   bool
	Level    string
	JSON     bool
}

// Setup builds a logger from params. Without a file and without stderr the
// logger discards its output, so the interactive shell stays clean.
func Setup(params Params) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(GetLevel(params.Level))
	if params.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	var writers []io.Writer
	if params.FileName != "" {
		fileName := params.FileName
		if !strings.HasSuffix(fileName, ".log") {
			fileName += ".log"
		}
		if err := os.MkdirAll(filepath.Dir(fileName), 0o755); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   fileName,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				LocalTime:  false,
				Compress:   true,
			})
		}
	}
	if params.Stderr {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(NewCombinedWriter(writers...))
	}
	return logger
}

// GetLevel parses a level name. Unknown names log at info.
func GetLevel(level string) logrus.Level {
	l, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return l
}
