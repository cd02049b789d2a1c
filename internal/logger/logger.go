// Package logger sets up the process logger once and hands it out to the
// rest of the module. Level and format come from the environment.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var defaultLogger *logrus.Logger

// Setup builds the default logger from QUADDIFF_LOG_LEVEL
// (debug|info|warn|error) and QUADDIFF_LOG_FORMAT (text|json). Output goes
// to stderr.
func Setup() *logrus.Logger {
	return SetupWith(os.Stderr, os.Getenv("QUADDIFF_LOG_LEVEL"), os.Getenv("QUADDIFF_LOG_FORMAT"))
}

// SetupWith is Setup with explicit output, level and format.
func SetupWith(w io.Writer, level, format string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)

	l.SetLevel(logrus.InfoLevel)
	switch strings.ToLower(level) {
	case "debug":
		l.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		l.SetLevel(logrus.WarnLevel)
	case "error":
		l.SetLevel(logrus.ErrorLevel)
	}

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	defaultLogger = l
	return l
}

// L returns the default logger, setting it up on first use.
func L() *logrus.Logger {
	if defaultLogger == nil {
		return Setup()
	}
	return defaultLogger
}
