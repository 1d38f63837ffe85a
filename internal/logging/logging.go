// Package logging builds the process-wide structured logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/bombsimon/logrusr/v3"
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
)

// New returns a logr.Logger backed by logrus. The level comes from
// LOG_LEVEL (debug, info, warn, error) and the format from LOG_FORMAT
// (text or json).
func New(name string) logr.Logger {
	return NewWithOutput(name, os.Stdout)
}

// NewWithOutput is New with an explicit sink. The CLI logs to stderr so
// blueprint output stays clean on stdout.
func NewWithOutput(name string, out io.Writer) logr.Logger {
	l := logrus.New()
	l.SetOutput(out)
	if strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_FORMAT")), "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	l.SetLevel(parseLevel(os.Getenv("LOG_LEVEL")))
	return logrusr.New(l).WithName(name)
}

func parseLevel(raw string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "trace":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
