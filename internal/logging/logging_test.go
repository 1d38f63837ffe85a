package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"archsmith/internal/tester"
)

func TestParseLevel(t *testing.T) {
	tester.Eq(t, logrus.DebugLevel, parseLevel("debug"))
	tester.Eq(t, logrus.DebugLevel, parseLevel(" TRACE "))
	tester.Eq(t, logrus.WarnLevel, parseLevel("warning"))
	tester.Eq(t, logrus.ErrorLevel, parseLevel("error"))
	tester.Eq(t, logrus.InfoLevel, parseLevel(""))
	tester.Eq(t, logrus.InfoLevel, parseLevel("verbose"))
}

func TestNewWritesStructuredLines(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "info")

	var buf bytes.Buffer
	log := NewWithOutput("archsmith", &buf)
	log.Info("run starting", "tier", "detailed")

	line := buf.String()
	tester.Contains(t, line, `"run starting"`)
	tester.Contains(t, line, "detailed")
	tester.Contains(t, line, "archsmith")
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("LOG_LEVEL", "info")

	var buf bytes.Buffer
	log := NewWithOutput("archsmith", &buf)
	log.V(1).Info("stage detail")

	if strings.Contains(buf.String(), "stage detail") {
		t.Fatalf("V(1) should be suppressed at info level: %q", buf.String())
	}
}
