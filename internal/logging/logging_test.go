package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestLoggerLevels(t *testing.T) {
	oldNoColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = oldNoColor }()

	var out, errOut bytes.Buffer
	l := Logger{Out: &out, Err: &errOut}

	l.Infof("hidden %d", 1)
	l.Debugf("hidden %d", 2)
	if out.Len() != 0 {
		t.Fatalf("Expected no stdout output without flags, got %q", out.String())
	}

	l.Warnf("careful")
	if !strings.Contains(errOut.String(), "[warn] careful") {
		t.Errorf("Expected warning on stderr, got %q", errOut.String())
	}

	l.Verbose = true
	l.Infof("shown %d", 3)
	if !strings.Contains(out.String(), "[info] shown 3") {
		t.Errorf("Expected info output with verbose, got %q", out.String())
	}

	l.Debug = true
	l.Debugf("details")
	if !strings.Contains(out.String(), "[debug] details") {
		t.Errorf("Expected debug output with debug flag, got %q", out.String())
	}
}

func TestErrorfAndReturn(t *testing.T) {
	oldNoColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = oldNoColor }()

	var errOut bytes.Buffer
	l := Logger{Err: &errOut}

	err := l.ErrorfAndReturn("failed to save: %s", "disk full")
	if err == nil || err.Error() != "failed to save: disk full" {
		t.Fatalf("Expected returned error message, got %v", err)
	}
	if !strings.Contains(errOut.String(), "[error] failed to save: disk full") {
		t.Errorf("Expected error on stderr, got %q", errOut.String())
	}
}
