package halfloop

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestLoggerPrintfIncludesRunIDAndMessage(t *testing.T) {
	var buf bytes.Buffer
	runID := uuid.New()
	log := NewLoggerWithRunID(&buf, runID)

	log.Info("found %d good pairs", 7)

	out := buf.String()
	if !strings.Contains(out, "found 7 good pairs") {
		t.Errorf("Printf() output %q does not contain the formatted message", out)
	}
	if !strings.Contains(out, runID.String()[:8]) {
		t.Errorf("Printf() output %q does not contain the run ID prefix", out)
	}
}

func TestLoggerRunIDMatchesConstructor(t *testing.T) {
	runID := uuid.New()
	log := NewLoggerWithRunID(&bytes.Buffer{}, runID)
	if log.RunID() != runID {
		t.Errorf("RunID() = %v, want %v", log.RunID(), runID)
	}
}

func TestNewLoggerAssignsFreshRunID(t *testing.T) {
	a := NewLogger(&bytes.Buffer{})
	b := NewLogger(&bytes.Buffer{})
	if a.RunID() == b.RunID() {
		t.Error("two NewLogger() calls produced the same run ID")
	}
}

func TestLoggerErrorUsesRedColorCode(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf)
	log.Error("failure")
	if !strings.Contains(buf.String(), colorCodes[Red]) {
		t.Error("Error() did not use the red color code")
	}
}
