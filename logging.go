package halfloop

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Color selects the ANSI color a Logger wraps a message in, mirroring the
// color_t enum passed to print_message.
type Color int

const (
	White Color = iota
	Red
	Green
	Blue
)

var colorCodes = map[Color]string{
	Red:   "\x1b[31m",
	Green: "\x1b[32m",
	Blue:  "\x1b[34m",
}

const resetColor = "\x1b[0m"

// Logger writes timestamped, colorized, run-correlated progress messages to
// an output stream. Concurrent calls from multiple goroutines (e.g. brute
// force worker threads) are serialized, mirroring the mutex print_message
// relies on via stdio's internal locking.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	runID uuid.UUID
}

// NewLogger returns a Logger writing to out, tagged with a fresh run ID for
// correlating log lines from a single invocation.
func NewLogger(out io.Writer) *Logger {
	return &Logger{out: out, runID: uuid.New()}
}

// NewStderrLogger returns a Logger writing to standard error, the default
// destination for the CLI tools.
func NewStderrLogger() *Logger {
	return NewLogger(os.Stderr)
}

// NewLoggerWithRunID returns a Logger writing to out, tagged with an
// already-chosen run ID. Used by cmd/ mains so a RunConfig's RunID (set
// once in Validate) is the same ID that ends up in every log line.
func NewLoggerWithRunID(out io.Writer, runID uuid.UUID) *Logger {
	return &Logger{out: out, runID: runID}
}

// RunID returns the logger's correlation identifier.
func (l *Logger) RunID() uuid.UUID {
	return l.runID
}

// Printf formats a message and writes it with the given color, prefixed by
// the current time and the run ID. Mirrors print_message's "[HH:MM:SS]
// <colored text>" layout, with the run ID's first eight characters inserted
// after the timestamp for multi-run log correlation.
func (l *Logger) Printf(c Color, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	now := time.Now()
	code, ok := colorCodes[c]
	if !ok {
		code = ""
	}
	reset := resetColor
	if code == "" {
		reset = ""
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[%02d:%02d:%02d] [%s] %s%s%s\n",
		now.Hour(), now.Minute(), now.Second(), l.runID.String()[:8], code, msg, reset)
}

func (l *Logger) Info(format string, args ...any)  { l.Printf(White, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.Printf(Red, format, args...) }
func (l *Logger) Success(format string, args ...any) { l.Printf(Green, format, args...) }
