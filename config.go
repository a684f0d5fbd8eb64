package halfloop

import (
	"runtime"

	"github.com/google/uuid"
)

// RunConfig holds the parameters shared by the cmd/ mains: how many worker
// goroutines the brute-force stage may use, where tuple input comes from,
// whether to log progress, and a run identifier for correlating log lines
// across concurrent invocations. Grounded in the teacher's Config/Validate
// pattern, trimmed to the fields a HALFLOOP CLI tool actually needs.
type RunConfig struct {
	Threads   int
	InputPath string
	Verbose   bool
	RunID     uuid.UUID
}

// NewRunConfig returns a RunConfig with a fresh run ID, mirroring how the
// teacher's constructors fill in defaults before Validate is called.
func NewRunConfig() *RunConfig {
	return &RunConfig{RunID: uuid.New()}
}

// Validate checks c for use by a cmd/ main, filling in Threads with
// runtime.NumCPU() when unset. Mirrors the teacher's Config.Validate,
// called once before the pipeline starts.
func (c *RunConfig) Validate() error {
	if c == nil {
		return &ValidationError{Field: "config", Reason: "cannot be nil"}
	}
	if c.Threads <= 0 {
		c.Threads = runtime.NumCPU()
	}
	if c.InputPath == "" {
		return &ValidationError{Field: "input_path", Reason: "must not be empty"}
	}
	if c.RunID == uuid.Nil {
		c.RunID = uuid.New()
	}
	return nil
}
