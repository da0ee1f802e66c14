package domain

import (
	"fmt"
	"time"
)

// OutcomeStatus classifies one invocation of an implementation.
type OutcomeStatus string

const (
	// StatusSucceeded means the process exited zero and honored the two-line contract.
	StatusSucceeded OutcomeStatus = "succeeded"
	// StatusMalformedOutput means the process exited zero but its output broke the contract.
	StatusMalformedOutput OutcomeStatus = "malformed-output"
	// StatusTimedOut means the process outlived the execution window and was killed.
	StatusTimedOut OutcomeStatus = "timed-out"
	// StatusCrashed means the process exited non-zero.
	StatusCrashed OutcomeStatus = "crashed"
	// StatusBuildFailed means the implementation never became runnable.
	StatusBuildFailed OutcomeStatus = "build-failed-upstream"
	// StatusIOFailure means the process could not be spawned or its pipes failed.
	StatusIOFailure OutcomeStatus = "io-failure"
)

// Outcome is the classified result of one invocation. Duration and Result are
// only meaningful when Status is StatusSucceeded.
type Outcome struct {
	Status OutcomeStatus
	// Duration is the self-reported parse time from line 1 of stdout.
	Duration time.Duration
	// Result is line 2 of stdout, kept verbatim.
	Result string
	// ExitCode is the process exit status; 128+signal when signaled, -1 when unknown.
	ExitCode int
	// RawLine holds the offending first line for malformed output.
	RawLine string
	// Stderr is the tail of the captured standard error.
	Stderr string
	// WallClock is the harness-measured time from spawn to exit.
	WallClock time.Duration
	// InputBytes is the size of the payload written to stdin.
	InputBytes int
	// Detail explains failures in one line.
	Detail string
}

// Succeeded reports whether the invocation honored the contract.
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSucceeded
}

// Describe renders the outcome for failure listings.
func (o Outcome) Describe() string {
	switch o.Status {
	case StatusSucceeded:
		return fmt.Sprintf("succeeded in %dµs: %s", o.Duration.Microseconds(), o.Result)
	case StatusCrashed:
		if o.Detail != "" {
			return fmt.Sprintf("crashed (exit %d): %s", o.ExitCode, o.Detail)
		}
		return fmt.Sprintf("crashed (exit %d)", o.ExitCode)
	case StatusTimedOut:
		return fmt.Sprintf("timed out after %s", o.WallClock.Round(time.Millisecond))
	default:
		if o.Detail != "" {
			return fmt.Sprintf("%s: %s", o.Status, o.Detail)
		}
		return string(o.Status)
	}
}

// Invocation is one request to run a task against a payload.
type Invocation struct {
	Task TaskName
	// Games are passed as --game arguments in this order.
	Games []Game
	Input []byte
	// Timeout bounds the whole interaction, measured from spawn.
	Timeout time.Duration
}

// ProtocolArgs returns the arguments appended to the run command.
func (inv Invocation) ProtocolArgs() []string {
	args := make([]string, 0, 2+2*len(inv.Games))
	args = append(args, "--task", inv.Task.String())
	for _, g := range inv.Games {
		args = append(args, "--game", g.String())
	}
	return args
}

// BuildStatus classifies a build.
type BuildStatus string

const (
	// BuildReady means the implementation can be run.
	BuildReady BuildStatus = "ready"
	// BuildFailedStatus means the build command exited non-zero or could not start.
	BuildFailedStatus BuildStatus = "build-failed"
)

// BuildResult is the outcome of bringing one implementation to a runnable state.
type BuildResult struct {
	Implementation string
	Status         BuildStatus
	// Command is the build command line, empty when the implementation has none.
	Command  string
	ExitCode int
	// Output is the combined stdout and stderr of the build, kept for diagnostics only.
	Output   string
	Duration time.Duration
	Err      error
}

// Ready reports whether the implementation can be run.
func (b BuildResult) Ready() bool {
	return b.Status == BuildReady
}
