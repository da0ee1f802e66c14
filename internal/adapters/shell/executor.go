// Package shell provides the subprocess executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strconv"
	"time"

	"github.com/mattn/go-shellwords"
	"go.trai.ch/babblewitz/internal/core/domain"
	"go.trai.ch/babblewitz/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// maxStdout bounds the captured stdout of one invocation.
	maxStdout = 8 << 20
	// maxStderr bounds the stderr tail kept for diagnostics.
	maxStderr = 4 << 10
	// maxBuildOutput bounds the build output kept in a BuildResult.
	maxBuildOutput = 64 << 10
	// defaultWaitDelay is how long pipes may stay open after the process exits
	// or is killed.
	defaultWaitDelay = 2 * time.Second
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger      ports.Logger
	waitDelay   time.Duration
	stdoutLimit int
}

// Option configures an Executor.
type Option func(*Executor)

// WithWaitDelay overrides how long Wait waits for pipes after exit or kill.
func WithWaitDelay(d time.Duration) Option {
	return func(e *Executor) {
		e.waitDelay = d
	}
}

// WithStdoutLimit overrides how many stdout bytes of one invocation are kept.
func WithStdoutLimit(n int) Option {
	return func(e *Executor) {
		e.stdoutLimit = n
	}
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger, opts ...Option) *Executor {
	e := &Executor{logger: logger, waitDelay: defaultWaitDelay, stdoutLimit: maxStdout}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Build runs the build command of impl in its directory without a timeout.
// Output is streamed to the logger and to output, and its tail retained in the
// result.
func (e *Executor) Build(ctx context.Context, impl *domain.Implementation, output io.Writer) domain.BuildResult {
	cmds := impl.Commands()
	result := domain.BuildResult{
		Implementation: impl.Name,
		Status:         domain.BuildReady,
		Command:        cmds.Build,
	}
	if cmds.Build == "" {
		return result
	}

	argv, err := splitCommand(cmds.Build)
	if err != nil {
		result.Status = domain.BuildFailedStatus
		result.ExitCode = -1
		result.Err = err
		return result
	}

	e.logger.Info("building " + impl.Name + " using: " + cmds.Build)

	captured := &tailBuffer{limit: maxBuildOutput}
	lw := &logWriter{logger: e.logger, prefix: "[" + impl.Name + "] "}
	writers := []io.Writer{captured, lw}
	if output != nil {
		writers = append(writers, output)
	}
	combined := io.MultiWriter(writers...)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // build commands come from implementation configs
	cmd.Dir = impl.Dir
	cmd.Stdout = combined
	cmd.Stderr = combined
	cmd.WaitDelay = e.waitDelay
	isolate(cmd)

	start := time.Now()
	err = cmd.Run()
	result.Duration = time.Since(start)
	_ = lw.Close()
	result.Output = captured.String()

	if err != nil {
		code := exitCode(cmd.ProcessState)
		result.Status = domain.BuildFailedStatus
		result.ExitCode = code
		result.Err = zerr.With(zerr.With(zerr.Wrap(err, "build command failed"), "exit_code", code), "implementation", impl.Name)
		return result
	}
	return result
}

// Execute runs one protocol invocation. The timeout window opens at spawn and
// covers writing stdin, reading stdout and waiting for exit.
func (e *Executor) Execute(ctx context.Context, impl *domain.Implementation, inv domain.Invocation) domain.Outcome {
	base := domain.Outcome{InputBytes: len(inv.Input), ExitCode: -1}

	argv, err := splitCommand(impl.Commands().Run)
	if err != nil {
		base.Status = domain.StatusIOFailure
		base.Detail = err.Error()
		return base
	}
	argv = append(argv, inv.ProtocolArgs()...)

	runCtx, cancel := withTimeout(ctx, inv.Timeout)
	defer cancel()

	stdout := &cappedBuffer{limit: e.stdoutLimit}
	stderr := &tailBuffer{limit: maxStderr}

	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...) //nolint:gosec // run commands come from implementation configs
	cmd.Dir = impl.Dir
	cmd.Stdin = bytes.NewReader(inv.Input)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = e.waitDelay
	isolate(cmd)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		base.Status = domain.StatusIOFailure
		base.Detail = zerr.Wrap(err, "failed to start process").Error()
		return base
	}
	err = cmd.Wait()
	base.WallClock = time.Since(start)
	_ = killGroup(cmd)

	base.Stderr = stderr.String()
	base.ExitCode = exitCode(cmd.ProcessState)

	return classify(ctx, runCtx, err, stdout, base)
}

func classify(parent, runCtx context.Context, waitErr error, stdout *cappedBuffer, base domain.Outcome) domain.Outcome {
	out := base
	switch {
	case parent.Err() != nil:
		out.Status = domain.StatusIOFailure
		out.Detail = "run canceled"
		return out
	case errors.Is(runCtx.Err(), context.DeadlineExceeded) && waitErr != nil:
		out.Status = domain.StatusTimedOut
		out.Detail = "killed after exceeding the timeout"
		return out
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(waitErr, &exitErr):
		out.Status = domain.StatusCrashed
		out.Detail = lastLine(out.Stderr)
		return out
	case errors.Is(waitErr, exec.ErrWaitDelay):
		out.Status = domain.StatusIOFailure
		out.Detail = "output pipes stayed open after the process exited"
		return out
	case waitErr != nil:
		out.Status = domain.StatusIOFailure
		out.Detail = waitErr.Error()
		return out
	}

	// A result cut off by the capture limit is not the verbatim line 2.
	if stdout.truncated && bytes.Count(stdout.Bytes(), []byte("\n")) < 2 {
		out.Status = domain.StatusMalformedOutput
		out.RawLine = firstOrEmpty(splitLines(stdout.Bytes()))
		out.Detail = "output exceeded " + strconv.Itoa(stdout.limit) + " bytes before the end of line 2"
		return out
	}

	parsed := parseOutput(stdout.Bytes())
	out.Status = parsed.Status
	out.Duration = parsed.Duration
	out.Result = parsed.Result
	out.RawLine = parsed.RawLine
	out.Detail = parsed.Detail
	return out
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// splitCommand splits a command line with POSIX shell quoting rules.
func splitCommand(line string) ([]string, error) {
	argv, err := shellwords.Parse(line)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidCommand.Error()), "command", line)
	}
	if len(argv) == 0 {
		return nil, zerr.With(domain.ErrInvalidCommand, "command", line)
	}
	return argv, nil
}

func lastLine(s string) string {
	lines := splitLines([]byte(s))
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i] != "" {
			return lines[i]
		}
	}
	return ""
}
