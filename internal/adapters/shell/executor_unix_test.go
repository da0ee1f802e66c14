//go:build unix

package shell_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/babblewitz/internal/core/domain"
)

func TestExecutor_Execute_SignalExitCode(t *testing.T) {
	exec := newExecutor(t)

	out := exec.Execute(context.Background(), newImpl(t, `sh -c 'kill -9 $$'`), invocation("x", domain.GameEU4))

	assert.Equal(t, domain.StatusCrashed, out.Status)
	assert.Equal(t, 137, out.ExitCode)
}

func TestExecutor_Execute_TimeoutReclaimsProcessGroup(t *testing.T) {
	exec := newExecutor(t)
	impl := newImpl(t, "")
	pidFile := filepath.Join(impl.Dir, "child.pid")
	impl.RunOverride = `sh -c 'sleep 30 & echo $! > child.pid; wait'`

	inv := invocation("x", domain.GameEU4)
	inv.Timeout = 300 * time.Millisecond

	start := time.Now()
	out := exec.Execute(context.Background(), impl, inv)
	elapsed := time.Since(start)

	assert.Equal(t, domain.StatusTimedOut, out.Status)
	assert.Zero(t, out.Duration)
	assert.Empty(t, out.Result)
	assert.Less(t, elapsed, 5*time.Second)

	raw, err := os.ReadFile(pidFile)
	require.NoError(t, err)
	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	require.NoError(t, err)

	// The background child shares the process group and must be gone too.
	require.Eventually(t, func() bool {
		return errors.Is(syscall.Kill(pid, 0), syscall.ESRCH)
	}, 5*time.Second, 50*time.Millisecond)
}

func TestExecutor_Execute_TimeoutIgnoresStdout(t *testing.T) {
	exec := newExecutor(t)
	inv := invocation("x", domain.GameEU4)
	inv.Timeout = 200 * time.Millisecond

	out := exec.Execute(context.Background(), newImpl(t, `sh -c 'echo 1500; echo 42; sleep 30'`), inv)

	assert.Equal(t, domain.StatusTimedOut, out.Status)
	assert.Empty(t, out.Result)
}

func TestExecutor_Execute_TimeoutWhileWritingInput(t *testing.T) {
	exec := newExecutor(t)
	inv := invocation(strings.Repeat("x", 8<<20), domain.GameEU4)
	inv.Timeout = 200 * time.Millisecond

	// The process never reads stdin, so the write blocks until the kill.
	out := exec.Execute(context.Background(), newImpl(t, `sh -c 'sleep 30'`), inv)

	assert.Equal(t, domain.StatusTimedOut, out.Status)
	assert.Less(t, out.WallClock, 5*time.Second)
}
