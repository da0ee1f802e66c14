//go:build unix

package rclone_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/babblewitz/internal/adapters/rclone"
	"go.trai.ch/babblewitz/internal/core/domain"
	"go.trai.ch/babblewitz/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// fakeRclone answers "version", logs every copy and creates the destination.
// Copies whose source mentions hoi4 fail.
const fakeRclone = `#!/bin/sh
if [ "$1" = version ]; then
  echo "rclone v1.66.0"
  exit 0
fi
echo "$@" >> "$RCLONE_LOG"
case "$8" in
  *hoi4*) exit 1 ;;
esac
touch "$9"
`

func writeFake(t *testing.T) (bin, logFile string) {
	t.Helper()
	dir := t.TempDir()
	bin = filepath.Join(dir, "rclone")
	require.NoError(t, os.WriteFile(bin, []byte(fakeRclone), 0o700)) //nolint:gosec // test executable
	logFile = filepath.Join(dir, "calls.log")
	t.Setenv("RCLONE_LOG", logFile)
	return bin, logFile
}

func TestSyncer_Sync(t *testing.T) {
	bin, logFile := writeFake(t)
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.True(t, strings.HasPrefix(msg, "could not sync hoi4/canada.zip"), msg)
	}).Times(1)

	dest := t.TempDir()
	s := rclone.NewSyncer(log, rclone.WithBinary(bin), rclone.WithOutput(io.Discard))
	require.NoError(t, s.Sync(context.Background(), dest))

	for _, asset := range rclone.Assets {
		_, err := os.Stat(filepath.Join(dest, asset))
		if strings.HasPrefix(asset, "hoi4/") {
			assert.True(t, os.IsNotExist(err), asset)
			continue
		}
		assert.NoError(t, err, asset)
	}

	calls, err := os.ReadFile(logFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(calls)), "\n")
	require.Len(t, lines, len(rclone.Assets))
	assert.Equal(t,
		"copyto --s3-provider=AWS --s3-endpoint s3.us-west-002.backblazeb2.com --s3-no-check-bucket "+
			"--log-level ERROR :s3:eu4saves-test-cases/babblewitz/ck3/autosave.zip "+
			filepath.Join(dest, "ck3", "autosave.zip")+" --progress",
		lines[0])
}

func TestSyncer_MissingTool(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := rclone.NewSyncer(mocks.NewMockLogger(ctrl), rclone.WithBinary(filepath.Join(t.TempDir(), "missing")))

	err := s.Sync(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrToolMissing))
}

func TestSyncer_Canceled(t *testing.T) {
	bin, _ := writeFake(t)
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := rclone.NewSyncer(log, rclone.WithBinary(bin), rclone.WithOutput(io.Discard), rclone.WithAssets("eu4/a.zip"))
	assert.Error(t, s.Sync(ctx, t.TempDir()))
}
