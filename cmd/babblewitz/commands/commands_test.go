package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/babblewitz/cmd/babblewitz/commands"
	"go.trai.ch/babblewitz/internal/app"
	"go.trai.ch/babblewitz/internal/core/ports"
)

type fakeApp struct {
	build   *app.BuildOptions
	task    string
	taskOpt *app.TaskOptions
	synced  string
	err     error
}

func (f *fakeApp) Build(_ context.Context, opts app.BuildOptions) error {
	f.build = &opts
	return f.err
}

func (f *fakeApp) RunTask(_ context.Context, name string, opts app.TaskOptions) error {
	f.task = name
	f.taskOpt = &opts
	return f.err
}

func (f *fakeApp) SyncAssets(_ context.Context, dest string) error {
	f.synced = dest
	return f.err
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	cli.SetSettingsDir(t.TempDir())
	var out bytes.Buffer
	cli.SetOutput(&out)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestTask_Defaults(t *testing.T) {
	f := &fakeApp{}
	_, err := execute(t, f, "task", "can-parse")
	require.NoError(t, err)

	assert.Equal(t, "can-parse", f.task)
	require.NotNil(t, f.taskOpt)
	assert.Equal(t, app.TaskOptions{
		ImplsDir:  app.DefaultImplsDir,
		CorpusDir: app.DefaultCorpusDir,
		SavesDir:  app.DefaultSavesDir,
		Timeout:   60 * time.Second,
		Workers:   runtime.NumCPU(),
		Format:    ports.FormatTable,
		DBPath:    app.DefaultDBPath,
	}, *f.taskOpt)
}

func TestTask_Flags(t *testing.T) {
	f := &fakeApp{}
	_, err := execute(t, f, "task", "deserialization",
		"--timeout", "5s", "--workers", "3", "--record", "--db", "out.db",
		"--format", "GitHub", "--implementation", "jomini", "--impls-dir", "x")
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, f.taskOpt.Timeout)
	assert.Equal(t, 3, f.taskOpt.Workers)
	assert.True(t, f.taskOpt.Record)
	assert.Equal(t, "out.db", f.taskOpt.DBPath)
	assert.Equal(t, ports.FormatGitHub, f.taskOpt.Format)
	assert.Equal(t, "jomini", f.taskOpt.Implementation)
	assert.Equal(t, "x", f.taskOpt.ImplsDir)
}

func TestTask_EnvironmentOverrides(t *testing.T) {
	t.Setenv("BABBLEWITZ_TIMEOUT", "2s")
	t.Setenv("BABBLEWITZ_CORPUS_DIR", "elsewhere")

	f := &fakeApp{}
	_, err := execute(t, f, "task", "can-parse")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, f.taskOpt.Timeout)
	assert.Equal(t, "elsewhere", f.taskOpt.CorpusDir)
}

func TestTask_SettingsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "babblewitz.yaml"), []byte("workers: 7\nformat: json\n"), 0o600))

	f := &fakeApp{}
	cli := commands.New(f)
	cli.SetSettingsDir(dir)
	cli.SetArgs([]string{"task", "can-parse"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Equal(t, 7, f.taskOpt.Workers)
	assert.Equal(t, ports.FormatJSON, f.taskOpt.Format)
}

func TestTask_RequiresName(t *testing.T) {
	_, err := execute(t, &fakeApp{}, "task")
	assert.Error(t, err)
}

func TestTask_UnknownFormat(t *testing.T) {
	f := &fakeApp{}
	_, err := execute(t, f, "task", "can-parse", "--format", "xml")
	assert.ErrorContains(t, err, "unknown report format")
	assert.Nil(t, f.taskOpt)
}

func TestBuild(t *testing.T) {
	f := &fakeApp{}
	_, err := execute(t, f, "build", "--implementation", "jomini")
	require.NoError(t, err)
	assert.Equal(t, &app.BuildOptions{
		ImplsDir:       app.DefaultImplsDir,
		Implementation: "jomini",
		Format:         ports.FormatTable,
	}, f.build)
}

func TestBuild_PropagatesError(t *testing.T) {
	f := &fakeApp{err: assert.AnError}
	_, err := execute(t, f, "build")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSyncAssets(t *testing.T) {
	f := &fakeApp{}
	_, err := execute(t, f, "sync-assets")
	require.NoError(t, err)
	assert.Equal(t, app.DefaultSavesDir, f.synced)

	_, err = execute(t, f, "sync-assets", "--dest", "tmp/saves")
	require.NoError(t, err)
	assert.Equal(t, "tmp/saves", f.synced)
}

func TestLogJSONHook(t *testing.T) {
	var got *bool
	cli := commands.New(&fakeApp{})
	cli.SetSettingsDir(t.TempDir())
	cli.SetLogJSONHook(func(b bool) { got = &b })
	cli.SetArgs([]string{"--log-json", "build"})
	require.NoError(t, cli.Execute(context.Background()))
	require.NotNil(t, got)
	assert.True(t, *got)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, &fakeApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "babblewitz version dev")
}

func TestRoot_Help(t *testing.T) {
	out, err := execute(t, &fakeApp{}, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "sync-assets")
}
