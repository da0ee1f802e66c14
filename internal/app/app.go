// Package app implements the application layer for babblewitz.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/babblewitz/internal/build"
	"go.trai.ch/babblewitz/internal/core/domain"
	"go.trai.ch/babblewitz/internal/core/ports"
	"go.trai.ch/babblewitz/internal/engine/builder"
	"go.trai.ch/babblewitz/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// Default locations relative to the working directory.
const (
	DefaultImplsDir  = "impls"
	DefaultCorpusDir = "corpus/game"
	DefaultSavesDir  = "corpus/saves"
	DefaultDBPath    = ".babblewitz/results.db"
)

var errFailedBuilds = zerr.New("some implementations did not build")

// App represents the main application logic.
type App struct {
	registry  ports.ImplementationRegistry
	corpus    ports.CorpusLoader
	saves     ports.SaveFileSource
	builder   *builder.Builder
	scheduler *scheduler.Scheduler
	renderer  ports.ReportRenderer
	syncer    ports.AssetSyncer
	stores    ports.ResultStoreOpener
	logger    ports.Logger

	output io.Writer
	now    func() time.Time
	runID  func() string
}

// New creates a new App instance.
func New(
	registry ports.ImplementationRegistry,
	corpus ports.CorpusLoader,
	saves ports.SaveFileSource,
	b *builder.Builder,
	sched *scheduler.Scheduler,
	renderer ports.ReportRenderer,
	syncer ports.AssetSyncer,
	stores ports.ResultStoreOpener,
	logger ports.Logger,
) *App {
	return &App{
		registry:  registry,
		corpus:    corpus,
		saves:     saves,
		builder:   b,
		scheduler: sched,
		renderer:  renderer,
		syncer:    syncer,
		stores:    stores,
		logger:    logger,
		output:    os.Stdout,
		now:       time.Now,
		runID:     uuid.NewString,
	}
}

// WithOutput sets where reports are written.
func (a *App) WithOutput(w io.Writer) *App {
	a.output = w
	return a
}

// WithClock sets the clock stamped on reports.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithRunID sets the generator of persisted run identifiers.
func (a *App) WithRunID(gen func() string) *App {
	a.runID = gen
	return a
}

// BuildOptions configures the build use case.
type BuildOptions struct {
	ImplsDir string
	// Implementation restricts the build to one implementation directory name.
	Implementation string
	Format         ports.Format
}

// Build builds every discovered implementation in name order and renders a
// summary. It fails when any build failed.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	discovery, err := a.discover(opts.ImplsDir, opts.Implementation)
	if err != nil {
		return err
	}

	results := a.builder.BuildAll(ctx, discovery.Implementations)
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.renderer.RenderBuilds(a.output, results, opts.Format); err != nil {
		return zerr.Wrap(err, "failed to render build summary")
	}

	var failed []string
	for _, res := range results {
		if !res.Ready() {
			failed = append(failed, res.Implementation)
		}
	}
	if len(failed) > 0 {
		return errors.Join(domain.ErrBuildFailed, zerr.With(errFailedBuilds, "implementations", failed))
	}
	return nil
}

// TaskOptions configures the task use case.
type TaskOptions struct {
	ImplsDir  string
	CorpusDir string
	SavesDir  string
	// Implementation restricts the run to one implementation directory name.
	Implementation string
	Timeout        time.Duration
	Workers        int
	Format         ports.Format
	// Record persists every outcome to the database at DBPath.
	Record bool
	DBPath string
}

// RunTask builds and runs every implementation supporting the task over its
// inputs, then renders the report.
func (a *App) RunTask(ctx context.Context, name string, opts TaskOptions) error {
	task, err := domain.ParseTaskName(name)
	if err != nil {
		return err
	}

	discovery, err := a.discover(opts.ImplsDir, opts.Implementation)
	if err != nil {
		return err
	}
	impls := slices.DeleteFunc(slices.Clone(discovery.Implementations), func(impl *domain.Implementation) bool {
		return !impl.SupportsTask(task)
	})
	if len(impls) == 0 {
		return zerr.With(domain.ErrNoImplementationsForTask, "task", task.String())
	}

	report := domain.NewReport(task, a.now())
	for _, inv := range discovery.Invalid {
		report.AddInvalid(inv)
	}

	var work []scheduler.Work
	if task.Kind() == domain.KindPerformance {
		work, err = a.planPerformance(ctx, task, impls, opts.SavesDir, report)
	} else {
		work, err = a.planConformance(task, impls, opts.CorpusDir, report)
	}
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("running %s with %d implementations", task, len(impls)))
	if err := a.scheduler.Run(ctx, task, work, report, scheduler.Options{
		Workers: opts.Workers,
		Timeout: opts.Timeout,
	}); err != nil {
		return err
	}

	if err := a.renderer.Render(a.output, report, opts.Format); err != nil {
		return zerr.Wrap(err, "failed to render report")
	}

	if opts.Record {
		return a.record(ctx, opts.DBPath, report)
	}
	return nil
}

// SyncAssets downloads the performance save files into dest.
func (a *App) SyncAssets(ctx context.Context, dest string) error {
	if err := a.syncer.Sync(ctx, dest); err != nil {
		return err
	}
	a.logger.Info("asset sync completed")
	return nil
}

func (a *App) discover(dir, only string) (ports.Discovery, error) {
	discovery, err := a.registry.Discover(dir)
	if err != nil {
		return ports.Discovery{}, zerr.Wrap(err, "failed to discover implementations")
	}
	if only != "" {
		discovery.Implementations = slices.DeleteFunc(slices.Clone(discovery.Implementations), func(impl *domain.Implementation) bool {
			return impl.Name != only
		})
		discovery.Invalid = slices.DeleteFunc(slices.Clone(discovery.Invalid), func(inv domain.InvalidImplementation) bool {
			return inv.Name != only
		})
		if len(discovery.Implementations) == 0 && len(discovery.Invalid) > 0 {
			return ports.Discovery{}, discovery.Invalid[0].Err
		}
	}
	if len(discovery.Implementations) == 0 {
		err := zerr.With(domain.ErrNoImplementations, "dir", dir)
		if only != "" {
			err = zerr.With(err, "implementation", only)
		}
		return ports.Discovery{}, err
	}
	return discovery, nil
}

func (a *App) planConformance(
	task domain.TaskName,
	impls []*domain.Implementation,
	dir string,
	report *domain.Report,
) ([]scheduler.Work, error) {
	corpus, err := a.corpus.Load(dir)
	if err != nil {
		return nil, err
	}
	for _, rej := range corpus.Rejected {
		report.Reject(rej)
	}
	if corpus.Index.Len() == 0 {
		return nil, zerr.With(domain.ErrCorpusEmpty, "dir", dir)
	}

	work := make([]scheduler.Work, 0, len(impls))
	for _, impl := range impls {
		w := scheduler.Work{Implementation: impl}
		for _, planned := range corpus.Index.Plan(impl.GamesFor(task)) {
			w.Jobs = append(w.Jobs, scheduler.Job{
				Source: planned.Entry.Path,
				Digest: planned.Entry.Digest,
				Input:  planned.Entry.Content,
				Games:  planned.Games,
			})
		}
		work = append(work, w)
	}
	return work, nil
}

func (a *App) planPerformance(
	ctx context.Context,
	task domain.TaskName,
	impls []*domain.Implementation,
	dir string,
	report *domain.Report,
) ([]scheduler.Work, error) {
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		a.logger.Info("save files not found in " + dir + ", syncing assets")
		if err := a.syncer.Sync(ctx, dir); err != nil {
			return nil, err
		}
	}

	saves, err := a.saves.List(dir)
	if err != nil {
		return nil, err
	}

	// A save that cannot be read is rejected once and skipped for every
	// implementation.
	payloads := make(map[string][]byte)
	unreadable := make(map[string]bool)
	work := make([]scheduler.Work, 0, len(impls))
	for _, impl := range impls {
		w := scheduler.Work{Implementation: impl}
		games := impl.GamesFor(task)
		for _, sf := range saves {
			if !slices.Contains(games, sf.Game) || unreadable[sf.Path] {
				continue
			}
			data, ok := payloads[sf.Path]
			if !ok {
				data, err = a.saves.Read(sf)
				if err != nil {
					a.logger.Warn("skipping save file " + sf.Name + ": " + err.Error())
					report.Reject(domain.RejectedFile{Path: sf.Name, Reason: err})
					unreadable[sf.Path] = true
					continue
				}
				payloads[sf.Path] = data
			}
			w.Jobs = append(w.Jobs, scheduler.Job{
				Source: sf.Name,
				Digest: sf.Digest,
				Input:  data,
				Games:  []domain.Game{sf.Game},
			})
		}
		work = append(work, w)
	}
	return work, nil
}

func (a *App) record(ctx context.Context, path string, report *domain.Report) (err error) {
	if path == "" {
		path = DefaultDBPath
	}
	store, err := a.stores.Open(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = zerr.Wrap(cerr, "failed to close results database")
		}
	}()

	run := ports.RunInfo{ID: a.runID(), Version: build.Version}
	if err := store.SaveRun(ctx, run, report); err != nil {
		return err
	}
	a.logger.Info("recorded run " + run.ID + " to " + path)
	return nil
}
