// Package scheduler drives built implementations over their inputs and folds
// every outcome into the run report.
package scheduler

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.trai.ch/babblewitz/internal/core/domain"
	"go.trai.ch/babblewitz/internal/core/ports"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// DefaultTimeout bounds one invocation when no timeout is configured.
const DefaultTimeout = 60 * time.Second

// Job is one input to feed to an implementation.
type Job struct {
	Source string
	Digest string
	Input  []byte
	// Games are passed as --game arguments and the outcome is recorded under each.
	Games []domain.Game
}

// Work is the set of jobs planned for one implementation.
type Work struct {
	Implementation *domain.Implementation
	Jobs           []Job
}

// Options tunes one run.
type Options struct {
	// Workers bounds concurrent conformance invocations. Defaults to runtime.NumCPU.
	Workers int
	// Timeout bounds every invocation from spawn. Defaults to DefaultTimeout.
	Timeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}

// Builder brings an implementation to a runnable state.
type Builder interface {
	Build(ctx context.Context, impl *domain.Implementation) domain.BuildResult
}

// Scheduler runs planned work. Performance invocations of every run share one
// lane, so at most one of them is in flight at a time.
type Scheduler struct {
	builder  Builder
	executor ports.Executor
	logger   ports.Logger
	lane     *semaphore.Weighted
}

// New creates a Scheduler.
func New(builder Builder, executor ports.Executor, logger ports.Logger) *Scheduler {
	return &Scheduler{
		builder:  builder,
		executor: executor,
		logger:   logger,
		lane:     semaphore.NewWeighted(1),
	}
}

// Run builds every implementation of work, then executes every job of the
// implementations that built. Jobs of an implementation that failed to build
// are recorded as build-failed. Run only fails when ctx is done.
func (s *Scheduler) Run(ctx context.Context, task domain.TaskName, work []Work, report *domain.Report, opts Options) error {
	opts = opts.withDefaults()

	var runnable []Work
	for _, w := range work {
		impl := w.Implementation
		for _, g := range impl.GamesFor(task) {
			report.Expect(domain.ReportKey{Implementation: impl.Name, Task: task, Game: g})
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		res := s.builder.Build(ctx, impl)
		report.RecordBuild(res)
		if !res.Ready() {
			s.logger.Warn(fmt.Sprintf("skipping %d inputs of %s: build failed", len(w.Jobs), impl.Name))
			for _, job := range w.Jobs {
				record(report, task, impl, job, domain.Outcome{
					Status:     domain.StatusBuildFailed,
					ExitCode:   -1,
					InputBytes: len(job.Input),
					Detail:     "implementation did not build",
				})
			}
			continue
		}
		runnable = append(runnable, w)
	}

	if task.Kind() == domain.KindPerformance {
		return s.runSequential(ctx, task, runnable, report, opts)
	}
	return s.runPool(ctx, task, runnable, report, opts)
}

func (s *Scheduler) runPool(ctx context.Context, task domain.TaskName, work []Work, report *domain.Report, opts Options) error {
	var g errgroup.Group
	g.SetLimit(opts.Workers)

	for _, w := range work {
		for _, job := range w.Jobs {
			if ctx.Err() != nil {
				break
			}
			g.Go(func() error {
				s.execute(ctx, task, w.Implementation, job, report, opts)
				return nil
			})
		}
	}
	_ = g.Wait()
	return ctx.Err()
}

func (s *Scheduler) runSequential(ctx context.Context, task domain.TaskName, work []Work, report *domain.Report, opts Options) error {
	for _, w := range work {
		for _, job := range w.Jobs {
			if err := s.lane.Acquire(ctx, 1); err != nil {
				return err
			}
			s.execute(ctx, task, w.Implementation, job, report, opts)
			s.lane.Release(1)
		}
	}
	return ctx.Err()
}

func (s *Scheduler) execute(ctx context.Context, task domain.TaskName, impl *domain.Implementation, job Job, report *domain.Report, opts Options) {
	out := s.executor.Execute(ctx, impl, domain.Invocation{
		Task:    task,
		Games:   job.Games,
		Input:   job.Input,
		Timeout: opts.Timeout,
	})
	record(report, task, impl, job, out)
}

func record(report *domain.Report, task domain.TaskName, impl *domain.Implementation, job Job, out domain.Outcome) {
	for _, g := range job.Games {
		report.Record(domain.ReportKey{Implementation: impl.Name, Task: task, Game: g}, job.Source, job.Digest, out)
	}
}
