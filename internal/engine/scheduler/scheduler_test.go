package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/babblewitz/internal/core/domain"
	"go.trai.ch/babblewitz/internal/core/ports/mocks"
	"go.trai.ch/babblewitz/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

type fakeBuilder map[string]domain.BuildResult

func (f fakeBuilder) Build(_ context.Context, impl *domain.Implementation) domain.BuildResult {
	if res, ok := f[impl.Name]; ok {
		return res
	}
	return domain.BuildResult{Implementation: impl.Name, Status: domain.BuildReady}
}

func impl(name string, task domain.TaskName, games ...domain.Game) *domain.Implementation {
	return &domain.Implementation{
		Name:        name,
		ProjectType: domain.ProjectMake,
		Tasks:       map[domain.TaskName][]domain.Game{task: games},
	}
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func ok(result string) domain.Outcome {
	return domain.Outcome{Status: domain.StatusSucceeded, Duration: time.Millisecond, Result: result}
}

func TestScheduler_RecordsUnderEveryGame(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)

	jomini := impl("jomini", domain.TaskCanParse, domain.GameEU4, domain.GameCK3)
	exec.EXPECT().Execute(gomock.Any(), jomini, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *domain.Implementation, inv domain.Invocation) domain.Outcome {
			assert.Equal(t, domain.TaskCanParse, inv.Task)
			assert.Equal(t, []domain.Game{domain.GameEU4, domain.GameCK3}, inv.Games)
			assert.Equal(t, scheduler.DefaultTimeout, inv.Timeout)
			assert.Equal(t, []byte("a=1"), inv.Input)
			return ok("1")
		}).Times(1)

	rep := domain.NewReport(domain.TaskCanParse, time.Now())
	s := scheduler.New(fakeBuilder{}, exec, quietLogger(ctrl))
	err := s.Run(context.Background(), domain.TaskCanParse, []scheduler.Work{{
		Implementation: jomini,
		Jobs: []scheduler.Job{{
			Source: "a.txt",
			Digest: "d",
			Input:  []byte("a=1"),
			Games:  []domain.Game{domain.GameEU4, domain.GameCK3},
		}},
	}}, rep, scheduler.Options{})
	require.NoError(t, err)

	for _, g := range []domain.Game{domain.GameEU4, domain.GameCK3} {
		recs := rep.RecordsFor(domain.ReportKey{Implementation: "jomini", Task: domain.TaskCanParse, Game: g})
		require.Len(t, recs, 1, g)
		assert.Equal(t, "a.txt", recs[0].Source)
		assert.Equal(t, "d", recs[0].Digest)
	}
	require.Len(t, rep.Builds(), 1)
}

func TestScheduler_BuildFailureRecordsEveryJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)

	broken := impl("broken", domain.TaskCanParse, domain.GameEU4)
	good := impl("good", domain.TaskCanParse, domain.GameEU4)
	exec.EXPECT().Execute(gomock.Any(), good, gomock.Any()).Return(ok("1")).Times(2)

	jobs := []scheduler.Job{
		{Source: "a.txt", Input: []byte("x"), Games: []domain.Game{domain.GameEU4}},
		{Source: "b.txt", Input: []byte("yy"), Games: []domain.Game{domain.GameEU4}},
	}
	builds := fakeBuilder{"broken": {Implementation: "broken", Status: domain.BuildFailedStatus, ExitCode: 1}}

	rep := domain.NewReport(domain.TaskCanParse, time.Now())
	s := scheduler.New(builds, exec, quietLogger(ctrl))
	require.NoError(t, s.Run(context.Background(), domain.TaskCanParse, []scheduler.Work{
		{Implementation: broken, Jobs: jobs},
		{Implementation: good, Jobs: jobs},
	}, rep, scheduler.Options{Workers: 2}))

	recs := rep.RecordsFor(domain.ReportKey{Implementation: "broken", Task: domain.TaskCanParse, Game: domain.GameEU4})
	require.Len(t, recs, 2)
	for _, r := range recs {
		assert.Equal(t, domain.StatusBuildFailed, r.Outcome.Status)
	}
	assert.Equal(t, 2, recs[1].Outcome.InputBytes)

	summary := rep.Summarize(domain.ReportKey{Implementation: "good", Task: domain.TaskCanParse, Game: domain.GameEU4})
	assert.True(t, summary.Complete())
	assert.Len(t, rep.Builds(), 2)
}

func TestScheduler_CrashDoesNotStopLaterFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)

	jomini := impl("jomini", domain.TaskCanParse, domain.GameEU4)
	exec.EXPECT().Execute(gomock.Any(), jomini, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *domain.Implementation, inv domain.Invocation) domain.Outcome {
			if string(inv.Input) == "crash" {
				return domain.Outcome{Status: domain.StatusCrashed, ExitCode: 137}
			}
			return ok("1")
		}).Times(3)

	game := []domain.Game{domain.GameEU4}
	rep := domain.NewReport(domain.TaskCanParse, time.Now())
	s := scheduler.New(fakeBuilder{}, exec, quietLogger(ctrl))
	require.NoError(t, s.Run(context.Background(), domain.TaskCanParse, []scheduler.Work{{
		Implementation: jomini,
		Jobs: []scheduler.Job{
			{Source: "a.txt", Input: []byte("crash"), Games: game},
			{Source: "b.txt", Input: []byte("ok"), Games: game},
			{Source: "c.txt", Input: []byte("ok"), Games: game},
		},
	}}, rep, scheduler.Options{Workers: 1}))

	summary := rep.Summarize(domain.ReportKey{Implementation: "jomini", Task: domain.TaskCanParse, Game: domain.GameEU4})
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Succeeded)
	failures := rep.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, 137, failures[0].Outcome.ExitCode)
}

// concurrencyProbe records the highest number of overlapping Execute calls.
type concurrencyProbe struct {
	active, peak atomic.Int32
}

func (p *concurrencyProbe) execute(_ context.Context, _ *domain.Implementation, _ domain.Invocation) domain.Outcome {
	n := p.active.Add(1)
	for {
		peak := p.peak.Load()
		if n <= peak || p.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(20 * time.Millisecond)
	p.active.Add(-1)
	return ok("1")
}

func manyJobs(n int) []scheduler.Job {
	jobs := make([]scheduler.Job, n)
	for i := range jobs {
		jobs[i] = scheduler.Job{Source: string(rune('a' + i)), Games: []domain.Game{domain.GameEU4}}
	}
	return jobs
}

func TestScheduler_ConformanceRespectsWorkerLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	probe := &concurrencyProbe{}
	exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(probe.execute).Times(16)

	work := []scheduler.Work{
		{Implementation: impl("a", domain.TaskCanParse, domain.GameEU4), Jobs: manyJobs(8)},
		{Implementation: impl("b", domain.TaskCanParse, domain.GameEU4), Jobs: manyJobs(8)},
	}
	rep := domain.NewReport(domain.TaskCanParse, time.Now())
	s := scheduler.New(fakeBuilder{}, exec, quietLogger(ctrl))
	require.NoError(t, s.Run(context.Background(), domain.TaskCanParse, work, rep, scheduler.Options{Workers: 3}))

	assert.LessOrEqual(t, probe.peak.Load(), int32(3))
	assert.Len(t, rep.Records(), 16)
}

func TestScheduler_PerformanceRunsOneAtATime(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	probe := &concurrencyProbe{}
	exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(probe.execute).Times(8)

	s := scheduler.New(fakeBuilder{}, exec, quietLogger(ctrl))
	run := func(name string) {
		work := []scheduler.Work{{Implementation: impl(name, domain.TaskDeserialization, domain.GameEU4), Jobs: manyJobs(4)}}
		rep := domain.NewReport(domain.TaskDeserialization, time.Now())
		assert.NoError(t, s.Run(context.Background(), domain.TaskDeserialization, work, rep, scheduler.Options{Workers: 8}))
	}

	// Two concurrent runs still share the single performance lane.
	done := make(chan struct{})
	go func() {
		defer close(done)
		run("a")
	}()
	run("b")
	<-done

	assert.Equal(t, int32(1), probe.peak.Load())
}

func TestScheduler_ExpectsEverySupportedGame(t *testing.T) {
	ctrl := gomock.NewController(t)

	rep := domain.NewReport(domain.TaskCanParse, time.Now())
	s := scheduler.New(fakeBuilder{}, mocks.NewMockExecutor(ctrl), quietLogger(ctrl))
	require.NoError(t, s.Run(context.Background(), domain.TaskCanParse, []scheduler.Work{
		{Implementation: impl("jomini", domain.TaskCanParse, domain.GameEU4, domain.GameHOI4)},
	}, rep, scheduler.Options{}))

	assert.Equal(t, []domain.ReportKey{
		{Implementation: "jomini", Task: domain.TaskCanParse, Game: domain.GameEU4},
		{Implementation: "jomini", Task: domain.TaskCanParse, Game: domain.GameHOI4},
	}, rep.Keys())
}

func TestScheduler_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep := domain.NewReport(domain.TaskCanParse, time.Now())
	s := scheduler.New(fakeBuilder{}, mocks.NewMockExecutor(ctrl), quietLogger(ctrl))
	err := s.Run(ctx, domain.TaskCanParse, []scheduler.Work{
		{Implementation: impl("jomini", domain.TaskCanParse, domain.GameEU4), Jobs: manyJobs(2)},
	}, rep, scheduler.Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rep.Records())
}
