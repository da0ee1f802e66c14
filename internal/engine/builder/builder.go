// Package builder brings implementations to a runnable state, one at a time.
package builder

import (
	"context"
	"sync"

	"go.trai.ch/babblewitz/internal/core/domain"
	"go.trai.ch/babblewitz/internal/core/ports"
)

// Builder runs build commands sequentially and remembers their results for
// its lifetime, so every implementation is built at most once per run.
type Builder struct {
	executor  ports.Executor
	telemetry ports.Telemetry
	logger    ports.Logger

	mu      sync.Mutex
	results map[string]domain.BuildResult
}

// New creates a Builder.
func New(executor ports.Executor, telemetry ports.Telemetry, logger ports.Logger) *Builder {
	return &Builder{
		executor:  executor,
		telemetry: telemetry,
		logger:    logger,
		results:   make(map[string]domain.BuildResult),
	}
}

// Build builds impl unless it was already built. Concurrent callers wait for
// the build in progress.
func (b *Builder) Build(ctx context.Context, impl *domain.Implementation) domain.BuildResult {
	b.mu.Lock()
	defer b.mu.Unlock()

	ctx, vertex := b.telemetry.Record(ctx, "build "+impl.Name)
	if res, ok := b.results[impl.Name]; ok {
		vertex.Cached()
		vertex.Complete(res.Err)
		return res
	}

	res := b.executor.Build(ctx, impl, vertex.Stdout())
	vertex.Complete(res.Err)
	if !res.Ready() {
		b.logger.Error(res.Err)
	}
	// A canceled build says nothing about the implementation.
	if ctx.Err() == nil {
		b.results[impl.Name] = res
	}
	return res
}

// BuildAll builds impls in order and returns one result per implementation.
func (b *Builder) BuildAll(ctx context.Context, impls []*domain.Implementation) []domain.BuildResult {
	results := make([]domain.BuildResult, 0, len(impls))
	for _, impl := range impls {
		if ctx.Err() != nil {
			break
		}
		results = append(results, b.Build(ctx, impl))
	}
	return results
}
