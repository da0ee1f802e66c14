// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/babblewitz/internal/core/domain"
)

// Executor brings implementations to a runnable state and drives them through
// the subprocess protocol.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Build runs the build command of the implementation to completion.
	// Build output is copied to output as it is produced. Failures are
	// reported through the result, never as a panic or a run-fatal error.
	Build(ctx context.Context, impl *domain.Implementation, output io.Writer) domain.BuildResult

	// Execute runs one invocation of a built implementation and classifies it.
	// Every failure mode maps to an outcome status.
	Execute(ctx context.Context, impl *domain.Implementation, inv domain.Invocation) domain.Outcome
}
