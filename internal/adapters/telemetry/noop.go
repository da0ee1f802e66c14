// Package telemetry holds telemetry adapters shared by the executors.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/babblewitz/internal/core/ports"
)

var _ ports.Telemetry = Noop{}

// Noop is a ports.Telemetry that records nothing.
type Noop struct{}

// Record returns a vertex that discards everything.
func (Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, NoopVertex{}
}

// Close does nothing.
func (Noop) Close() error { return nil }

// NoopVertex is a ports.Vertex that discards everything.
type NoopVertex struct{}

// Stdout returns io.Discard.
func (NoopVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns io.Discard.
func (NoopVertex) Stderr() io.Writer { return io.Discard }

// Complete does nothing.
func (NoopVertex) Complete(error) {}

// Cached does nothing.
func (NoopVertex) Cached() {}
