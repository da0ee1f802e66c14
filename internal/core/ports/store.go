package ports

import (
	"context"

	"go.trai.ch/babblewitz/internal/core/domain"
)

// RunInfo identifies one persisted run.
type RunInfo struct {
	ID      string
	Version string
}

// ResultStore persists the outcomes of runs.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ResultStore interface {
	// SaveRun appends every record of the report under run.
	SaveRun(ctx context.Context, run RunInfo, report *domain.Report) error
	// Close releases the underlying database.
	Close() error
}

// ResultStoreOpener opens a ResultStore at a path, creating it when missing.
type ResultStoreOpener interface {
	Open(ctx context.Context, path string) (ResultStore, error)
}
