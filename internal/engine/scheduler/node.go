package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/babblewitz/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/babblewitz/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/babblewitz/internal/core/ports"
	"go.trai.ch/babblewitz/internal/engine/builder"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			builder.NodeID,
			shell.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			b, err := graft.Dep[*builder.Builder](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(b, executor, log), nil
		},
	})
}
