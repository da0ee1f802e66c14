package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/babblewitz/internal/adapters/logger"
	"go.trai.ch/babblewitz/internal/core/ports"
)

// NodeID is the unique identifier for the implementation registry Graft node.
const NodeID graft.ID = "adapter.config_registry"

func init() {
	graft.Register(graft.Node[ports.ImplementationRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ImplementationRegistry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(log), nil
		},
	})
}
