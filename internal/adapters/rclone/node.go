package rclone

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/babblewitz/internal/adapters/logger"
	"go.trai.ch/babblewitz/internal/core/ports"
)

// NodeID is the unique identifier for the asset syncer node.
const NodeID graft.ID = "adapter.rclone"

func init() {
	graft.Register(graft.Node[ports.AssetSyncer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.AssetSyncer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSyncer(log), nil
		},
	})
}
