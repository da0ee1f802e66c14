package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/babblewitz/internal/core/ports"
)

// NodeID is the unique identifier for the result store opener node.
const NodeID graft.ID = "adapter.store"

func init() {
	graft.Register(graft.Node[ports.ResultStoreOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ResultStoreOpener, error) {
			return Opener{}, nil
		},
	})
}
