package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/babblewitz/internal/core/ports"
)

// NodeID is the unique identifier for the report renderer node.
const NodeID graft.ID = "adapter.report"

func init() {
	graft.Register(graft.Node[ports.ReportRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportRenderer, error) {
			return New(), nil
		},
	})
}
