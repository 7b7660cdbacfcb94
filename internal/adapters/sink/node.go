package sink

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/phaer/pip/internal/core/ports"
)

// NodeID is the unique identifier for the report sink Graft node.
const NodeID graft.ID = "adapter.report_sink"

func init() {
	graft.Register(graft.Node[ports.ReportSink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportSink, error) {
			return New(), nil
		},
	})
}
