package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/phaer/pip/internal/adapters/telemetry/progrock"
	"github.com/phaer/pip/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			// Progress recording is opt-in: the default is silence so the
			// report stream and the diagnostics stream stay predictable.
			if os.Getenv("PIPREPORT_PROGRESS") != "" {
				return progrock.New(), nil
			}
			return NewNoOp(), nil
		},
	})
}
