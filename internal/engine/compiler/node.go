package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/phaer/pip/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/phaer/pip/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/phaer/pip/internal/core/ports"
)

// NodeID is the unique identifier for the compiler Graft node.
const NodeID graft.ID = "engine.compiler"

func init() {
	graft.Register(graft.Node[*Compiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Compiler, error) {
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(tel, log), nil
		},
	})
}
