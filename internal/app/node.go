package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/phaer/pip/internal/adapters/graphfile"  //nolint:depguard // Wired in app layer
	"github.com/phaer/pip/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"github.com/phaer/pip/internal/adapters/sink"       //nolint:depguard // Wired in app layer
	"github.com/phaer/pip/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"github.com/phaer/pip/internal/adapters/wheelcache" //nolint:depguard // Wired in app layer
	"github.com/phaer/pip/internal/core/ports"
	"github.com/phaer/pip/internal/engine/compiler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			graphfile.NodeID,
			wheelcache.NodeID,
			compiler.NodeID,
			sink.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.GraphLoader](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.CacheIndex](ctx)
			if err != nil {
				return nil, err
			}

			comp, err := graft.Dep[*compiler.Compiler](ctx)
			if err != nil {
				return nil, err
			}

			reportSink, err := graft.Dep[ports.ReportSink](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, cache, comp, reportSink, log, tel), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}
