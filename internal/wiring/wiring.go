// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/phaer/pip/internal/adapters/graphfile"
	_ "github.com/phaer/pip/internal/adapters/logger"
	_ "github.com/phaer/pip/internal/adapters/sink"
	_ "github.com/phaer/pip/internal/adapters/telemetry"
	_ "github.com/phaer/pip/internal/adapters/wheelcache"
	// Register app and engine nodes.
	_ "github.com/phaer/pip/internal/app"
	_ "github.com/phaer/pip/internal/engine/compiler"
)
