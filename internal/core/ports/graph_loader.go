package ports

import "github.com/phaer/pip/internal/core/domain"

// GraphLoader defines the interface for loading a resolver's output.
//
//go:generate mockgen -source=graph_loader.go -destination=mocks/mock_graph_loader.go -package=mocks
type GraphLoader interface {
	// Load reads a resolution result from the given path and returns the
	// ordered node sequence plus the root requirement set.
	Load(path string) (*domain.Resolution, error)
}
