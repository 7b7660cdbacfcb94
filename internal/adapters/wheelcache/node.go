package wheelcache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/phaer/pip/internal/core/ports"
)

// NodeID is the unique identifier for the cache index Graft node.
const NodeID graft.ID = "adapter.cache_index"

func init() {
	graft.Register(graft.Node[ports.CacheIndex]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheIndex, error) {
			return NewIndex(), nil
		},
	})
}
