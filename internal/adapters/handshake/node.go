package handshake

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sourcehook/internal/adapters/logger" //nolint:depguard // Import logger node ID
	"go.trai.ch/sourcehook/internal/core/ports"
)

// NodeID is the unique identifier for the renderer spawner Graft node.
const NodeID graft.ID = "adapter.renderer_spawner"

func init() {
	graft.Register(graft.Node[*Spawner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Spawner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSpawner(log)
		},
	})
}
